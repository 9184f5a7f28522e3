package http

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Rohith-M123/campus-booking-backend/internal/pkg/response"
	"github.com/Rohith-M123/campus-booking-backend/internal/pkg/storage"
	"github.com/Rohith-M123/campus-booking-backend/internal/venue"
)

const (
	maxImageSizeBytes = 5 << 20
	imageBoxWidth     = 1000
	imageBoxHeight    = 1000
)

type Handler struct {
	service   venue.Service
	store     storage.Storage
	processor *storage.ImageProcessor
}

func NewHandler(service venue.Service, store storage.Storage, processor *storage.ImageProcessor) *Handler {
	return &Handler{
		service:   service,
		store:     store,
		processor: processor,
	}
}

func (h *Handler) List(c *gin.Context) {
	var req ListVenuesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	filter := venue.Filter{
		Category: req.Category,
		Page:     req.Page,
		PageSize: req.PageSize,
	}

	venues, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]VenueResponse, len(venues))
	for i, v := range venues {
		items[i] = NewVenueResponse(v)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, filter.Page, filter.PageSize, total))
}

func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	v, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewVenueResponse(v))
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateVenueRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	req := venue.CreateRequest{
		Name:      body.Name,
		Category:  venue.Category(body.Category),
		Capacity:  body.Capacity,
		Location:  body.Location,
		VenueType: body.Type,
		Image:     body.Image,
		Equipment: body.Equipment,
	}

	v, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewVenueResponse(v))
}

func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var body UpdateVenueRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	req := venue.UpdateRequest{
		Name:      body.Name,
		Capacity:  body.Capacity,
		Location:  body.Location,
		VenueType: body.Type,
		Equipment: body.Equipment,
		IsBlocked: body.IsBlocked,
	}
	if body.Category != nil {
		cat := venue.Category(*body.Category)
		req.Category = &cat
	}

	v, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewVenueResponse(v))
}

// UploadImage accepts a multipart venue photo, normalizes it to a bounded
// JPEG and stores it under the upload dir, then points the venue at it.
func (h *Handler) UploadImage(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image is required"})
		return
	}
	if fileHeader.Size > maxImageSizeBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image exceeds maximum size"})
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file must be an image"})
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read image"})
		return
	}
	defer src.Close()

	fitted, err := h.processor.FitJPEG(src, imageBoxWidth, imageBoxHeight)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid image file"})
		return
	}

	path := filepath.Join("venues", fmt.Sprintf("%s.jpg", id))
	if err := h.store.Save(c.Request.Context(), path, fitted); err != nil {
		response.Error(c, err)
		return
	}

	v, err := h.service.SetImage(c.Request.Context(), id, path)
	if err != nil {
		// Roll back the stored file so a missing venue leaves no orphan.
		_ = h.store.Delete(c.Request.Context(), path)
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewVenueResponse(v))
}
