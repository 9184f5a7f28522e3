package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Rohith-M123/campus-booking-backend/internal/auth"
	"github.com/Rohith-M123/campus-booking-backend/internal/booking"
	"github.com/Rohith-M123/campus-booking-backend/internal/pkg/response"
	"github.com/Rohith-M123/campus-booking-backend/internal/user"
)

type Handler struct {
	service     booking.Service
	userService user.Service
}

func NewHandler(service booking.Service, userService user.Service) *Handler {
	return &Handler{
		service:     service,
		userService: userService,
	}
}

// currentUser loads the authenticated user. The JWT role claim is not
// trusted for decisions; a fresh read picks up role changes and blocks.
func (h *Handler) currentUser(c *gin.Context) (*user.User, bool) {
	userID := auth.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return nil, false
	}

	u, err := h.userService.GetByID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return nil, false
	}
	return u, true
}

func (h *Handler) List(c *gin.Context) {
	var req ListBookingsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	u, ok := h.currentUser(c)
	if !ok {
		return
	}

	// Admins see everything and may filter by user; everyone else is forced
	// to their own bookings.
	filterUserID := u.ID
	if u.IsAdmin() {
		filterUserID = req.UserID
	}

	filter := booking.Filter{
		UserID:    filterUserID,
		VenueID:   req.VenueID,
		Status:    req.Status,
		Date:      req.Date,
		Page:      req.Page,
		PageSize:  req.PageSize,
		SortBy:    req.SortBy,
		SortOrder: req.SortOrder,
	}

	bookings, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = NewBookingResponse(b)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, filter.Page, filter.PageSize, total))
}

func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	u, ok := h.currentUser(c)
	if !ok {
		return
	}
	if b.UserID != u.ID && !u.IsAdmin() {
		c.JSON(http.StatusForbidden, gin.H{"error": "permission denied"})
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateBookingRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}
	if err := body.Validate(); err != nil {
		response.Error(c, err)
		return
	}

	u, ok := h.currentUser(c)
	if !ok {
		return
	}

	req := booking.CreateRequest{
		VenueID:           body.VenueID,
		Title:             body.Title,
		Description:       body.Description,
		Date:              body.Date,
		StartTime:         body.StartTime,
		EndTime:           body.EndTime,
		FullDay:           body.FullDay,
		EquipmentRequired: body.EquipmentRequired,
		Attendees:         body.Attendees,
	}

	b, err := h.service.Submit(c.Request.Context(), req, u)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewBookingResponse(b))
}

func (h *Handler) Approve(c *gin.Context) {
	h.decide(c, h.service.Approve)
}

func (h *Handler) Reject(c *gin.Context) {
	h.decide(c, h.service.Reject)
}

func (h *Handler) decide(c *gin.Context, transition func(ctx context.Context, id string, actor *user.User) (*booking.Booking, error)) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	u, ok := h.currentUser(c)
	if !ok {
		return
	}

	b, err := transition(c.Request.Context(), id, u)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

// Availability returns the canonical slot grid for a venue on a date.
func (h *Handler) Availability(c *gin.Context) {
	venueID := c.Param("id")
	if _, err := uuid.Parse(venueID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var req AvailabilityRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date query parameter is required (YYYY-MM-DD)"})
		return
	}

	slots, err := h.service.Availability(c.Request.Context(), venueID, req.Date)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]SlotResponse, len(slots))
	for i, s := range slots {
		items[i] = NewSlotResponse(s)
	}

	c.JSON(http.StatusOK, gin.H{"date": req.Date, "slots": items})
}
