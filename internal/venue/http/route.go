package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	group := g.Group("/venues")
	group.Use(authMiddleware)
	{
		group.GET("", h.List)
		group.GET("/:id", h.Get)
	}

	// Venue management is admin-only; venues are blocked, never deleted.
	admin := group.Group("")
	admin.Use(adminMiddleware)
	{
		admin.POST("", h.Create)
		admin.PUT("/:id", h.Update)
		admin.POST("/:id/image", h.UploadImage)
	}
}
