package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	group := g.Group("/bookings")
	group.Use(authMiddleware)
	{
		group.GET("", h.List)
		group.GET("/:id", h.Get)
		group.POST("", h.Create)
	}

	// Decisions are admin-only; the service re-checks the actor's role.
	admin := group.Group("")
	admin.Use(adminMiddleware)
	{
		admin.PUT("/:id/approve", h.Approve)
		admin.PUT("/:id/reject", h.Reject)
	}

	// Slot grid lives under the venue resource.
	g.GET("/venues/:id/availability", authMiddleware, h.Availability)
}
