package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Rohith-M123/campus-booking-backend/internal/auth"
	"github.com/Rohith-M123/campus-booking-backend/internal/user"
)

// RequireAdmin ensures the authenticated user holds the ADMIN role.
// It MUST be used after auth.AuthRequired middleware. The user is re-read so
// a role change or block takes effect without waiting for token expiry.
func RequireAdmin(userService user.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := auth.GetUserID(c)
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		u, err := userService.GetByID(c.Request.Context(), userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
			return
		}

		if !u.IsAdmin() || u.Status == user.StatusBlocked {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden: admin access required"})
			return
		}

		c.Next()
	}
}
