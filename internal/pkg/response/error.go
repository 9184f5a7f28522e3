package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Rohith-M123/campus-booking-backend/internal/pkg/apperror"
)

// ErrorResponse defines the JSON structure for error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Error sends a JSON error response.
// AppError values determine their own status code; anything else is reported
// as a 500 so the client never mistakes a persistence failure for success.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Code, ErrorResponse{Error: appErr.Message})
		return
	}

	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}
