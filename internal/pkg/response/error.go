package response

import (
	"errors"
	"log"
	"net/http"

	"github.com/elitebarber/barbershop-backend/internal/pkg/apperror"
	"github.com/gin-gonic/gin"
)

// ErrorResponse defines the JSON structure for error responses.
type ErrorResponse struct {
	Error  string `json:"error"`
	Reason string `json:"reason,omitempty"`
}

// Error sends a JSON error response.
// It checks if the error is an AppError to determine the status code and reason.
// Anything else is treated as an internal failure: logged with context, surfaced as a generic 500.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Code, ErrorResponse{Error: appErr.Message, Reason: appErr.Reason})
		return
	}

	log.Printf("internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}
