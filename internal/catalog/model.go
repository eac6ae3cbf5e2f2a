package catalog

import (
	"net/http"
	"time"

	"github.com/elitebarber/barbershop-backend/internal/pkg/apperror"
)

var (
	ErrNotFound        = apperror.New(http.StatusNotFound, "service not found")
	ErrEmptyName       = apperror.New(http.StatusBadRequest, "name cannot be empty")
	ErrInvalidDuration = apperror.New(http.StatusBadRequest, "duration must be a positive number of minutes")
)

// Service represents a bookable offering (e.g., haircut, beard trim).
// DurationMinutes drives slot length in availability queries.
type Service struct {
	ID              string
	Name            string
	Description     string
	DurationMinutes int
	Price           string // decimal, kept as string to avoid float rounding
	Active          bool
	CreatedAt       time.Time
}
