package barber

import (
	"net/http"
	"time"

	"github.com/elitebarber/barbershop-backend/internal/pkg/apperror"
)

var (
	ErrNotFound  = apperror.New(http.StatusNotFound, "barber not found")
	ErrEmptyName = apperror.New(http.StatusBadRequest, "name cannot be empty")
)

// Barber represents a staff member who takes appointments.
// Inactive barbers are excluded from the "any barber" pool.
type Barber struct {
	ID        string
	Name      string
	Active    bool
	CreatedAt time.Time
}
