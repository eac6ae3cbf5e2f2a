package block

import (
	"net/http"
	"time"

	"github.com/elitebarber/barbershop-backend/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "block not found")
	ErrInvalidTimeRange = apperror.New(http.StatusBadRequest, "start time must be before end time")
	ErrInvalidBarber    = apperror.New(http.StatusBadRequest, "invalid barber_id")
)

// Block is an administratively closed interval during which no bookings
// may be placed. A nil BarberID applies the block shop-wide; a non-nil
// value scopes it to a single barber (e.g., vacation).
type Block struct {
	ID        string
	StartsAt  time.Time
	EndsAt    time.Time
	Reason    string
	BarberID  *string
	CreatedAt time.Time
}
