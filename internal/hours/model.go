package hours

import (
	"fmt"
	"net/http"
	"time"

	"github.com/elitebarber/barbershop-backend/internal/pkg/apperror"
)

var (
	ErrNotFound       = apperror.New(http.StatusNotFound, "no hours configured for that weekday")
	ErrInvalidWeekday = apperror.New(http.StatusBadRequest, "weekday must be between 0 (Sunday) and 6 (Saturday)")
	ErrInvalidTime    = apperror.New(http.StatusBadRequest, "times must be in HH:MM format with opens before closes")
)

// BusinessHours is the shop's operating window for one weekday.
// Times are stored as "HH:MM" strings and resolved against a concrete
// date in the shop timezone, so DST shifts never skew stored hours.
type BusinessHours struct {
	ID       string
	Weekday  int // 0 = Sunday .. 6 = Saturday
	OpensAt  string
	ClosesAt string
	IsOpen   bool
}

// Window is a resolved operating interval for a specific date.
type Window struct {
	Open     bool
	OpensAt  time.Time
	ClosesAt time.Time
}

// AtTime anchors an "HH:MM" string to the given date in loc.
func AtTime(date time.Time, hm string, loc *time.Location) (time.Time, error) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid HH:MM value %q: %w", hm, err)
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, loc), nil
}
