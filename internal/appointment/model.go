package appointment

import (
	"net/http"
	"time"

	"github.com/elitebarber/barbershop-backend/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "appointment not found")
	ErrInvalidTimeRange = apperror.New(http.StatusBadRequest, "start time must be before end time")
	ErrStartTimePast    = apperror.New(http.StatusBadRequest, "cannot book an appointment in the past")
	ErrInvalidStatus    = apperror.New(http.StatusBadRequest, "invalid appointment status")
	ErrFinalStatus      = apperror.New(http.StatusConflict, "appointment status can no longer change")

	// Booking conflicts carry machine-readable reasons so the client can
	// tell "pick another barber" from "pick another time" from "you
	// already have an appointment".
	ErrLimitReached   = apperror.NewWithReason(http.StatusConflict, "limit_reached", "customer already has an outstanding appointment")
	ErrBarberOccupied = apperror.NewWithReason(http.StatusConflict, "barber_occupied", "this barber is already booked for that time")
	ErrSlotFull       = apperror.NewWithReason(http.StatusConflict, "slot_full", "all barbers are booked for that time")
	ErrNoBarberFree   = apperror.NewWithReason(http.StatusConflict, "no_barber_available", "no barber is available for that time")
	ErrSlotTaken      = apperror.NewWithReason(http.StatusConflict, "slot_taken", "this time was just booked, please pick another")
)

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// Appointment is a confirmed booking. BarberID is always concrete here:
// "any barber" requests are resolved to a specific barber before insert.
type Appointment struct {
	ID            string
	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	ServiceID     string
	ServiceName   string
	BarberID      string
	BarberName    string
	StartsAt      time.Time
	EndsAt        time.Time
	Status        Status
	Notes         string
	CreatedAt     time.Time
}

// Filter defines parameters for listing appointments.
type Filter struct {
	Status    string
	BarberID  string
	StartFrom *time.Time
	StartTo   *time.Time
	Page      int
	PageSize  int
}

// Notifier receives fire-and-forget booking events. Implementations must
// never block or fail the calling operation.
type Notifier interface {
	BookingConfirmed(a *Appointment)
	BookingCancelled(a *Appointment)
}
