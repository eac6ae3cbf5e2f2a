package http

import (
	"time"

	"github.com/elitebarber/barbershop-backend/internal/appointment"
)

type AppointmentResponse struct {
	ID            string    `json:"id"`
	CustomerName  string    `json:"customer_name"`
	CustomerPhone string    `json:"customer_phone"`
	CustomerEmail string    `json:"customer_email"`
	ServiceID     string    `json:"service_id"`
	ServiceName   string    `json:"service_name,omitempty"`
	BarberID      string    `json:"barber_id"`
	BarberName    string    `json:"barber_name,omitempty"`
	StartsAt      time.Time `json:"starts_at"`
	EndsAt        time.Time `json:"ends_at"`
	Status        string    `json:"status"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func NewAppointmentResponse(a *appointment.Appointment) AppointmentResponse {
	return AppointmentResponse{
		ID:            a.ID,
		CustomerName:  a.CustomerName,
		CustomerPhone: a.CustomerPhone,
		CustomerEmail: a.CustomerEmail,
		ServiceID:     a.ServiceID,
		ServiceName:   a.ServiceName,
		BarberID:      a.BarberID,
		BarberName:    a.BarberName,
		StartsAt:      a.StartsAt,
		EndsAt:        a.EndsAt,
		Status:        string(a.Status),
		Notes:         a.Notes,
		CreatedAt:     a.CreatedAt,
	}
}

// AvailabilityRequest defines query parameters for the slot listing.
type AvailabilityRequest struct {
	Date      string `form:"date" binding:"required"`
	ServiceID string `form:"service_id" binding:"required,uuid"`
	BarberID  string `form:"barber_id" binding:"omitempty,uuid"`
}

type CreateBookingRequest struct {
	CustomerName  string    `json:"customer_name" binding:"required,min=2"`
	CustomerPhone string    `json:"customer_phone" binding:"required,min=10"`
	CustomerEmail string    `json:"customer_email" binding:"required,email"`
	ServiceID     string    `json:"service_id" binding:"required,uuid"`
	BarberID      string    `json:"barber_id" binding:"omitempty,uuid"`
	StartsAt      time.Time `json:"starts_at" binding:"required"`
	EndsAt        time.Time `json:"ends_at" binding:"required"`
	Notes         string    `json:"notes"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=cancelled completed"`
}
