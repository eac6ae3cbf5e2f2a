package http

import (
	"time"

	"github.com/elitebarber/barbershop-backend/internal/barber"
)

type BarberResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

func NewBarberResponse(b *barber.Barber) BarberResponse {
	return BarberResponse{
		ID:        b.ID,
		Name:      b.Name,
		Active:    b.Active,
		CreatedAt: b.CreatedAt,
	}
}

type CreateBarberRequest struct {
	Name   string `json:"name" binding:"required"`
	Active *bool  `json:"active"`
}

type UpdateBarberRequest struct {
	Name   *string `json:"name"`
	Active *bool   `json:"active"`
}
