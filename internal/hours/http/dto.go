package http

import (
	"github.com/elitebarber/barbershop-backend/internal/hours"
)

type BusinessHoursResponse struct {
	Weekday  int    `json:"weekday"`
	OpensAt  string `json:"opens_at"`
	ClosesAt string `json:"closes_at"`
	IsOpen   bool   `json:"is_open"`
}

func NewBusinessHoursResponse(h *hours.BusinessHours) BusinessHoursResponse {
	return BusinessHoursResponse{
		Weekday:  h.Weekday,
		OpensAt:  h.OpensAt,
		ClosesAt: h.ClosesAt,
		IsOpen:   h.IsOpen,
	}
}

type UpdateHoursRequest struct {
	OpensAt  string `json:"opens_at" binding:"required"`
	ClosesAt string `json:"closes_at" binding:"required"`
	IsOpen   *bool  `json:"is_open" binding:"required"`
}
