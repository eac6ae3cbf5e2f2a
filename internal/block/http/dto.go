package http

import (
	"time"

	"github.com/elitebarber/barbershop-backend/internal/block"
)

type BlockResponse struct {
	ID        string    `json:"id"`
	StartsAt  time.Time `json:"starts_at"`
	EndsAt    time.Time `json:"ends_at"`
	Reason    string    `json:"reason,omitempty"`
	BarberID  *string   `json:"barber_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func NewBlockResponse(b *block.Block) BlockResponse {
	return BlockResponse{
		ID:        b.ID,
		StartsAt:  b.StartsAt,
		EndsAt:    b.EndsAt,
		Reason:    b.Reason,
		BarberID:  b.BarberID,
		CreatedAt: b.CreatedAt,
	}
}

// CreateBlockRequest takes a date plus wall-clock times; the handler
// anchors them in the shop timezone.
type CreateBlockRequest struct {
	Date      string  `json:"date" binding:"required"`       // YYYY-MM-DD
	StartTime string  `json:"start_time" binding:"required"` // HH:MM
	EndTime   string  `json:"end_time" binding:"required"`   // HH:MM
	Reason    string  `json:"reason"`
	BarberID  *string `json:"barber_id" binding:"omitempty,uuid"`
}
