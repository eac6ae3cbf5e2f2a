package http

import (
	"time"

	"github.com/elitebarber/barbershop-backend/internal/catalog"
)

type ServiceResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	DurationMinutes int       `json:"duration_minutes"`
	Price           string    `json:"price"`
	Active          bool      `json:"active"`
	CreatedAt       time.Time `json:"created_at"`
}

func NewServiceResponse(s *catalog.Service) ServiceResponse {
	return ServiceResponse{
		ID:              s.ID,
		Name:            s.Name,
		Description:     s.Description,
		DurationMinutes: s.DurationMinutes,
		Price:           s.Price,
		Active:          s.Active,
		CreatedAt:       s.CreatedAt,
	}
}

type CreateServiceRequest struct {
	Name            string `json:"name" binding:"required"`
	Description     string `json:"description"`
	DurationMinutes int    `json:"duration_minutes" binding:"required,gt=0"`
	Price           string `json:"price" binding:"required"`
	Active          *bool  `json:"active"`
}

type UpdateServiceRequest struct {
	Name            *string `json:"name"`
	Description     *string `json:"description"`
	DurationMinutes *int    `json:"duration_minutes" binding:"omitempty,gt=0"`
	Price           *string `json:"price"`
	Active          *bool   `json:"active"`
}
