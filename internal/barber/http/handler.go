package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/elitebarber/barbershop-backend/internal/barber"
	"github.com/elitebarber/barbershop-backend/internal/pkg/response"
)

type Handler struct {
	service barber.Service
}

func NewHandler(service barber.Service) *Handler {
	return &Handler{service: service}
}

// List returns the active barbers. Public: the booking page renders this.
func (h *Handler) List(c *gin.Context) {
	barbers, err := h.service.ListActive(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]BarberResponse, len(barbers))
	for i, b := range barbers {
		items[i] = NewBarberResponse(b)
	}
	c.JSON(http.StatusOK, items)
}

// ListAll returns every barber including inactive ones. Staff only.
func (h *Handler) ListAll(c *gin.Context) {
	barbers, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]BarberResponse, len(barbers))
	for i, b := range barbers {
		items[i] = NewBarberResponse(b)
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	b, err := h.service.Create(c.Request.Context(), barber.CreateRequest{
		Name:   req.Name,
		Active: active,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewBarberResponse(b))
}

func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var req UpdateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	b, err := h.service.Update(c.Request.Context(), id, barber.UpdateRequest{
		Name:   req.Name,
		Active: req.Active,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBarberResponse(b))
}
