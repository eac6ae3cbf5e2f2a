package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/elitebarber/barbershop-backend/internal/block"
	"github.com/elitebarber/barbershop-backend/internal/hours"
	"github.com/elitebarber/barbershop-backend/internal/pkg/response"
)

type Handler struct {
	service block.Service
	loc     *time.Location
}

func NewHandler(service block.Service, loc *time.Location) *Handler {
	return &Handler{service: service, loc: loc}
}

func (h *Handler) List(c *gin.Context) {
	blocks, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]BlockResponse, len(blocks))
	for i, b := range blocks {
		items[i] = NewBlockResponse(b)
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	date, err := time.ParseInLocation("2006-01-02", req.Date, h.loc)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	startsAt, err := hours.AtTime(date, req.StartTime, h.loc)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start_time must be HH:MM"})
		return
	}
	endsAt, err := hours.AtTime(date, req.EndTime, h.loc)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end_time must be HH:MM"})
		return
	}

	b, err := h.service.Create(c.Request.Context(), block.CreateRequest{
		StartsAt: startsAt,
		EndsAt:   endsAt,
		Reason:   req.Reason,
		BarberID: req.BarberID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewBlockResponse(b))
}

func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
