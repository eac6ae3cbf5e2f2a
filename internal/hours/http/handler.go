package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/elitebarber/barbershop-backend/internal/hours"
	"github.com/elitebarber/barbershop-backend/internal/pkg/response"
)

type Handler struct {
	service hours.Service
}

func NewHandler(service hours.Service) *Handler {
	return &Handler{service: service}
}

// List returns the weekly schedule. Public: the contact page renders this.
func (h *Handler) List(c *gin.Context) {
	rows, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]BusinessHoursResponse, len(rows))
	for i, row := range rows {
		items[i] = NewBusinessHoursResponse(row)
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) Update(c *gin.Context) {
	weekday, err := strconv.Atoi(c.Param("weekday"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid weekday"})
		return
	}

	var req UpdateHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	row, err := h.service.Update(c.Request.Context(), weekday, hours.UpdateRequest{
		OpensAt:  req.OpensAt,
		ClosesAt: req.ClosesAt,
		IsOpen:   *req.IsOpen,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBusinessHoursResponse(row))
}
