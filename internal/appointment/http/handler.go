package http

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/elitebarber/barbershop-backend/internal/appointment"
	"github.com/elitebarber/barbershop-backend/internal/auth"
	"github.com/elitebarber/barbershop-backend/internal/pkg/response"
)

type Handler struct {
	service appointment.Service
	loc     *time.Location
}

func NewHandler(service appointment.Service, loc *time.Location) *Handler {
	return &Handler{service: service, loc: loc}
}

// Availability handles GET /availability. Public.
func (h *Handler) Availability(c *gin.Context) {
	var req AvailabilityRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	date, err := time.ParseInLocation("2006-01-02", req.Date, h.loc)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	slots, err := h.service.Availability(c.Request.Context(), appointment.AvailabilityQuery{
		Date:      date,
		ServiceID: req.ServiceID,
		BarberID:  req.BarberID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, slots)
}

// Book handles POST /bookings. Public.
func (h *Handler) Book(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	a, err := h.service.Book(c.Request.Context(), appointment.BookingRequest{
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomerEmail: req.CustomerEmail,
		ServiceID:     req.ServiceID,
		BarberID:      req.BarberID,
		StartsAt:      req.StartsAt,
		EndsAt:        req.EndsAt,
		Notes:         req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewAppointmentResponse(a))
}

// List handles GET /appointments. Staff only.
func (h *Handler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	var startFrom, startTo *time.Time
	if v := c.Query("start_from"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			startFrom = &t
		}
	}
	if v := c.Query("start_to"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			startTo = &t
		}
	}

	filter := appointment.Filter{
		Status:    c.Query("status"),
		BarberID:  c.Query("barber_id"),
		StartFrom: startFrom,
		StartTo:   startTo,
		Page:      page,
		PageSize:  pageSize,
	}

	appointments, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]AppointmentResponse, len(appointments))
	for i, a := range appointments {
		items[i] = NewAppointmentResponse(a)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, page, pageSize, total))
}

// Get handles GET /appointments/:id. Staff only.
func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	a, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewAppointmentResponse(a))
}

// UpdateStatus handles PATCH /appointments/:id/status. Staff only.
func (h *Handler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	a, err := h.service.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		response.Error(c, err)
		return
	}

	log.Printf("appointment %s set to %s by staff %s", id, req.Status, auth.GetStaffUsername(c))

	c.JSON(http.StatusOK, NewAppointmentResponse(a))
}

// Delete handles DELETE /appointments/:id. Staff only.
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

	log.Printf("appointment %s deleted by staff %s", id, auth.GetStaffUsername(c))

	c.Status(http.StatusNoContent)
}
