package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/elitebarber/barbershop-backend/internal/catalog"
	"github.com/elitebarber/barbershop-backend/internal/pkg/response"
)

type Handler struct {
	service catalog.CatalogService
}

func NewHandler(service catalog.CatalogService) *Handler {
	return &Handler{service: service}
}

// List returns the active services. Public: the booking page renders this.
func (h *Handler) List(c *gin.Context) {
	services, err := h.service.ListActive(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]ServiceResponse, len(services))
	for i, s := range services {
		items[i] = NewServiceResponse(s)
	}
	c.JSON(http.StatusOK, items)
}

// ListAll returns every service including inactive ones. Staff only.
func (h *Handler) ListAll(c *gin.Context) {
	services, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]ServiceResponse, len(services))
	for i, s := range services {
		items[i] = NewServiceResponse(s)
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	s, err := h.service.Create(c.Request.Context(), catalog.CreateRequest{
		Name:            req.Name,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		Price:           req.Price,
		Active:          active,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewServiceResponse(s))
}

func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	s, err := h.service.Update(c.Request.Context(), id, catalog.UpdateRequest{
		Name:            req.Name,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		Price:           req.Price,
		Active:          req.Active,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewServiceResponse(s))
}
