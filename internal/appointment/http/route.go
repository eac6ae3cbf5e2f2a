package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, staffMiddleware gin.HandlerFunc) {
	// === Public Routes ===
	g.GET("/availability", h.Availability)
	g.POST("/bookings", h.Book)

	// === Staff Routes ===
	group := g.Group("/appointments")
	group.Use(staffMiddleware)
	{
		group.GET("", h.List)
		group.GET("/:id", h.Get)
		group.PATCH("/:id/status", h.UpdateStatus)
		group.DELETE("/:id", h.Delete)
	}
}
