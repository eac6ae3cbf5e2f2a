package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, staffMiddleware gin.HandlerFunc) {
	group := g.Group("/hours")

	// === Public Routes ===
	group.GET("", h.List)

	// === Staff Routes ===
	staff := group.Group("")
	staff.Use(staffMiddleware)
	{
		staff.PUT("/:weekday", h.Update)
	}
}
