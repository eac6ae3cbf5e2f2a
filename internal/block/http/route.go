package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, staffMiddleware gin.HandlerFunc) {
	group := g.Group("/blocks")

	// === Staff Routes ===
	group.Use(staffMiddleware)
	{
		group.GET("", h.List)
		group.POST("", h.Create)
		group.DELETE("/:id", h.Delete)
	}
}
