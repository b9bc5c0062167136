package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Карта области: закладка, текущая точка или точка по умолчанию
	api.GET("/area", h.getArea)

	issues := api.Group("/issues")
	{
		issues.GET("/:id", h.getIssue)
		issues.GET("/:id/nearby", h.getNearby)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
