package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"appcenter-datasource-backend/internal/service"
)

type HealthController struct {
	healthService service.HealthService
}

func NewHealthController(healthService service.HealthService) *HealthController {
	return &HealthController{
		healthService: healthService,
	}
}

func RegisterHealthRoutes(router *gin.Engine, controller *HealthController) {
	router.GET("/api/v1/health", controller.CheckHealth)
}

// CheckHealth godoc
// @Summary      Test the data source connection
// @Description  Validates the configured base URL and API key, then lists organizations once to confirm App Center is reachable. The outcome is reported in the body; the status code is always 200.
// @Tags         health
// @Produce      json
// @Success      200 {object} dto.HealthCheckResult "Connectivity result"
// @Router       /api/v1/health [get]
func (c *HealthController) CheckHealth(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.healthService.CheckHealth(ctx.Request.Context()))
}
