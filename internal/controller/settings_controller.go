package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"appcenter-datasource-backend/internal/dto"
	"appcenter-datasource-backend/internal/model"
	"appcenter-datasource-backend/internal/service"
)

type SettingsController struct {
	settingsService service.SettingsService
}

func NewSettingsController(settingsService service.SettingsService) *SettingsController {
	return &SettingsController{
		settingsService: settingsService,
	}
}

func RegisterSettingsRoutes(router *gin.Engine, controller *SettingsController) {
	v1 := router.Group("/api/v1/settings")
	{
		v1.GET("", controller.GetSettings)
		v1.PUT("", controller.UpdateSettings)
	}
}

// GetSettings godoc
// @Summary      Get data source settings
// @Description  Returns the active settings. The API key is masked.
// @Tags         settings
// @Produce      json
// @Success      200 {object} dto.SettingsResponse
// @Router       /api/v1/settings [get]
func (c *SettingsController) GetSettings(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.settingsService.GetSettings(ctx.Request.Context()))
}

// UpdateSettings godoc
// @Summary      Replace data source settings
// @Description  Saves the settings and switches new queries to them. Whitespace in organization and app names becomes "-". An empty apiKey keeps the stored key.
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        request body dto.UpdateSettingsRequest true "New settings"
// @Success      200 {object} dto.SettingsResponse
// @Failure      400 {object} model.Response "Invalid request body"
// @Failure      500 {object} model.Response "Settings could not be saved"
// @Router       /api/v1/settings [put]
func (c *SettingsController) UpdateSettings(ctx *gin.Context) {
	var req dto.UpdateSettingsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Invalid settings request body")
		ctx.JSON(http.StatusBadRequest, model.NewResponse("Invalid request body: "+err.Error(), nil))
		return
	}

	resp, err := c.settingsService.UpdateSettings(ctx.Request.Context(), req)
	if err != nil {
		log.Error().Err(err).Msg("Failed to update settings")
		ctx.JSON(http.StatusInternalServerError, model.NewResponse("Failed to save settings", nil))
		return
	}

	ctx.JSON(http.StatusOK, resp)
}
