package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"appcenter-datasource-backend/internal/dto"
	"appcenter-datasource-backend/internal/model"
	"appcenter-datasource-backend/internal/service"
)

type QueryController struct {
	queryService service.QueryService
}

func NewQueryController(queryService service.QueryService) *QueryController {
	return &QueryController{
		queryService: queryService,
	}
}

func RegisterQueryRoutes(router *gin.Engine, controller *QueryController) {
	v1 := router.Group("/api/v1")
	{
		v1.POST("/query", controller.HandleQuery)
	}
}

// HandleQuery godoc
// @Summary      Run a batch of App Center queries
// @Description  Runs every query of the batch against all configured apps over the given time range. Each query yields one frame or its own error; a failing query never fails the batch.
// @Tags         query
// @Accept       json
// @Produce      json
// @Param        request body dto.QueryDataRequest true "Time range, timezone, template variables and queries"
// @Success      200 {object} dto.QueryDataResponse "Per-query frames or errors, keyed by refId"
// @Failure      400 {object} model.Response "Invalid request body or time range"
// @Failure      500 {object} model.Response "Internal server error"
// @Router       /api/v1/query [post]
func (c *QueryController) HandleQuery(ctx *gin.Context) {
	var req dto.QueryDataRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Invalid query request body")
		ctx.JSON(http.StatusBadRequest, model.NewResponse("Invalid request body: "+err.Error(), nil))
		return
	}

	resp, err := c.queryService.Query(ctx.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidTimeRange) {
			ctx.JSON(http.StatusBadRequest, model.NewResponse(err.Error(), nil))
			return
		}
		log.Error().Err(err).Msg("Internal error running query batch")
		ctx.JSON(http.StatusInternalServerError, model.NewResponse("Internal server error", nil))
		return
	}

	ctx.JSON(http.StatusOK, resp)
}
