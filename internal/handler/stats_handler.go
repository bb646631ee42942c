package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pvpit/gatepass-api/internal/models"
	"github.com/pvpit/gatepass-api/pkg/response"
)

type statsService interface {
	Report(ctx context.Context) (*models.StatisticsReport, error)
}

// StatsHandler exposes the statistics endpoint.
type StatsHandler struct {
	stats statsService
}

// NewStatsHandler constructs StatsHandler.
func NewStatsHandler(stats statsService) *StatsHandler {
	return &StatsHandler{stats: stats}
}

// RegisterRoutes wires the statistics route behind the guard.
func (h *StatsHandler) RegisterRoutes(r *gin.Engine, guard gin.HandlerFunc) {
	r.GET("/get_statistics", guard, h.Statistics)
}

// Statistics godoc
// @Summary Gate pass counts per type and status
// @Tags Watchmen
// @Produce json
// @Success 200 {object} models.StatisticsReport
// @Router /get_statistics [get]
func (h *StatsHandler) Statistics(c *gin.Context) {
	report, err := h.stats.Report(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, report)
}
