package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kamaru-dev/gpcal-api/internal/service"
	"github.com/kamaru-dev/gpcal-api/pkg/response"
)

// AnalyticsHandler exposes analytics endpoints.
type AnalyticsHandler struct {
	analytics *service.AnalyticsService
	metrics   *service.MetricsService
}

// NewAnalyticsHandler constructs handler.
func NewAnalyticsHandler(analytics *service.AnalyticsService, metrics *service.MetricsService) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics, metrics: metrics}
}

// SemesterAnalytics godoc
// @Summary Semester GPA, cumulative GPA, and donut chart data
// @Tags Analytics
// @Produce json
// @Param id path string true "Semester ID"
// @Success 200 {object} response.Envelope
// @Router /semesters/{id}/analytics [get]
func (h *AnalyticsHandler) SemesterAnalytics(c *gin.Context) {
	analytics, err := h.analytics.SemesterAnalytics(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, analytics, nil)
}

// System godoc
// @Summary Runtime metrics snapshot
// @Tags Analytics
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /analytics/system [get]
func (h *AnalyticsHandler) System(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.metrics.Snapshot(), nil)
}
