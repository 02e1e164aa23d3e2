package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kamaru-dev/gpcal-api/internal/service"
	appErrors "github.com/kamaru-dev/gpcal-api/pkg/errors"
	"github.com/kamaru-dev/gpcal-api/pkg/response"
)

// InsightHandler exposes the AI insight endpoint.
type InsightHandler struct {
	insights *service.InsightService
}

// NewInsightHandler constructs handler.
func NewInsightHandler(insights *service.InsightService) *InsightHandler {
	return &InsightHandler{insights: insights}
}

// Generate godoc
// @Summary Ask the AI collaborator about a semester
// @Tags Insights
// @Accept json
// @Produce json
// @Param id path string true "Semester ID"
// @Param payload body service.InsightRequest true "Insight payload"
// @Success 200 {object} response.Envelope
// @Router /semesters/{id}/insight [post]
func (h *InsightHandler) Generate(c *gin.Context) {
	var req service.InsightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	insight, err := h.insights.Generate(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, insight, nil)
}
