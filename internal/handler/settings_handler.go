package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kamaru-dev/gpcal-api/internal/service"
	appErrors "github.com/kamaru-dev/gpcal-api/pkg/errors"
	"github.com/kamaru-dev/gpcal-api/pkg/response"
)

// SettingsHandler exposes global configuration endpoints.
type SettingsHandler struct {
	settings *service.SettingsService
}

// NewSettingsHandler constructs handler.
func NewSettingsHandler(settings *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

// GetGradingScheme godoc
// @Summary Current global grading scheme
// @Tags Settings
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /settings/grading-scheme [get]
func (h *SettingsHandler) GetGradingScheme(c *gin.Context) {
	scheme, err := h.settings.GradingScheme(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, scheme, nil)
}

// UpdateGradingScheme godoc
// @Summary Update the global grading scheme
// @Tags Settings
// @Accept json
// @Produce json
// @Param payload body service.UpdateGradingSchemeRequest true "Scheme payload"
// @Success 200 {object} response.Envelope
// @Router /settings/grading-scheme [put]
func (h *SettingsHandler) UpdateGradingScheme(c *gin.Context) {
	var req service.UpdateGradingSchemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	scheme, err := h.settings.UpdateGradingScheme(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, scheme, nil)
}
