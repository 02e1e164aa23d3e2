package service

import (
	"context"
	"database/sql"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/kamaru-dev/gpcal-api/internal/models"
	appErrors "github.com/kamaru-dev/gpcal-api/pkg/errors"
)

type settingsRepository interface {
	Get(ctx context.Context, key string) (*models.Configuration, error)
	Upsert(ctx context.Context, cfg *models.Configuration) error
}

// UpdateGradingSchemeRequest handles the scheme update payload.
type UpdateGradingSchemeRequest struct {
	GradingSystem models.GradingSystem `json:"grading_system" validate:"required"`
}

// GradingSchemeResponse is the settings endpoint payload.
type GradingSchemeResponse struct {
	GradingSystem models.GradingSystem   `json:"grading_system"`
	Available     []models.GradingSystem `json:"available"`
}

// SettingsService manages the global grading scheme. The setting only
// affects semesters created after the change; existing records keep the
// scheme frozen at their creation.
type SettingsService struct {
	repo      settingsRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewSettingsService constructs service.
func NewSettingsService(repo settingsRepository, validate *validator.Validate, logger *zap.Logger) *SettingsService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SettingsService{repo: repo, validator: validate, logger: logger}
}

// Current returns the active global grading scheme, falling back to the
// five point scale when none was ever configured.
func (s *SettingsService) Current(ctx context.Context) (models.GradingSystem, error) {
	cfg, err := s.repo.Get(ctx, models.ConfigKeyGradingScheme)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.GradingFivePoint, nil
		}
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load grading scheme")
	}
	scheme := models.GradingSystem(cfg.Value)
	if !scheme.Valid() {
		s.logger.Warn("stored grading scheme is unknown, using default", zap.String("value", cfg.Value))
		return models.GradingFivePoint, nil
	}
	return scheme, nil
}

// GradingScheme returns the active scheme plus the closed set of
// recognised identifiers.
func (s *SettingsService) GradingScheme(ctx context.Context) (*GradingSchemeResponse, error) {
	scheme, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}
	return &GradingSchemeResponse{GradingSystem: scheme, Available: models.GradingSystems()}, nil
}

// UpdateGradingScheme replaces the active scheme.
func (s *SettingsService) UpdateGradingScheme(ctx context.Context, req UpdateGradingSchemeRequest) (*GradingSchemeResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid grading scheme payload")
	}
	if !req.GradingSystem.Valid() {
		return nil, appErrors.Clone(appErrors.ErrUnknownScheme, "")
	}
	cfg := &models.Configuration{
		Key:   models.ConfigKeyGradingScheme,
		Value: string(req.GradingSystem),
		Type:  models.ConfigurationTypeString,
	}
	if err := s.repo.Upsert(ctx, cfg); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update grading scheme")
	}
	return &GradingSchemeResponse{GradingSystem: req.GradingSystem, Available: models.GradingSystems()}, nil
}
