package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kamaru-dev/gpcal-api/internal/models"
)

type mockSettingsRepo struct {
	entries map[string]*models.Configuration
}

func (m *mockSettingsRepo) Get(ctx context.Context, key string) (*models.Configuration, error) {
	if m.entries != nil {
		if cfg, ok := m.entries[key]; ok {
			return cfg, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *mockSettingsRepo) Upsert(ctx context.Context, cfg *models.Configuration) error {
	if m.entries == nil {
		m.entries = make(map[string]*models.Configuration)
	}
	m.entries[cfg.Key] = cfg
	return nil
}

func TestSettingsServiceDefaultsToFivePoint(t *testing.T) {
	svc := NewSettingsService(&mockSettingsRepo{}, validator.New(), zap.NewNop())

	scheme, err := svc.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.GradingFivePoint, scheme)
}

func TestSettingsServiceUpdateAndReadBack(t *testing.T) {
	svc := NewSettingsService(&mockSettingsRepo{}, validator.New(), zap.NewNop())

	resp, err := svc.UpdateGradingScheme(context.Background(), UpdateGradingSchemeRequest{GradingSystem: models.GradingPercentage})
	require.NoError(t, err)
	assert.Equal(t, models.GradingPercentage, resp.GradingSystem)

	scheme, err := svc.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.GradingPercentage, scheme)
}

func TestSettingsServiceRejectsUnknownScheme(t *testing.T) {
	svc := NewSettingsService(&mockSettingsRepo{}, validator.New(), zap.NewNop())

	_, err := svc.UpdateGradingScheme(context.Background(), UpdateGradingSchemeRequest{GradingSystem: "letters"})
	require.Error(t, err)
}

func TestSettingsServiceIgnoresCorruptStoredValue(t *testing.T) {
	repo := &mockSettingsRepo{entries: map[string]*models.Configuration{
		models.ConfigKeyGradingScheme: {Key: models.ConfigKeyGradingScheme, Value: "garbage"},
	}}
	svc := NewSettingsService(repo, validator.New(), zap.NewNop())

	scheme, err := svc.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.GradingFivePoint, scheme)
}
