package models

import "time"

// ConfigurationType defines supported types for configuration values.
type ConfigurationType string

const (
	ConfigurationTypeString  ConfigurationType = "STRING"
	ConfigurationTypeBoolean ConfigurationType = "BOOLEAN"
)

// ConfigKeyGradingScheme stores the current global grading scheme. It
// is read at semester-creation time only; changing it never alters
// existing semesters.
const ConfigKeyGradingScheme = "grading_scheme"

// Configuration represents a persisted configuration entry.
type Configuration struct {
	Key         string            `db:"key" json:"key"`
	Value       string            `db:"value" json:"value"`
	Type        ConfigurationType `db:"type" json:"type"`
	Description *string           `db:"description" json:"description,omitempty"`
	UpdatedAt   time.Time         `db:"updated_at" json:"updated_at"`
}
