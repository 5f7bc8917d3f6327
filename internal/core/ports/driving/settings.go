package driving

import (
	"context"

	"github.com/careercopilot/ccimport/internal/core/domain"
)

// SettingsService manages tool configuration.
type SettingsService interface {
	// Current returns the effective settings.
	Current(ctx context.Context) (domain.Settings, error)

	// Save validates and persists new settings.
	Save(ctx context.Context, settings domain.Settings) error

	// ConfigPath returns the configuration file location for display.
	ConfigPath() string
}
