package driven

import "github.com/careercopilot/ccimport/internal/core/domain"

// SettingsStore persists tool configuration.
type SettingsStore interface {
	// Load reads the stored settings. A missing store yields the
	// built-in defaults; an unreadable or malformed store is an error.
	Load() (domain.Settings, error)

	// Save writes the settings, creating the store if needed.
	Save(settings domain.Settings) error

	// Path returns the store location for display to the operator.
	Path() string
}
