package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/careercopilot/ccimport/internal/core/domain"
	"github.com/careercopilot/ccimport/internal/core/ports/driven"
)

// configFileName is the settings file inside the config directory.
const configFileName = "config.toml"

// Ensure SettingsStore implements the interface.
var _ driven.SettingsStore = (*SettingsStore)(nil)

// SettingsStore persists Settings as a TOML document.
type SettingsStore struct {
	filePath string
}

// settingsDocument is the on-disk shape of the configuration.
type settingsDocument struct {
	ServiceURI string          `toml:"service_uri" comment:"Backend base address uploads are sent to"`
	Auth       authDocument    `toml:"auth"`
	History    historyDocument `toml:"history"`
}

type authDocument struct {
	Mode            string `toml:"mode" comment:"None or Interactive"`
	ClientID        string `toml:"client_id,omitempty"`
	Instance        string `toml:"instance,omitempty"`
	TenantID        string `toml:"tenant_id,omitempty"`
	RedirectURI     string `toml:"redirect_uri,omitempty"`
	Scope           string `toml:"scope,omitempty"`
	BackendClientID string `toml:"backend_client_id,omitempty"`
}

type historyDocument struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path,omitempty"`
}

// DefaultConfigDir returns the per-user config directory, ~/.ccimport.
func DefaultConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(home, ".ccimport"), nil
}

// NewSettingsStore creates a TOML settings store under configDir.
// If configDir is empty, defaults to ~/.ccimport.
func NewSettingsStore(configDir string) (*SettingsStore, error) {
	if configDir == "" {
		dir, err := DefaultConfigDir()
		if err != nil {
			return nil, err
		}
		configDir = dir
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, fmt.Errorf("create config directory: %w", err)
	}

	return &SettingsStore{filePath: filepath.Join(configDir, configFileName)}, nil
}

// Load reads settings from disk. A missing file yields the defaults;
// fields absent from the document keep their default values.
func (s *SettingsStore) Load() (domain.Settings, error) {
	defaults := domain.DefaultSettings()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return defaults, nil
		}
		return domain.Settings{}, fmt.Errorf("read config: %w", err)
	}

	doc := toDocument(defaults)
	if err := toml.Unmarshal(data, &doc); err != nil {
		return domain.Settings{}, fmt.Errorf("parse %s: %w", s.filePath, err)
	}

	settings, err := fromDocument(doc)
	if err != nil {
		return domain.Settings{}, fmt.Errorf("parse %s: %w", s.filePath, err)
	}
	return settings, nil
}

// Save writes settings to disk with owner-only permissions.
func (s *SettingsStore) Save(settings domain.Settings) error {
	doc := toDocument(settings)
	data, err := toml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if err := os.WriteFile(s.filePath, data, 0600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Path returns the configuration file path.
func (s *SettingsStore) Path() string {
	return s.filePath
}

// toDocument converts domain settings to the on-disk shape.
func toDocument(settings domain.Settings) settingsDocument {
	return settingsDocument{
		ServiceURI: settings.ServiceURI,
		Auth: authDocument{
			Mode:            settings.Auth.Mode.String(),
			ClientID:        settings.Auth.ClientID,
			Instance:        settings.Auth.Instance,
			TenantID:        settings.Auth.TenantID,
			RedirectURI:     settings.Auth.RedirectURI,
			Scope:           settings.Auth.Scope,
			BackendClientID: settings.Auth.BackendClientID,
		},
		History: historyDocument{
			Enabled: settings.History.Enabled,
			Path:    settings.History.Path,
		},
	}
}

// fromDocument converts the on-disk shape back to domain settings.
// The auth mode string is normalised here so the rest of the tool only
// ever sees a valid AuthMode.
func fromDocument(doc settingsDocument) (domain.Settings, error) {
	mode, err := domain.ParseAuthMode(doc.Auth.Mode)
	if err != nil {
		return domain.Settings{}, err
	}

	return domain.Settings{
		ServiceURI: doc.ServiceURI,
		Auth: domain.AuthSettings{
			Mode:            mode,
			ClientID:        doc.Auth.ClientID,
			Instance:        doc.Auth.Instance,
			TenantID:        doc.Auth.TenantID,
			RedirectURI:     doc.Auth.RedirectURI,
			Scope:           doc.Auth.Scope,
			BackendClientID: doc.Auth.BackendClientID,
		},
		History: domain.HistorySettings{
			Enabled: doc.History.Enabled,
			Path:    doc.History.Path,
		},
	}, nil
}
