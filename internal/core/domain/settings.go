package domain

import (
	"fmt"
	"net/url"
	"strings"
)

const unknownDescription = "Unknown"

// AuthMode defines how the tool authenticates against the backend.
type AuthMode string

// Available authentication modes.
const (
	// AuthModeNone sends requests without credentials. No identity
	// provider is contacted and no Authorization header is attached.
	AuthModeNone AuthMode = "None"

	// AuthModeInteractive acquires a bearer token once per run through
	// a browser-based login against the configured identity provider.
	AuthModeInteractive AuthMode = "Interactive"
)

// ParseAuthMode converts a configuration string into an AuthMode.
// Matching is case-insensitive; unknown values are an error.
func ParseAuthMode(s string) (AuthMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "":
		return AuthModeNone, nil
	case "interactive":
		return AuthModeInteractive, nil
	default:
		return "", fmt.Errorf("%w: unknown authentication mode %q", ErrInvalidInput, s)
	}
}

// IsValid returns true if the auth mode is recognised.
func (m AuthMode) IsValid() bool {
	switch m {
	case AuthModeNone, AuthModeInteractive:
		return true
	default:
		return false
	}
}

// RequiresLogin returns true if this mode contacts an identity provider.
func (m AuthMode) RequiresLogin() bool {
	return m == AuthModeInteractive
}

// String returns the string representation.
func (m AuthMode) String() string {
	return string(m)
}

// Description returns a human-readable description of the mode.
func (m AuthMode) Description() string {
	switch m {
	case AuthModeNone:
		return "None (no Authorization header)"
	case AuthModeInteractive:
		return "Interactive (browser login, token held for the run)"
	default:
		return unknownDescription
	}
}

// AuthSettings holds identity provider configuration. All fields except
// Mode are only consulted when Mode requires a login.
type AuthSettings struct {
	// Mode selects the authentication behaviour.
	Mode AuthMode

	// ClientID is this tool's registration with the identity provider.
	ClientID string

	// Instance is the identity provider's base (authority) URL.
	Instance string

	// TenantID is the directory tenant to authenticate against.
	TenantID string

	// RedirectURI is the registered redirect for the login flow. Its
	// port is where the local callback listener binds; an empty value
	// or port 0 picks a free port.
	RedirectURI string

	// Scope is the permission requested on the backend's audience.
	Scope string

	// BackendClientID is the backend's registration, used to build the
	// resource scope the token is requested for.
	BackendClientID string
}

// ResourceScope returns the fully qualified scope string requested during
// login: api://<backend-client-id>/<scope>.
func (a AuthSettings) ResourceScope() string {
	return fmt.Sprintf("api://%s/%s", a.BackendClientID, a.Scope)
}

// HistorySettings holds import ledger configuration.
type HistorySettings struct {
	// Enabled turns run recording on or off. The ledger never affects
	// upload behaviour either way.
	Enabled bool

	// Path is the SQLite database location. Empty means the default
	// path under the user's home directory.
	Path string
}

// Settings holds the complete tool configuration. It is loaded once at
// startup, validated, and passed by value into component constructors;
// nothing reads configuration ambiently after that.
type Settings struct {
	// ServiceURI is the backend base address uploads are sent to.
	ServiceURI string

	// Auth holds identity provider configuration.
	Auth AuthSettings

	// History holds import ledger configuration.
	History HistorySettings
}

// DefaultSettings returns the configuration used when no config file
// exists: a local unauthenticated backend with history recording on.
func DefaultSettings() Settings {
	return Settings{
		ServiceURI: "http://localhost:8080",
		Auth: AuthSettings{
			Mode: AuthModeNone,
		},
		History: HistorySettings{
			Enabled: true,
		},
	}
}

// Validate checks the settings are usable. Any violation is a
// configuration failure: fatal, reported, nothing attempted.
func (s Settings) Validate() error {
	u, err := url.Parse(s.ServiceURI)
	if err != nil {
		return fmt.Errorf("%w: service URI %q: %v", ErrInvalidInput, s.ServiceURI, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: service URI %q must use http or https", ErrInvalidInput, s.ServiceURI)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: service URI %q has no host", ErrInvalidInput, s.ServiceURI)
	}

	if !s.Auth.Mode.IsValid() {
		return fmt.Errorf("%w: unknown authentication mode %q", ErrInvalidInput, s.Auth.Mode)
	}
	if s.Auth.Mode.RequiresLogin() {
		for _, f := range []struct{ name, value string }{
			{"client id", s.Auth.ClientID},
			{"instance", s.Auth.Instance},
			{"tenant id", s.Auth.TenantID},
			{"scope", s.Auth.Scope},
			{"backend client id", s.Auth.BackendClientID},
		} {
			if strings.TrimSpace(f.value) == "" {
				return fmt.Errorf("%w: authentication mode %s requires %s", ErrInvalidInput, s.Auth.Mode, f.name)
			}
		}
		if s.Auth.RedirectURI != "" {
			if _, err := url.Parse(s.Auth.RedirectURI); err != nil {
				return fmt.Errorf("%w: redirect URI %q: %v", ErrInvalidInput, s.Auth.RedirectURI, err)
			}
		}
	}

	return nil
}
