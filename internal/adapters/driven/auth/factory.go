package auth

import (
	"fmt"

	"github.com/careercopilot/ccimport/internal/core/domain"
	"github.com/careercopilot/ccimport/internal/core/ports/driven"
)

// NewTokenProvider creates the TokenProvider for the configured
// authentication mode. Mode None returns a nil provider: callers skip
// credential acquisition entirely, so no identity routine is invoked
// and uploads carry no Authorization header.
func NewTokenProvider(auth domain.AuthSettings) (driven.TokenProvider, error) {
	switch auth.Mode {
	case domain.AuthModeNone:
		return nil, nil
	case domain.AuthModeInteractive:
		return NewInteractiveProvider(auth), nil
	default:
		return nil, fmt.Errorf("%w: unsupported authentication mode %q", domain.ErrInvalidInput, auth.Mode)
	}
}
