package driven

import (
	"context"

	"github.com/careercopilot/ccimport/internal/core/domain"
)

// TokenProvider acquires the bearer token attached to upload requests.
//
// The token lifecycle is deliberately primitive: acquired at most once per
// run, held in memory, never persisted, never refreshed. A token expiring
// mid-run is a known limitation of the tool, not something implementations
// should paper over.
type TokenProvider interface {
	// GetToken returns an opaque bearer token. Implementations may block
	// on operator interaction (browser login); the run waits.
	GetToken(ctx context.Context) (string, error)

	// AuthMethod returns the authentication mode the provider serves.
	AuthMethod() domain.AuthMode
}
