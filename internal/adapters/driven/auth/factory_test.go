package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careercopilot/ccimport/internal/core/domain"
)

// TestNewTokenProvider verifies the mode to provider mapping. Mode None
// must yield no provider at all so that a run never touches an identity
// routine.
func TestNewTokenProvider(t *testing.T) {
	t.Run("mode None yields no provider", func(t *testing.T) {
		provider, err := NewTokenProvider(domain.AuthSettings{Mode: domain.AuthModeNone})

		require.NoError(t, err)
		assert.Nil(t, provider)
	})

	t.Run("mode Interactive yields the browser provider", func(t *testing.T) {
		provider, err := NewTokenProvider(domain.AuthSettings{
			Mode:            domain.AuthModeInteractive,
			ClientID:        "client-1",
			Instance:        "https://login.example.com",
			TenantID:        "tenant-x",
			Scope:           "access_as_user",
			BackendClientID: "backend-1",
		})

		require.NoError(t, err)
		require.NotNil(t, provider)
		assert.IsType(t, &InteractiveProvider{}, provider)
		assert.Equal(t, domain.AuthModeInteractive, provider.AuthMethod())
	})

	t.Run("unknown mode fails", func(t *testing.T) {
		_, err := NewTokenProvider(domain.AuthSettings{Mode: domain.AuthMode("Kerberos")})

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}
