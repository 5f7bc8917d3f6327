package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/term"

	"github.com/careercopilot/ccimport/internal/adapters/driving/oauth"
	"github.com/careercopilot/ccimport/internal/core/domain"
	"github.com/careercopilot/ccimport/internal/core/ports/driven"
)

// callbackTimeout bounds how long a login waits for the user to finish
// signing in in the browser.
const callbackTimeout = 5 * time.Minute

// InteractiveProvider acquires a bearer token through a browser based
// authorization code flow with PKCE against the configured identity
// tenant. The token is acquired at most once per process and reused
// for every subsequent request.
type InteractiveProvider struct {
	auth domain.AuthSettings

	mu    sync.Mutex
	token string

	// openBrowser is swappable so tests can drive the flow headlessly.
	openBrowser func(url string) error
}

// Ensure InteractiveProvider implements the TokenProvider interface.
var _ driven.TokenProvider = (*InteractiveProvider)(nil)

// NewInteractiveProvider creates a provider for the given identity
// settings. No browser or network activity happens until GetToken.
func NewInteractiveProvider(auth domain.AuthSettings) *InteractiveProvider {
	return &InteractiveProvider{
		auth:        auth,
		openBrowser: oauth.OpenBrowser,
	}
}

// GetToken returns the cached token, or runs the interactive sign-in
// when no token has been acquired yet. Sign-in requires a terminal on
// stdin; headless invocations fail with ErrNoTerminal instead of
// hanging on a browser that will never open.
func (p *InteractiveProvider) GetToken(ctx context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.token != "" {
		return p.token, nil
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return "", domain.ErrNoTerminal
	}

	token, err := p.login(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrAuthFailed, err)
	}

	p.token = token
	return token, nil
}

// AuthMethod returns AuthModeInteractive.
func (p *InteractiveProvider) AuthMethod() domain.AuthMode {
	return domain.AuthModeInteractive
}

// login runs one full authorization code exchange: start the local
// callback server, send the user's browser to the authorize endpoint,
// wait for the redirect, and trade the code for a token.
func (p *InteractiveProvider) login(ctx context.Context) (string, error) {
	state, err := generateState()
	if err != nil {
		return "", fmt.Errorf("generate state: %w", err)
	}
	verifier := oauth2.GenerateVerifier()

	server := oauth.NewCallbackServer(redirectPort(p.auth.RedirectURI), state)
	if err := server.Start(); err != nil {
		return "", fmt.Errorf("start callback server: %w", err)
	}
	defer server.Stop() //nolint:errcheck // best-effort cleanup

	// A configured redirect URI must be passed through verbatim because
	// the identity provider matches it against the app registration.
	redirectURI := p.auth.RedirectURI
	if redirectURI == "" {
		redirectURI = server.RedirectURI()
	}

	cfg := p.oauthConfig(redirectURI)
	authURL := cfg.AuthCodeURL(state, oauth2.S256ChallengeOption(verifier))

	// Sign-in guidance goes to stderr unconditionally: without it the
	// user cannot complete the flow when the browser fails to open.
	fmt.Fprintln(os.Stderr, "Opening your browser to sign in...")
	if err := p.openBrowser(authURL); err != nil {
		fmt.Fprintf(os.Stderr, "Could not open a browser. Visit this URL to sign in:\n%s\n", authURL)
	}

	code, err := server.WaitForCode(callbackTimeout)
	if err != nil {
		return "", fmt.Errorf("wait for sign-in callback: %w", err)
	}

	tok, err := cfg.Exchange(ctx, code, oauth2.VerifierOption(verifier))
	if err != nil {
		return "", fmt.Errorf("exchange authorization code: %w", err)
	}

	return tok.AccessToken, nil
}

// oauthConfig builds the authorization code flow configuration for the
// tenant's v2.0 endpoints. The client is public (no secret), so client
// credentials go in the request body.
func (p *InteractiveProvider) oauthConfig(redirectURI string) *oauth2.Config {
	authority := strings.TrimRight(p.auth.Instance, "/") + "/" + p.auth.TenantID
	return &oauth2.Config{
		ClientID:    p.auth.ClientID,
		RedirectURL: redirectURI,
		Scopes:      []string{p.auth.ResourceScope()},
		Endpoint: oauth2.Endpoint{
			AuthURL:   authority + "/oauth2/v2.0/authorize",
			TokenURL:  authority + "/oauth2/v2.0/token",
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}
}

// redirectPort extracts the port to listen on from a configured
// redirect URI. An empty or portless URI binds any free port.
func redirectPort(redirectURI string) int {
	if redirectURI == "" {
		return 0
	}
	u, err := url.Parse(redirectURI)
	if err != nil || u.Port() == "" {
		return 0
	}
	port, err := strconv.Atoi(u.Port())
	if err != nil {
		return 0
	}
	return port
}

// generateState creates a random state parameter for CSRF protection.
func generateState() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(bytes), nil
}
