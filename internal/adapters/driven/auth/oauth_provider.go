package auth

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/ledgerline-labs/sheetfeed/internal/core/domain"
	"github.com/ledgerline-labs/sheetfeed/internal/core/ports/driven"
)

// FeedScope is the legacy GData scope covering the spreadsheets feed
// API.
const FeedScope = "https://spreadsheets.google.com/feeds"

// Ensure OAuthProvider implements the interface.
var _ driven.TokenProvider = (*OAuthProvider)(nil)

// OAuthProvider provides bearer tokens via the Google OAuth2
// authorization-code flow, refreshing transparently through the oauth2
// package once a token has been exchanged.
type OAuthProvider struct {
	config oauth2.Config

	mu     sync.RWMutex
	source oauth2.TokenSource
}

// NewOAuthProvider creates an OAuth provider for the given client. The
// redirect URL may be empty when the caller drives an out-of-band code
// exchange.
func NewOAuthProvider(clientID, clientSecret, redirectURL string) *OAuthProvider {
	return &OAuthProvider{
		config: oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       []string{FeedScope},
			Endpoint:     google.Endpoint,
		},
	}
}

// AuthURL builds the authorization URL to open in a browser. Offline
// access is requested so a refresh token is issued.
func (p *OAuthProvider) AuthURL(state string) string {
	return p.config.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

// Exchange trades an authorization code for tokens and arms the
// provider.
func (p *OAuthProvider) Exchange(ctx context.Context, code string) error {
	tok, err := p.config.Exchange(ctx, code)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrAuthFailed, err)
	}
	p.SetToken(tok)
	return nil
}

// SetToken arms the provider with a previously persisted token.
func (p *OAuthProvider) SetToken(tok *oauth2.Token) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.source = p.config.TokenSource(context.Background(), tok)
}

// GetToken returns a valid access token, refreshing if necessary.
func (p *OAuthProvider) GetToken(_ context.Context) (string, error) {
	p.mu.RLock()
	source := p.source
	p.mu.RUnlock()

	if source == nil {
		return "", domain.ErrAuthRequired
	}
	tok, err := source.Token()
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrAuthFailed, err)
	}
	return tok.AccessToken, nil
}

// IsAuthenticated reports whether a token exchange has completed.
func (p *OAuthProvider) IsAuthenticated() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.source != nil
}
