// Package auth provides token providers for the feed client: the
// sign-in bridge fed by an external sign-in flow, a static bearer
// provider, an OAuth provider built on golang.org/x/oauth2, and a null
// provider for public-only access.
package auth

import (
	"context"

	"github.com/ledgerline-labs/sheetfeed/internal/core/ports/driven"
)

// Ensure NullTokenProvider implements the interface.
var _ driven.TokenProvider = (*NullTokenProvider)(nil)

// NullTokenProvider is the provider for public-only access. It is never
// authenticated, which keeps the private fetch flow gated off.
type NullTokenProvider struct{}

// NewNullTokenProvider creates a provider for public access.
func NewNullTokenProvider() *NullTokenProvider {
	return &NullTokenProvider{}
}

// GetToken returns an empty token.
func (p *NullTokenProvider) GetToken(_ context.Context) (string, error) {
	return "", nil
}

// IsAuthenticated always returns false.
func (p *NullTokenProvider) IsAuthenticated() bool {
	return false
}
