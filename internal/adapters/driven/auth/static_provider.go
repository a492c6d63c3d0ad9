package auth

import (
	"context"

	"github.com/ledgerline-labs/sheetfeed/internal/core/domain"
	"github.com/ledgerline-labs/sheetfeed/internal/core/ports/driven"
)

// Ensure StaticTokenProvider implements the interface.
var _ driven.TokenProvider = (*StaticTokenProvider)(nil)

// StaticTokenProvider serves a fixed bearer token, e.g. one persisted
// from an earlier sign-in. No refresh.
type StaticTokenProvider struct {
	token string
}

// NewStaticTokenProvider creates a provider around a fixed token.
func NewStaticTokenProvider(token string) *StaticTokenProvider {
	return &StaticTokenProvider{token: token}
}

// GetToken returns the fixed token.
func (p *StaticTokenProvider) GetToken(_ context.Context) (string, error) {
	if p.token == "" {
		return "", domain.ErrAuthRequired
	}
	return p.token, nil
}

// IsAuthenticated reports whether a token is present.
func (p *StaticTokenProvider) IsAuthenticated() bool {
	return p.token != ""
}
