package auth

import (
	"context"
	"fmt"
	"sync"

	"github.com/ledgerline-labs/sheetfeed/internal/core/domain"
	"github.com/ledgerline-labs/sheetfeed/internal/core/ports/driven"
)

// Ensure SignInBridge implements the interface.
var _ driven.TokenProvider = (*SignInBridge)(nil)

// SignInBridge adapts an external sign-in flow to the TokenProvider
// port. The flow reports its outcome through Succeed or Fail; private
// fetches are gated until Succeed has delivered a bearer token.
//
// A reported failure is surfaced as a typed domain.ErrAuthFailed through
// both GetToken and the optional failure handler, so callers can react
// to a failed sign-in instead of only seeing an unauthenticated state.
type SignInBridge struct {
	mu        sync.RWMutex
	token     string
	signInErr error

	onFailure func(error)
}

// BridgeOption configures a SignInBridge.
type BridgeOption func(*SignInBridge)

// WithFailureHandler registers a handler invoked on sign-in failure.
func WithFailureHandler(h func(error)) BridgeOption {
	return func(b *SignInBridge) { b.onFailure = h }
}

// NewSignInBridge creates an unauthenticated bridge.
func NewSignInBridge(opts ...BridgeOption) *SignInBridge {
	b := &SignInBridge{}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Succeed records a successful sign-in with the extracted bearer token.
// It clears any previously recorded failure.
func (b *SignInBridge) Succeed(token string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.token = token
	b.signInErr = nil
}

// Fail records a sign-in failure. Subsequent GetToken calls return the
// typed error; there is no retry.
func (b *SignInBridge) Fail(cause error) {
	b.mu.Lock()
	b.token = ""
	b.signInErr = fmt.Errorf("%w: %v", domain.ErrAuthFailed, cause)
	err := b.signInErr
	handler := b.onFailure
	b.mu.Unlock()

	if handler != nil {
		handler(err)
	}
}

// GetToken returns the bearer token from the last successful sign-in.
func (b *SignInBridge) GetToken(_ context.Context) (string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.signInErr != nil {
		return "", b.signInErr
	}
	if b.token == "" {
		return "", domain.ErrAuthRequired
	}
	return b.token, nil
}

// IsAuthenticated reports whether a sign-in has succeeded.
func (b *SignInBridge) IsAuthenticated() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.token != "" && b.signInErr == nil
}
