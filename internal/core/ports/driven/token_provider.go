package driven

import "context"

// TokenProvider provides bearer tokens for private feed requests.
// Implementations handle refresh transparently.
type TokenProvider interface {
	// GetToken returns a valid access token.
	// Returns empty string for public-only providers.
	GetToken(ctx context.Context) (string, error)

	// IsAuthenticated reports whether a valid sign-in is available.
	// The private fetch flow is gated on this: configuring a key alone
	// never issues a request until sign-in has succeeded.
	IsAuthenticated() bool
}
