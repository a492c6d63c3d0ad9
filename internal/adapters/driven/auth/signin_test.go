package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerline-labs/sheetfeed/internal/core/domain"
)

func TestSignInBridge_Unauthenticated(t *testing.T) {
	bridge := NewSignInBridge()

	assert.False(t, bridge.IsAuthenticated())

	_, err := bridge.GetToken(context.Background())
	assert.ErrorIs(t, err, domain.ErrAuthRequired)
}

func TestSignInBridge_Succeed(t *testing.T) {
	bridge := NewSignInBridge()
	bridge.Succeed("ya29.token")

	assert.True(t, bridge.IsAuthenticated())

	token, err := bridge.GetToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ya29.token", token)
}

func TestSignInBridge_Fail(t *testing.T) {
	var handled error
	bridge := NewSignInBridge(WithFailureHandler(func(err error) { handled = err }))

	cause := errors.New("popup closed")
	bridge.Fail(cause)

	assert.False(t, bridge.IsAuthenticated())

	_, err := bridge.GetToken(context.Background())
	assert.ErrorIs(t, err, domain.ErrAuthFailed)
	assert.Contains(t, err.Error(), "popup closed")

	// The failure handler sees the same typed error.
	assert.ErrorIs(t, handled, domain.ErrAuthFailed)
}

func TestSignInBridge_SucceedClearsFailure(t *testing.T) {
	bridge := NewSignInBridge()
	bridge.Fail(errors.New("transient"))
	bridge.Succeed("tok")

	assert.True(t, bridge.IsAuthenticated())
	token, err := bridge.GetToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok", token)
}

func TestStaticTokenProvider(t *testing.T) {
	p := NewStaticTokenProvider("fixed")
	assert.True(t, p.IsAuthenticated())

	token, err := p.GetToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "fixed", token)

	empty := NewStaticTokenProvider("")
	assert.False(t, empty.IsAuthenticated())
	_, err = empty.GetToken(context.Background())
	assert.ErrorIs(t, err, domain.ErrAuthRequired)
}

func TestNullTokenProvider(t *testing.T) {
	p := NewNullTokenProvider()
	assert.False(t, p.IsAuthenticated())

	token, err := p.GetToken(context.Background())
	require.NoError(t, err)
	assert.Empty(t, token)
}
