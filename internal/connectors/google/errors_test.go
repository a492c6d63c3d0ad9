package google

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/api/googleapi"
)

func apiError(code int) error {
	return &googleapi.Error{Code: code, Message: http.StatusText(code)}
}

func TestWrapError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "unauthorized", err: apiError(http.StatusUnauthorized), want: ErrUnauthorized},
		{name: "forbidden", err: apiError(http.StatusForbidden), want: ErrForbidden},
		{name: "not found", err: apiError(http.StatusNotFound), want: ErrNotFound},
		{name: "rate limited", err: apiError(http.StatusTooManyRequests), want: ErrRateLimited},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := WrapError(tt.err)
			assert.ErrorIs(t, wrapped, tt.want)

			// The raw API error stays inspectable.
			var gerr *googleapi.Error
			assert.True(t, errors.As(wrapped, &gerr))
		})
	}
}

func TestWrapError_Passthrough(t *testing.T) {
	assert.Nil(t, WrapError(nil))

	plain := errors.New("network down")
	assert.Equal(t, plain, WrapError(plain))

	// Unmapped status codes pass through unwrapped.
	server := apiError(http.StatusInternalServerError)
	assert.Equal(t, server, WrapError(server))
}

func TestErrorPredicates(t *testing.T) {
	tests := []struct {
		name string
		err  error
		pred func(error) bool
	}{
		{name: "unauthorized sentinel", err: ErrUnauthorized, pred: IsUnauthorized},
		{name: "unauthorized api error", err: apiError(http.StatusUnauthorized), pred: IsUnauthorized},
		{name: "forbidden api error", err: apiError(http.StatusForbidden), pred: IsForbidden},
		{name: "not found api error", err: apiError(http.StatusNotFound), pred: IsNotFound},
		{name: "rate limited api error", err: apiError(http.StatusTooManyRequests), pred: IsRateLimited},
		{name: "wrapped sentinel", err: fmt.Errorf("fetch: %w", ErrNotFound), pred: IsNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.pred(tt.err))
		})
	}

	assert.False(t, IsUnauthorized(errors.New("other")))
	assert.False(t, IsNotFound(nil))
}
