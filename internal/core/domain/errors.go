package domain

import "errors"

// Domain errors represent client state failures.
// These are distinct from transport errors, which are wrapped by the
// google connector layer.
var (
	// ErrInvalidInput indicates malformed or invalid configuration.
	ErrInvalidInput = errors.New("invalid input")

	// ErrWorksheetUnresolved indicates a row fetch was attempted in the
	// private flow before a worksheet id was resolved. This is a caller
	// sequencing bug and fails immediately rather than silently no-opping.
	ErrWorksheetUnresolved = errors.New("worksheet not resolved")

	// ErrKeyRequired indicates an operation needs a spreadsheet key but
	// none is configured.
	ErrKeyRequired = errors.New("spreadsheet key required")

	// Authentication errors.

	// ErrAuthRequired indicates the private flow was invoked without a
	// signed-in token provider.
	ErrAuthRequired = errors.New("authentication required")

	// ErrAuthFailed indicates the sign-in flow reported a failure.
	ErrAuthFailed = errors.New("authentication failed")
)
