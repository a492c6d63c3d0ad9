package domain

import (
	"fmt"
	"strings"
)

// DefaultTabID is the worksheet index used when none is configured.
const DefaultTabID = 1

// Config holds the fetch configuration for a spreadsheet. It is an
// explicit value passed to Fetcher.Configure; changing it has no effect
// until the next Configure call.
type Config struct {
	// Key is the spreadsheet identifier. Empty means "list mode": only
	// the spreadsheet list can be fetched.
	Key string

	// TabID is the 1-based worksheet index within the spreadsheet.
	TabID int

	// ClientID is the OAuth client id. Empty means public access only.
	ClientID string

	// Published marks the spreadsheet as publicly readable, which enables
	// the simplified public URL scheme and skips worksheet resolution.
	Published bool
}

// Validate checks the configuration for internal consistency.
func (c Config) Validate() error {
	if c.TabID < 1 {
		return fmt.Errorf("%w: tab id must be >= 1, got %d", ErrInvalidInput, c.TabID)
	}
	return nil
}

// WithDefaults returns a copy of the config with defaults applied.
func (c Config) WithDefaults() Config {
	if c.TabID == 0 {
		c.TabID = DefaultTabID
	}
	return c
}

// EditorURL returns the "open in editor" URL, derived purely from the key.
// Returns empty string when no key is configured.
func (c Config) EditorURL() string {
	if strings.TrimSpace(c.Key) == "" {
		return ""
	}
	return "https://docs.google.com/spreadsheets/d/" + c.Key + "/edit"
}
