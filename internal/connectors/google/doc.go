// Package google provides shared infrastructure for the Google feeds
// connector.
//
// This package contains common utilities used by the sheets connector:
//   - TokenSource adapter to bridge the TokenProvider port to oauth2.TokenSource
//   - Error handling for common feed API failures (401, 403, 404, 429)
//   - Rate limiting to stay inside Google API quotas
//
// # OAuth2 Scope
//
// The spreadsheets feed API uses the legacy GData scope:
//   - https://spreadsheets.google.com/feeds
package google
