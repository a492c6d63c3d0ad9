// Package sheets implements the client for the Google Spreadsheets feed
// API (https://spreadsheets.google.com/feeds, alt=json).
//
// The package covers four concerns:
//   - URL construction for the public and private feed endpoints
//   - decoding of the wrapped GData JSON shapes and projection into
//     domain entities (plain strings, parsed timestamps, flattened
//     author lists)
//   - the worksheet-id / grid-id codec used in public-facing URLs
//   - the Fetcher, which sequences list -> worksheet -> rows as one
//     composed operation with an injected response cache and per-stage
//     events
package sheets
