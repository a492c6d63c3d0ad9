package sheets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFeedURLs(t *testing.T) {
	base := DefaultBaseURL

	assert.Equal(t,
		"https://spreadsheets.google.com/feeds/spreadsheets/private/full?alt=json",
		spreadsheetsURL(base))

	assert.Equal(t,
		"https://spreadsheets.google.com/feeds/worksheets/abc123/private/full/2?alt=json",
		worksheetURL(base, "abc123", 2))

	assert.Equal(t,
		"https://spreadsheets.google.com/feeds/list/abc123/2/private/full?alt=json",
		privateRowsURL(base, "abc123", 2))

	assert.Equal(t,
		"https://spreadsheets.google.com/feeds/list/key9/1/public/values?alt=json",
		publicRowsURL(base, "key9", 1))
}

func TestWorksheetIDFromFeedID(t *testing.T) {
	assert.Equal(t, "abc123",
		worksheetIDFromFeedID("https://spreadsheets.google.com/feeds/spreadsheets/private/full/abc123"))

	// No slash: the id is returned as-is.
	assert.Equal(t, "abc123", worksheetIDFromFeedID("abc123"))
}
