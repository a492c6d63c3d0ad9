package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSpreadsheet_Matches(t *testing.T) {
	s := Spreadsheet{
		AlternateLink: "https://docs.google.com/spreadsheets/d/1Bxi74OgvE2upms/edit",
	}

	assert.True(t, s.Matches("1Bxi74OgvE2upms"))
	assert.False(t, s.Matches("other-key"))
	assert.False(t, s.Matches(""), "empty key never matches")
}

func TestRowFeed_Tab(t *testing.T) {
	updated := time.Date(2015, 3, 14, 9, 26, 53, 0, time.UTC)
	feed := RowFeed{
		Title:   "Expenses",
		Updated: updated,
		Authors: []Author{{Email: "jo@example.com", Name: "Jo"}},
		Rows:    []Row{{Title: "r1"}},
	}

	tab := feed.Tab()
	assert.Equal(t, "Expenses", tab.Title)
	assert.Equal(t, updated, tab.Updated)
	assert.Equal(t, feed.Authors, tab.Authors)
}
