package sheets

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleListFeed = `{
  "feed": {
    "id": {"$t": "https://spreadsheets.google.com/feeds/list/abc123/1/private/full"},
    "title": {"$t": "Expenses", "type": "text"},
    "updated": {"$t": "2015-03-14T09:26:53.589Z"},
    "author": [
      {"name": {"$t": "Jo"}, "email": {"$t": "jo@example.com"}},
      {"name": {"$t": "Sam"}, "email": {"$t": "sam@example.com"}}
    ],
    "entry": [
      {
        "id": {"$t": "https://spreadsheets.google.com/feeds/list/abc123/1/private/full/row1"},
        "title": {"$t": "coffee"},
        "content": {"$t": "amount: 3.50"},
        "gsx$item": {"$t": "coffee"},
        "gsx$amount": {"$t": "3.50"},
        "gsx$category": {"$t": "food"}
      },
      {
        "title": {"$t": "train"},
        "content": {"$t": "amount: 12"},
        "gsx$item": {"$t": "train"},
        "gsx$amount": {"$t": "12"},
        "gsx$category": {"$t": "travel"}
      }
    ]
  }
}`

func TestListFeedProjection(t *testing.T) {
	var doc listFeedDoc
	require.NoError(t, json.Unmarshal([]byte(sampleListFeed), &doc))

	feed, err := doc.project()
	require.NoError(t, err)

	// Wrapped text projects to a plain string.
	assert.Equal(t, "Expenses", feed.Title)

	// Wrapped timestamp projects to the parsed date.
	want := time.Date(2015, 3, 14, 9, 26, 53, 589000000, time.UTC)
	assert.True(t, feed.Updated.Equal(want), "got %v", feed.Updated)

	// Authors flatten to {email, name} pairs in input order.
	require.Len(t, feed.Authors, 2)
	assert.Equal(t, "jo@example.com", feed.Authors[0].Email)
	assert.Equal(t, "Jo", feed.Authors[0].Name)
	assert.Equal(t, "sam@example.com", feed.Authors[1].Email)
	assert.Equal(t, "Sam", feed.Authors[1].Name)

	require.Len(t, feed.Rows, 2)
	assert.Equal(t, "coffee", feed.Rows[0].Title)
	assert.Equal(t, "amount: 3.50", feed.Rows[0].Content)

	// gsx$ columns keep their document order.
	assert.Equal(t, []string{"item", "amount", "category"}, feed.Rows[0].Columns)
	assert.Equal(t, map[string]string{
		"item":     "coffee",
		"amount":   "3.50",
		"category": "food",
	}, feed.Rows[0].Cells)
	assert.Equal(t, "travel", feed.Rows[1].Cells["category"])
}

const sampleSpreadsheetList = `{
  "feed": {
    "title": {"$t": "Available Spreadsheets"},
    "updated": {"$t": "2015-03-14T09:00:00.000Z"},
    "entry": [
      {
        "id": {"$t": "https://spreadsheets.google.com/feeds/spreadsheets/private/full/abc123"},
        "title": {"$t": "Expenses"},
        "updated": {"$t": "2015-03-14T09:26:53.589Z"},
        "author": [{"name": {"$t": "Jo"}, "email": {"$t": "jo@example.com"}}],
        "link": [
          {"rel": "self", "type": "application/atom+xml", "href": "https://spreadsheets.google.com/feeds/spreadsheets/private/full/abc123"},
          {"rel": "alternate", "type": "text/html", "href": "https://docs.google.com/spreadsheets/d/abc123/edit"}
        ]
      }
    ]
  }
}`

func TestSpreadsheetListProjection(t *testing.T) {
	var doc spreadsheetListDoc
	require.NoError(t, json.Unmarshal([]byte(sampleSpreadsheetList), &doc))

	list, err := doc.project()
	require.NoError(t, err)
	require.Len(t, list, 1)

	s := list[0]
	assert.Equal(t, "Expenses", s.Title)
	assert.Equal(t, "https://spreadsheets.google.com/feeds/spreadsheets/private/full/abc123", s.FeedID)
	assert.Equal(t, "https://docs.google.com/spreadsheets/d/abc123/edit", s.AlternateLink)
	require.Len(t, s.Authors, 1)
	assert.Equal(t, "Jo", s.Authors[0].Name)

	assert.True(t, s.Matches("abc123"))
}

const sampleWorksheetEntry = `{
  "entry": {
    "id": {"$t": "https://spreadsheets.google.com/feeds/worksheets/abc123/private/full/od6"},
    "title": {"$t": "Sheet1"},
    "updated": {"$t": "2015-03-14T09:26:53.589Z"},
    "author": [{"name": {"$t": "Jo"}, "email": {"$t": "jo@example.com"}}]
  }
}`

func TestWorksheetEntryProjection(t *testing.T) {
	var doc worksheetEntryDoc
	require.NoError(t, json.Unmarshal([]byte(sampleWorksheetEntry), &doc))

	tab, err := doc.project()
	require.NoError(t, err)
	assert.Equal(t, "Sheet1", tab.Title)
	assert.False(t, tab.Updated.IsZero())
	require.Len(t, tab.Authors, 1)
	assert.Equal(t, "jo@example.com", tab.Authors[0].Email)
}

func TestListEntry_BadTimestamp(t *testing.T) {
	var doc listFeedDoc
	raw := `{"feed": {"updated": {"$t": "not-a-date"}, "entry": []}}`
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	_, err := doc.project()
	assert.Error(t, err)
}

func TestListEntry_MissingTimestamp(t *testing.T) {
	var doc listFeedDoc
	raw := `{"feed": {"title": {"$t": "t"}, "entry": []}}`
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	feed, err := doc.project()
	require.NoError(t, err)
	assert.True(t, feed.Updated.IsZero())
}
