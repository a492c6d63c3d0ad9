package domain

import (
	"strings"
	"time"
)

// Author identifies a feed author as an {email, name} pair.
// Wire-format author lists are flattened to this shape by projection.
type Author struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Spreadsheet is one item of the user's spreadsheet list feed.
type Spreadsheet struct {
	// Title is the spreadsheet's display title.
	Title string `json:"title"`

	// Updated is the last modification time.
	Updated time.Time `json:"updated"`

	// Authors are the feed-level authors in document order.
	Authors []Author `json:"authors"`

	// FeedID is the entry's feed id URL.
	FeedID string `json:"feed_id"`

	// AlternateLink is the entry's alternate (web UI) link, used to match
	// a configured spreadsheet key by substring.
	AlternateLink string `json:"alternate_link"`
}

// Matches reports whether the spreadsheet's alternate link contains the
// given key. The list feed carries no key field of its own, so matching
// is a substring scan over the link, as the web UI embeds the key there.
func (s Spreadsheet) Matches(key string) bool {
	return key != "" && strings.Contains(s.AlternateLink, key)
}

// Sheet is resolved spreadsheet metadata.
type Sheet struct {
	Title   string    `json:"title"`
	Updated time.Time `json:"updated"`
	Authors []Author  `json:"authors"`

	// ID is the sheet's feed id URL. The worksheet id is its last path
	// segment.
	ID string `json:"id"`
}

// Tab is worksheet metadata for a single tab.
type Tab struct {
	Title   string    `json:"title"`
	Updated time.Time `json:"updated"`
	Authors []Author  `json:"authors"`
}

// Row is one projected row of a list feed.
type Row struct {
	// Title is the row's title column value.
	Title string `json:"title"`

	// Content is the row's content summary as reported by the feed.
	Content string `json:"content"`

	// Columns lists the row's column names in document order.
	Columns []string `json:"columns"`

	// Cells maps column name to cell value.
	Cells map[string]string `json:"cells"`
}

// RowFeed is an ordered sequence of rows plus feed-level metadata.
type RowFeed struct {
	Title   string    `json:"title"`
	Updated time.Time `json:"updated"`
	Authors []Author  `json:"authors"`
	Rows    []Row     `json:"rows"`
}

// Tab derives worksheet metadata from the feed itself. Public row feeds
// bundle both, so the feed doubles as the tab in the public flow.
func (f *RowFeed) Tab() Tab {
	return Tab{
		Title:   f.Title,
		Updated: f.Updated,
		Authors: f.Authors,
	}
}
