package sheets

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/ledgerline-labs/sheetfeed/internal/core/domain"
)

// The feed API wraps every scalar in an object with a "$t" member and
// reports timestamps as RFC 3339 strings. The raw shapes below mirror the
// wire format; projection into domain entities happens in the project*
// functions so every fetch path normalises identically.

type wrappedText struct {
	Value string `json:"$t"`
}

type wrappedTime struct {
	Value string `json:"$t"`
}

// Time parses the wrapped timestamp. A missing timestamp projects to the
// zero time rather than an error; the feed omits it on some entries.
func (w wrappedTime) Time() (time.Time, error) {
	if w.Value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, w.Value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse feed timestamp %q: %w", w.Value, err)
	}
	return t, nil
}

type rawAuthor struct {
	Name  wrappedText `json:"name"`
	Email wrappedText `json:"email"`
}

type rawLink struct {
	Rel  string `json:"rel"`
	Type string `json:"type"`
	Href string `json:"href"`
}

// alternateLink returns the href of the first link with rel=alternate.
func alternateLink(links []rawLink) string {
	for _, l := range links {
		if l.Rel == "alternate" {
			return l.Href
		}
	}
	return ""
}

// spreadsheetListDoc is the response envelope of the spreadsheet list feed.
type spreadsheetListDoc struct {
	Feed spreadsheetListFeed `json:"feed"`
}

type spreadsheetListFeed struct {
	ID      wrappedText        `json:"id"`
	Title   wrappedText        `json:"title"`
	Updated wrappedTime        `json:"updated"`
	Author  []rawAuthor        `json:"author"`
	Entry   []spreadsheetEntry `json:"entry"`
}

type spreadsheetEntry struct {
	ID      wrappedText `json:"id"`
	Title   wrappedText `json:"title"`
	Updated wrappedTime `json:"updated"`
	Author  []rawAuthor `json:"author"`
	Link    []rawLink   `json:"link"`
}

// worksheetEntryDoc is the response envelope of a single worksheet
// metadata entry.
type worksheetEntryDoc struct {
	Entry worksheetEntry `json:"entry"`
}

type worksheetEntry struct {
	ID      wrappedText `json:"id"`
	Title   wrappedText `json:"title"`
	Updated wrappedTime `json:"updated"`
	Author  []rawAuthor `json:"author"`
}

// listFeedDoc is the response envelope of a row (list) feed.
type listFeedDoc struct {
	Feed listFeed `json:"feed"`
}

type listFeed struct {
	ID      wrappedText `json:"id"`
	Title   wrappedText `json:"title"`
	Updated wrappedTime `json:"updated"`
	Author  []rawAuthor `json:"author"`
	Entry   []listEntry `json:"entry"`
}

// gsxPrefix marks the per-column members of a row entry. Column names are
// whatever follows the prefix, in document order.
const gsxPrefix = "gsx$"

// listEntry is one row of a list feed. Known members decode normally;
// gsx$-prefixed members are collected into Cells preserving their order
// of appearance, which follows the sheet's column order.
type listEntry struct {
	ID      wrappedText
	Title   wrappedText
	Content wrappedText
	Updated wrappedTime

	ColumnOrder []string
	Cells       map[string]string
}

func (e *listEntry) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("row entry: expected object, got %v", tok)
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("row entry: expected member name, got %v", keyTok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}

		switch {
		case key == "id":
			err = json.Unmarshal(raw, &e.ID)
		case key == "title":
			err = json.Unmarshal(raw, &e.Title)
		case key == "content":
			err = json.Unmarshal(raw, &e.Content)
		case key == "updated":
			err = json.Unmarshal(raw, &e.Updated)
		case strings.HasPrefix(key, gsxPrefix):
			var w wrappedText
			if err = json.Unmarshal(raw, &w); err != nil {
				break
			}
			name := strings.TrimPrefix(key, gsxPrefix)
			if e.Cells == nil {
				e.Cells = make(map[string]string)
			}
			if _, seen := e.Cells[name]; !seen {
				e.ColumnOrder = append(e.ColumnOrder, name)
			}
			e.Cells[name] = w.Value
		}
		if err != nil {
			return fmt.Errorf("row entry member %q: %w", key, err)
		}
	}

	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

// projectAuthors flattens a wire author list to ordered {email, name}
// pairs.
func projectAuthors(raw []rawAuthor) []domain.Author {
	if len(raw) == 0 {
		return nil
	}
	authors := make([]domain.Author, 0, len(raw))
	for _, a := range raw {
		authors = append(authors, domain.Author{
			Email: a.Email.Value,
			Name:  a.Name.Value,
		})
	}
	return authors
}

func (d spreadsheetListDoc) project() ([]domain.Spreadsheet, error) {
	sheets := make([]domain.Spreadsheet, 0, len(d.Feed.Entry))
	for _, e := range d.Feed.Entry {
		updated, err := e.Updated.Time()
		if err != nil {
			return nil, err
		}
		sheets = append(sheets, domain.Spreadsheet{
			Title:         e.Title.Value,
			Updated:       updated,
			Authors:       projectAuthors(e.Author),
			FeedID:        e.ID.Value,
			AlternateLink: alternateLink(e.Link),
		})
	}
	return sheets, nil
}

func (d worksheetEntryDoc) project() (*domain.Tab, error) {
	updated, err := d.Entry.Updated.Time()
	if err != nil {
		return nil, err
	}
	return &domain.Tab{
		Title:   d.Entry.Title.Value,
		Updated: updated,
		Authors: projectAuthors(d.Entry.Author),
	}, nil
}

func (d listFeedDoc) project() (*domain.RowFeed, error) {
	updated, err := d.Feed.Updated.Time()
	if err != nil {
		return nil, err
	}
	feed := &domain.RowFeed{
		Title:   d.Feed.Title.Value,
		Updated: updated,
		Authors: projectAuthors(d.Feed.Author),
		Rows:    make([]domain.Row, 0, len(d.Feed.Entry)),
	}
	for _, e := range d.Feed.Entry {
		feed.Rows = append(feed.Rows, domain.Row{
			Title:   e.Title.Value,
			Content: e.Content.Value,
			Columns: e.ColumnOrder,
			Cells:   e.Cells,
		})
	}
	return feed, nil
}

// sheetFromSpreadsheet promotes a matched list entry to the resolved
// sheet.
func sheetFromSpreadsheet(s domain.Spreadsheet) *domain.Sheet {
	return &domain.Sheet{
		Title:   s.Title,
		Updated: s.Updated,
		Authors: s.Authors,
		ID:      s.FeedID,
	}
}
