package domain

// Stage discriminates which fetch stage produced an event.
type Stage string

const (
	// StageSpreadsheets is the spreadsheet list fetch.
	StageSpreadsheets Stage = "spreadsheets"
	// StageTab is the worksheet metadata fetch.
	StageTab Stage = "tab"
	// StageRows is the row feed fetch.
	StageRows Stage = "rows"
)

// Event is emitted once per successful fetch stage, or once on failure
// with Err set. Exactly one payload field is non-zero for a success event,
// matching the stage.
type Event struct {
	// Stage identifies the fetch stage.
	Stage Stage

	// RequestID correlates all events of a single Fetch invocation.
	RequestID string

	// Spreadsheets is set for StageSpreadsheets success events.
	Spreadsheets []Spreadsheet

	// Tab is set for StageTab success events.
	Tab *Tab

	// Rows is set for StageRows success events.
	Rows *RowFeed

	// FromCache marks a StageRows event served from the cache without a
	// network call.
	FromCache bool

	// Err carries the transport or state failure for error events.
	Err error
}

// IsError reports whether the event signals a failure.
func (e Event) IsError() bool {
	return e.Err != nil
}
