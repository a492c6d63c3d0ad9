// Package tui implements a small terminal viewer over the fetch
// sequence: it runs the fetch, shows the projected rows in a table and
// surfaces stage events in a status line.
package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ledgerline-labs/sheetfeed/internal/connectors/google/sheets"
	"github.com/ledgerline-labs/sheetfeed/internal/core/domain"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")).Padding(0, 1)
	statusStyle = lipgloss.NewStyle().Faint(true).Padding(0, 1)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Padding(0, 1)
	tableStyle  = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240"))
)

type fetchDoneMsg struct{}

type fetchFailedMsg struct {
	err error
}

type stageMsg struct {
	text string
}

// Model is the Bubble Tea model for the rows viewer.
type Model struct {
	fetcher *sheets.Fetcher
	events  chan domain.Event

	table   table.Model
	loading bool
	status  string
	err     error
	height  int
}

// New creates a viewer over a configured fetcher. The fetcher's event
// handler must already be wired to the returned model's event channel
// via EventHandler.
func New(fetcher *sheets.Fetcher) *Model {
	return &Model{
		fetcher: fetcher,
		events:  make(chan domain.Event, 8),
		loading: true,
		status:  "fetching...",
		height:  20,
	}
}

// EventHandler returns the handler to register on the fetcher; stage
// events flow into the viewer's status line.
func (m *Model) EventHandler() sheets.EventHandler {
	return func(ev domain.Event) {
		select {
		case m.events <- ev:
		default:
		}
	}
}

// Init starts the fetch.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.fetch, m.nextEvent)
}

func (m *Model) fetch() tea.Msg {
	if err := m.fetcher.Fetch(context.Background()); err != nil {
		return fetchFailedMsg{err: err}
	}
	return fetchDoneMsg{}
}

func (m *Model) nextEvent() tea.Msg {
	ev, ok := <-m.events
	if !ok {
		return nil
	}
	return stageMsg{text: describeEvent(ev)}
}

func describeEvent(ev domain.Event) string {
	if ev.IsError() {
		return fmt.Sprintf("stage %s failed", ev.Stage)
	}
	switch ev.Stage {
	case domain.StageSpreadsheets:
		return fmt.Sprintf("spreadsheets: %d entries", len(ev.Spreadsheets))
	case domain.StageTab:
		return "tab: " + ev.Tab.Title
	case domain.StageRows:
		if ev.FromCache {
			return fmt.Sprintf("rows: %d (cached)", len(ev.Rows.Rows))
		}
		return fmt.Sprintf("rows: %d", len(ev.Rows.Rows))
	default:
		return string(ev.Stage)
	}
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.err = nil
			m.status = "refetching..."
			return m, m.fetch
		}

	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.table.SetHeight(maxInt(3, msg.Height-6))

	case stageMsg:
		m.status = msg.text
		return m, m.nextEvent

	case fetchDoneMsg:
		m.loading = false
		m.rebuildTable()

	case fetchFailedMsg:
		m.loading = false
		m.err = msg.err
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *Model) rebuildTable() {
	feed := m.fetcher.Rows()
	if feed == nil || len(feed.Rows) == 0 {
		m.table = table.New()
		return
	}

	names := feed.Rows[0].Columns
	columns := make([]table.Column, 0, len(names))
	for _, name := range names {
		columns = append(columns, table.Column{Title: name, Width: columnWidth(name, feed.Rows)})
	}

	rows := make([]table.Row, 0, len(feed.Rows))
	for _, r := range feed.Rows {
		cells := make(table.Row, 0, len(names))
		for _, name := range names {
			cells = append(cells, r.Cells[name])
		}
		rows = append(rows, cells)
	}

	m.table = table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(maxInt(3, m.height-6)),
	)
}

func columnWidth(name string, rows []domain.Row) int {
	width := len(name)
	for _, r := range rows {
		if n := len(r.Cells[name]); n > width {
			width = n
		}
	}
	if width > 32 {
		width = 32
	}
	return width
}

// View renders the viewer.
func (m *Model) View() string {
	title := "sheetfeed"
	if tab := m.fetcher.Tab(); tab != nil && tab.Title != "" {
		title = tab.Title
	}

	var body string
	switch {
	case m.err != nil:
		body = errorStyle.Render(m.err.Error())
	case m.loading:
		body = statusStyle.Render("loading...")
	default:
		body = tableStyle.Render(m.table.View())
	}

	status := statusStyle.Render(m.status + "  (r: refetch, q: quit)")

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(title),
		body,
		status,
	)
}

// Run wires the viewer to the fetcher and runs the program until quit.
func Run(fetcher *sheets.Fetcher) error {
	m := New(fetcher)
	fetcher.SetEventHandler(m.EventHandler())
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
