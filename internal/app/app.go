// internal/app/app.go
package app

import (
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/llehouerou/sheet/internal/config"
	"github.com/llehouerou/sheet/internal/keymap"
	"github.com/llehouerou/sheet/internal/motion"
	"github.com/llehouerou/sheet/internal/sheet"
	"github.com/llehouerou/sheet/internal/ui/sheetpanel"
)

// helpContexts is the order the help columns are shown in.
var helpContexts = []string{"sheet", "content", "global"}

// Deps are the collaborators of the demo model.
type Deps struct {
	Sheet  *sheet.Sheet
	Config *config.Config
	Zones  *zone.Manager
	Logger *slog.Logger

	// LoadConfig reloads the configuration files; nil disables reloading.
	LoadConfig func() (*config.Config, error)
}

// Model is the demo application: a background page with the key help and
// an event log, and the sheet laid over its bottom.
type Model struct {
	Width, Height int

	sheet  *sheet.Sheet
	panel  *sheetpanel.Model
	zones  *zone.Manager
	sub    *motion.Subscription
	keys   *keymap.Resolver
	help   help.Model
	events *EventLog
	cfg    *config.Config
	logger *slog.Logger
	now    func() time.Time

	loadConfig func() (*config.Config, error)
	initCmd    tea.Cmd

	showLog       bool
	status        string
	statusIsError bool
}

// New creates the demo model. The sheet's motion goroutine is run by the
// caller.
func New(d Deps) Model {
	logger := d.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	cfg := d.Config
	if cfg == nil {
		cfg = config.Default()
	}

	panel := sheetpanel.New(d.Sheet, d.Zones, handleRows(cfg.Sheet.HandleHeight))
	m := Model{
		sheet:      d.Sheet,
		panel:      panel,
		zones:      d.Zones,
		sub:        d.Sheet.Subscribe(),
		keys:       keymap.NewResolver(keymap.Bindings),
		help:       help.New(),
		events:     NewEventLog(eventLogLimit),
		cfg:        cfg,
		logger:     logger,
		now:        time.Now,
		loadConfig: d.LoadConfig,
		showLog:    true,
	}
	m.initCmd = panel.SetRows(DemoRows(cfg.Demo.Rows))
	return m
}

// SetClock replaces the time source, for tests.
func (m *Model) SetClock(now func() time.Time) {
	m.now = now
	m.panel.SetClock(now)
}

// Panel returns the sheet panel.
func (m Model) Panel() *sheetpanel.Model {
	return m.panel
}

// Events returns the event log.
func (m Model) Events() *EventLog {
	return m.events
}

// Status returns the status line message and whether it is an error.
func (m Model) Status() (string, bool) {
	return m.status, m.statusIsError
}

// Init starts the event watchers and the content measurement.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.initCmd,
		m.panel.Init(),
		m.WatchSheetEvents(),
		TickCmd(),
	)
}

// DemoRows returns the placeholder content of the sheet.
func DemoRows(n int) []string {
	rows := make([]string, max(n, 0))
	for i := range rows {
		rows[i] = fmt.Sprintf("  Row %02d  ·  drag the handle or scroll the list", i+1)
	}
	return rows
}

// handleRows converts the configured handle height to whole rows.
func handleRows(height float64) int {
	return int(math.Round(math.Max(height, 0)))
}
