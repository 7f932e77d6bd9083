// internal/app/messages.go

// Package app contains the demo's bubbletea model and its messages.
package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/sheet/internal/config"
	"github.com/llehouerou/sheet/internal/motion"
)

// Message category interfaces for type-based routing in Update().
// Messages from other packages cannot implement these interfaces, so they
// are handled separately in the Update() switch.

// SheetMessage is implemented by messages forwarded from the sheet's
// subscription.
type SheetMessage interface {
	tea.Msg
	sheetMessage()
}

// ConfigMessage is implemented by messages about configuration reloads.
type ConfigMessage interface {
	tea.Msg
	configMessage()
}

// TickMsg is sent every second to refresh relative timestamps.
type TickMsg time.Time

// SheetChangedMsg is sent when the sheet comes to rest on a new snap point.
type SheetChangedMsg motion.ChangeEvent

func (SheetChangedMsg) sheetMessage() {}

// SheetAnimateMsg is sent when an animation toward a snap point starts.
type SheetAnimateMsg motion.AnimateEvent

func (SheetAnimateMsg) sheetMessage() {}

// SheetFrameMsg carries a position update.
type SheetFrameMsg motion.FrameEvent

func (SheetFrameMsg) sheetMessage() {}

// SheetClosedMsg is sent once the motion goroutine has stopped.
type SheetClosedMsg struct{}

func (SheetClosedMsg) sheetMessage() {}

// ConfigReloadedMsg carries a configuration loaded from disk, or the error
// that prevented it.
type ConfigReloadedMsg struct {
	Config *config.Config
	Err    error
}

func (ConfigReloadedMsg) configMessage() {}

// ConfigWatchErrorMsg reports that the file watcher stopped.
type ConfigWatchErrorMsg struct {
	Err error
}

func (ConfigWatchErrorMsg) configMessage() {}
