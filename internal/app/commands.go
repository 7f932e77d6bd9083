// internal/app/commands.go
package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickCmd returns a command that sends TickMsg after 1 second.
func TickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// WatchSheetEvents returns a command that waits for the next sheet event.
// It listens on all subscription channels and converts events to tea.Msg.
func (m Model) WatchSheetEvents() tea.Cmd {
	sub := m.sub
	if sub == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case e := <-sub.Changed:
			return SheetChangedMsg(e)
		case e := <-sub.Animated:
			return SheetAnimateMsg(e)
		case e := <-sub.Frames:
			return SheetFrameMsg(e)
		case <-sub.Done:
			return SheetClosedMsg{}
		}
	}
}

// ReloadConfigCmd loads the configuration files again.
func (m Model) ReloadConfigCmd() tea.Cmd {
	load := m.loadConfig
	if load == nil {
		return nil
	}
	return func() tea.Msg {
		cfg, err := load()
		return ConfigReloadedMsg{Config: cfg, Err: err}
	}
}
