// internal/app/update.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/sheet/internal/config"
	"github.com/llehouerou/sheet/internal/errmsg"
	"github.com/llehouerou/sheet/internal/keymap"
	"github.com/llehouerou/sheet/internal/ui/sheetpanel"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case SheetMessage:
		return m.handleSheetMessage(msg)

	case ConfigMessage:
		return m.handleConfigMessage(msg)

	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.panel.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.BlurMsg:
		m.panel.CancelDrag()
		return m, nil

	case TickMsg:
		return m, TickCmd()

	case sheetpanel.ErrorMsg:
		m.setError(errmsg.OpSnapTo, msg.Err)
		return m, nil
	}

	return m, m.panel.Update(msg)
}

func (m Model) handleSheetMessage(msg SheetMessage) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case SheetChangedMsg:
		m.events.Add(m.now(), EventChange, changeText(msg.Index))
		m.logger.Info("snap changed", "index", msg.Index)
	case SheetAnimateMsg:
		m.events.Add(m.now(), EventAnimate, animateText(msg.From, msg.To))
	case SheetFrameMsg:
	case SheetClosedMsg:
		return m, nil
	}
	return m, tea.Batch(m.WatchSheetEvents(), m.panel.Update(msg))
}

func (m Model) handleConfigMessage(msg ConfigMessage) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ConfigReloadedMsg:
		if msg.Err != nil {
			m.logger.Warn("config reload failed", "error", msg.Err)
			m.setError(errmsg.OpConfigReload, msg.Err)
			return m, nil
		}
		return m.applyConfig(msg.Config)
	case ConfigWatchErrorMsg:
		m.logger.Warn("config watcher stopped", "error", msg.Err)
		m.setError(errmsg.OpConfigWatch, msg.Err)
	}
	return m, nil
}

// applyConfig reconfigures the sheet and the demo content. A rejected
// configuration leaves everything as it was.
func (m Model) applyConfig(cfg *config.Config) (tea.Model, tea.Cmd) {
	opts, err := cfg.Sheet.Options(m.logger)
	if err == nil {
		err = m.sheet.Reconfigure(opts)
	}
	if err != nil {
		m.logger.Warn("config rejected", "error", err)
		m.setError(errmsg.OpConfigApply, err)
		return m, nil
	}

	m.cfg = cfg
	m.panel.SetHandleHeight(handleRows(cfg.Sheet.HandleHeight))
	m.events.Add(m.now(), EventInfo, "configuration reloaded")
	m.setInfo("Configuration reloaded")
	m.logger.Info("config reloaded", "snap_points", len(cfg.Sheet.SnapPoints))
	return m, m.panel.SetRows(DemoRows(cfg.Demo.Rows))
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if index, ok := m.keys.ResolveSnap(key); ok {
		if err := m.sheet.SnapTo(index); err != nil {
			m.setError(errmsg.OpSnapTo, err)
			return m, nil
		}
		m.clearStatus()
		return m, nil
	}

	switch m.keys.Resolve(key) {
	case keymap.ActionQuit:
		m.panel.Close()
		return m, tea.Quit
	case keymap.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
	case keymap.ActionReload:
		return m, m.ReloadConfigCmd()
	case keymap.ActionToggleLog:
		m.showLog = !m.showLog
	case keymap.ActionExpand:
		m.sheet.Expand()
		m.clearStatus()
	case keymap.ActionCollapse:
		m.sheet.Collapse()
		m.clearStatus()
	case keymap.ActionClose:
		m.sheet.Close()
		m.clearStatus()
	case keymap.ActionSnapUp:
		return m, m.panel.Step(1)
	case keymap.ActionSnapDown:
		return m, m.panel.Step(-1)
	case keymap.ActionScrollUp:
		return m, m.panel.Scroll(-1, m.panel.List().PageSize())
	case keymap.ActionScrollDown:
		return m, m.panel.Scroll(1, m.panel.List().PageSize())
	case keymap.ActionSnap:
	}
	return m, nil
}

func (m *Model) setError(op errmsg.Op, err error) {
	m.status = errmsg.Format(op, err)
	m.statusIsError = true
}

func (m *Model) setInfo(text string) {
	m.status = text
	m.statusIsError = false
}

func (m *Model) clearStatus() {
	m.status = ""
	m.statusIsError = false
}
