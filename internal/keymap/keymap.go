package keymap

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "sheet", "content"
}

// Bindings contains all key bindings.
var Bindings = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionHelp, []string{"?"}, "Toggle help", "global"},
	{ActionReload, []string{"r"}, "Reload config", "global"},
	{ActionToggleLog, []string{"l"}, "Toggle event log", "global"},

	// Sheet
	{ActionSnap, []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"}, "Snap to index", "sheet"},
	{ActionExpand, []string{"e"}, "Expand", "sheet"},
	{ActionCollapse, []string{"c"}, "Collapse", "sheet"},
	{ActionClose, []string{"x"}, "Close", "sheet"},
	{ActionSnapUp, []string{"k", "up"}, "Next snap point", "sheet"},
	{ActionSnapDown, []string{"j", "down"}, "Previous snap point", "sheet"},

	// Content
	{ActionScrollUp, []string{"pgup"}, "Scroll content up", "content"},
	{ActionScrollDown, []string{"pgdown"}, "Scroll content down", "content"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range Bindings {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// Key converts the binding for use with bubbles/help.
func (b Binding) Key() key.Binding {
	return key.NewBinding(
		key.WithKeys(b.Keys...),
		key.WithHelp(helpKeys(b.Keys), b.Description),
	)
}

// helpKeys shortens digit runs so "0".."9" reads as "0-9".
func helpKeys(keys []string) string {
	if len(keys) == 10 && keys[0] == "0" && keys[9] == "9" {
		return "0-9"
	}
	return strings.Join(keys, "/")
}

// Help implements help.KeyMap over a set of contexts.
type Help struct {
	short []key.Binding
	full  [][]key.Binding
}

// NewHelp builds help columns, one per context, in the given order. The
// short help lists the first binding of each context.
func NewHelp(contexts ...string) Help {
	var h Help
	for _, ctx := range contexts {
		var column []key.Binding
		for _, b := range ByContext(ctx) {
			column = append(column, b.Key())
		}
		if len(column) == 0 {
			continue
		}
		h.full = append(h.full, column)
		h.short = append(h.short, column[0])
	}
	return h
}

// ShortHelp implements help.KeyMap.
func (h Help) ShortHelp() []key.Binding { return h.short }

// FullHelp implements help.KeyMap.
func (h Help) FullHelp() [][]key.Binding { return h.full }
