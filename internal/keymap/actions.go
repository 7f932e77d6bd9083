// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit      Action = "quit"
	ActionHelp      Action = "help"
	ActionReload    Action = "reload_config"
	ActionToggleLog Action = "toggle_log"

	// Sheet commands
	ActionSnap     Action = "snap"     // 0-9 - digit is the index
	ActionExpand   Action = "expand"   // e
	ActionCollapse Action = "collapse" // c
	ActionClose    Action = "close"    // x

	// Stepping between neighbouring snap points
	ActionSnapUp   Action = "snap_up"   // k/up
	ActionSnapDown Action = "snap_down" // j/down

	// Content scrolling
	ActionScrollUp   Action = "scroll_up"   // pgup
	ActionScrollDown Action = "scroll_down" // pgdown
)
