// Package motion owns the sheet's position and animates it between snap points.
package motion

// Phase is the animation state of the sheet.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseStopped
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseRunning:
		return "Running"
	case PhaseStopped:
		return "Stopped"
	default:
		return "Unknown"
	}
}

// IsRunning returns true while a tween is advancing.
func (p Phase) IsRunning() bool {
	return p == PhaseRunning
}
