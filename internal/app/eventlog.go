// internal/app/eventlog.go
package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/sheet/internal/ui/render"
	"github.com/llehouerou/sheet/internal/ui/styles"
)

const eventLogLimit = 64

// EventKind tells the notifications in the log apart.
type EventKind int

const (
	EventChange EventKind = iota
	EventAnimate
	EventInfo
)

// Event is one entry of the event log.
type Event struct {
	At   time.Time
	Kind EventKind
	Text string
}

// EventLog keeps the most recent notifications, newest first.
type EventLog struct {
	entries []Event
	limit   int
}

// NewEventLog creates a log keeping at most limit entries.
func NewEventLog(limit int) *EventLog {
	return &EventLog{limit: max(limit, 1)}
}

// Add records an event.
func (l *EventLog) Add(at time.Time, kind EventKind, text string) {
	l.entries = append([]Event{{At: at, Kind: kind, Text: text}}, l.entries...)
	if len(l.entries) > l.limit {
		l.entries = l.entries[:l.limit]
	}
}

// Entries returns the events, newest first.
func (l *EventLog) Entries() []Event {
	return l.entries
}

// Len returns the number of events.
func (l *EventLog) Len() int {
	return len(l.entries)
}

func changeText(index int) string {
	return fmt.Sprintf("onChange  %s", indexLabel(index))
}

func animateText(from, to int) string {
	return fmt.Sprintf("onAnimate %s → %s", indexLabel(from), indexLabel(to))
}

func indexLabel(index int) string {
	if index < 0 {
		return "hidden"
	}
	return fmt.Sprintf("#%d", index)
}

// Render draws the newest entries in a bordered box of width columns and
// at most rows lines, timestamps relative to now.
func (l *EventLog) Render(width, rows int, now time.Time) string {
	const border = 2
	inner := width - border
	lines := rows - border
	if inner <= 0 || lines <= 1 {
		return ""
	}

	t := styles.T().S()
	body := make([]string, 0, lines)
	body = append(body, t.Title.Render(render.Truncate("Events", inner)))
	for _, e := range l.entries {
		if len(body) == lines {
			break
		}
		when := humanize.RelTime(e.At, now, "ago", "from now")
		text := render.Truncate(e.Text, max(inner-lipgloss.Width(when)-1, 1))
		style := t.Text
		switch e.Kind {
		case EventChange:
			style = t.Success
		case EventAnimate:
			style = t.Event
		case EventInfo:
		}
		body = append(body, render.Row(style.Render(text), t.Subtle.Render(when), inner))
	}
	if len(body) == 1 {
		body = append(body, t.Subtle.Render(render.Fit("no events yet", inner)))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.T().TextSubtle).
		Width(inner).
		Render(strings.Join(body, "\n"))
}
