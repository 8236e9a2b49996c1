// Package message holds game messages and the bounded log that collects them.
package message

import "github.com/vovakirdan/tui-rogue/internal/core"

// Severity affects how a message is coloured.
type Severity int

const (
	Normal Severity = iota
	Danger
	Benefit
	Background
)

// String returns the severity name.
func (s Severity) String() string {
	switch s {
	case Normal:
		return "normal"
	case Danger:
		return "danger"
	case Benefit:
		return "benefit"
	case Background:
		return "background"
	default:
		return "unknown"
	}
}

// ParseSeverity is the inverse of String. Unknown names map to Normal.
func ParseSeverity(s string) Severity {
	switch s {
	case "danger":
		return Danger
	case "benefit":
		return Benefit
	case "background":
		return Background
	default:
		return Normal
	}
}

// Color returns the display colour for the severity.
func (s Severity) Color() core.Color {
	switch s {
	case Danger:
		return core.ColorRed
	case Benefit:
		return core.ColorGreen
	case Background:
		return core.ColorGray
	default:
		return core.ColorWhite
	}
}

// Message is a line of text produced by an actor.
type Message struct {
	Contents string
	Severity Severity
}

// New creates a message.
func New(contents string, severity Severity) Message {
	return Message{Contents: contents, Severity: severity}
}
