package game

import "fmt"

// StatusKind is a request the controller passes up to its host.
type StatusKind int

const (
	StatusQuit StatusKind = iota
	StatusResize
)

// Status is a one-shot request for the host: quit, or resize the view.
type Status struct {
	Kind          StatusKind
	Width, Height int
}

func (s Status) String() string {
	if s.Kind == StatusResize {
		return fmt.Sprintf("Resize(%d, %d)", s.Width, s.Height)
	}
	return "Quit"
}
