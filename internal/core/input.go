package core

// Key represents a semantic game key, abstracted from physical key presses.
// The platform decodes raw input; games only ever see these.
type Key int

const (
	KeyNone           Key = iota
	KeyUp                 // numpad 8, k, up arrow
	KeyDown               // numpad 2, j, down arrow
	KeyLeft               // numpad 4, h, left arrow
	KeyRight              // numpad 6, l, right arrow
	KeyUpLeft             // numpad 7, y
	KeyUpRight            // numpad 9, u
	KeyDownLeft           // numpad 1, b
	KeyDownRight          // numpad 3, n
	KeyWait               // numpad 0, 5, '.'
	KeySpawn              // F1 - spawn a soldier
	KeyToggleMessages     // Tab - show/hide the message log
	KeyResize             // F2 - request a viewport resize
	KeyQuit               // Q, Ctrl+C
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyUpLeft:
		return "UpLeft"
	case KeyUpRight:
		return "UpRight"
	case KeyDownLeft:
		return "DownLeft"
	case KeyDownRight:
		return "DownRight"
	case KeyWait:
		return "Wait"
	case KeySpawn:
		return "Spawn"
	case KeyToggleMessages:
		return "ToggleMessages"
	case KeyResize:
		return "Resize"
	case KeyQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Direction returns the movement direction bound to a key.
// ok is false for keys that are not directional.
func (k Key) Direction() (dir Direction, ok bool) {
	switch k {
	case KeyUp:
		return DirUp, true
	case KeyDown:
		return DirDown, true
	case KeyLeft:
		return DirLeft, true
	case KeyRight:
		return DirRight, true
	case KeyUpLeft:
		return DirUpLeft, true
	case KeyUpRight:
		return DirUpRight, true
	case KeyDownLeft:
		return DirDownLeft, true
	case KeyDownRight:
		return DirDownRight, true
	}
	return 0, false
}

// EventKind tells what an Event carries.
type EventKind int

const (
	EventNone EventKind = iota
	EventKey
	EventResize
)

// Event is a decoded input event: a key press or a window resize.
type Event struct {
	Kind   EventKind
	Key    Key
	Width  int // EventResize only
	Height int // EventResize only
}

// KeyEvent creates a key press event.
func KeyEvent(k Key) Event {
	return Event{Kind: EventKey, Key: k}
}

// ResizeEvent creates a window resize notification.
func ResizeEvent(width, height int) Event {
	return Event{Kind: EventResize, Width: width, Height: height}
}

// Pressed returns the pressed key, or KeyNone for other events.
func (e Event) Pressed() Key {
	if e.Kind != EventKey {
		return KeyNone
	}
	return e.Key
}
