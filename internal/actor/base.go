package actor

import (
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-rogue/internal/core"
	"github.com/vovakirdan/tui-rogue/internal/message"
)

// Base carries the state every actor has. Concrete actors embed it and
// supply Sprite and OnUpdate; the lifecycle hooks default to no-ops.
type Base struct {
	id       uuid.UUID
	kind     Type
	behavior BehaviorStyle
	pos      core.Position

	status    Status
	hasStatus bool
	messages  []message.Message
}

// NewBase creates the shared actor state.
func NewBase(id uuid.UUID, kind Type, behavior BehaviorStyle) Base {
	return Base{id: id, kind: kind, behavior: behavior}
}

func (b *Base) ID() uuid.UUID { return b.id }
func (b *Base) Type() Type { return b.kind }
func (b *Base) Behavior() BehaviorStyle { return b.behavior }
func (b *Base) Position() core.Position { return b.pos }
func (b *Base) SetX(x int) { b.pos.X = x }
func (b *Base) SetY(y int) { b.pos.Y = y }
func (b *Base) SetPosition(p core.Position) { b.pos = p }

// MoveToward shifts the position one cell.
func (b *Base) MoveToward(dir core.Direction) {
	b.pos = b.pos.Step(dir, 1)
}

// Visible defaults to true.
func (b *Base) Visible() bool { return true }

func (b *Base) OnCreate() {}
func (b *Base) OnInteract(infos []Info) {}
func (b *Base) OnRemove(infos []Info) {}

// Emit queues a status, replacing any status not yet collected.
func (b *Base) Emit(s Status) {
	b.status = s
	b.hasStatus = true
}

// Status returns the pending status and clears it.
func (b *Base) Status() (Status, bool) {
	if !b.hasStatus {
		return Status{}, false
	}
	s := b.status
	b.status = Status{}
	b.hasStatus = false
	return s, true
}

// Say queues a message.
func (b *Base) Say(contents string, severity message.Severity) {
	b.messages = append(b.messages, message.New(contents, severity))
}

// Messages returns the queued messages and clears the queue.
func (b *Base) Messages() []message.Message {
	msgs := b.messages
	b.messages = nil
	return msgs
}
