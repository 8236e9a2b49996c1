package actor

import (
	"testing"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-rogue/internal/core"
	"github.com/vovakirdan/tui-rogue/internal/message"
	"github.com/vovakirdan/tui-rogue/internal/world"
)

type dummy struct {
	Base
}

func (d *dummy) Sprite() world.SpriteInfo { return world.VoidSprite }
func (d *dummy) OnUpdate(infos []Info, m *world.Map) {}

var _ Actor = (*dummy)(nil)

func newDummy(kind Type, pos core.Position) *dummy {
	d := &dummy{Base: NewBase(uuid.New(), kind, Oblivious)}
	d.SetPosition(pos)
	return d
}

func TestStatusConsumedOnce(t *testing.T) {
	d := newDummy(TypeSoldier, core.Pos(0, 0))

	if _, ok := d.Status(); ok {
		t.Fatal("Status() on fresh actor should be empty")
	}

	d.Emit(ToggleMessages())
	d.Emit(Quit())

	s, ok := d.Status()
	if !ok {
		t.Fatal("Status() ok = false, expected true")
	}
	if s.Kind != StatusQuit {
		t.Errorf("Status().Kind = %v, expected the later request", s)
	}
	if _, ok := d.Status(); ok {
		t.Error("second Status() ok = true, expected false")
	}
}

func TestMessagesDrained(t *testing.T) {
	d := newDummy(TypeSoldier, core.Pos(0, 0))
	d.Say("one", message.Normal)
	d.Say("two", message.Danger)

	msgs := d.Messages()
	if len(msgs) != 2 || msgs[0].Contents != "one" || msgs[1].Severity != message.Danger {
		t.Errorf("Messages() = %v, expected [one two(danger)]", msgs)
	}
	if got := d.Messages(); len(got) != 0 {
		t.Errorf("Messages() after drain = %v, expected empty", got)
	}
}

func TestSnapshotIsCopy(t *testing.T) {
	a := newDummy(TypePlayer, core.Pos(1, 1))
	b := newDummy(TypeSoldier, core.Pos(4, 2))

	infos := Snapshot([]Actor{a, b})
	a.MoveToward(core.DirRight)
	b.SetX(9)
	b.SetY(9)

	if infos[0].Position != core.Pos(1, 1) {
		t.Errorf("snapshot[0].Position = %v, expected [1, 1]", infos[0].Position)
	}
	if infos[1].Position != core.Pos(4, 2) {
		t.Errorf("snapshot[1].Position = %v, expected [4, 2]", infos[1].Position)
	}
	if a.Position() != core.Pos(2, 1) {
		t.Errorf("Position() = %v, expected [2, 1]", a.Position())
	}

	p, ok := FindType(infos, TypePlayer)
	if !ok || p.ID != a.ID() {
		t.Errorf("FindType(player) = %v %v, expected %v", p.ID, ok, a.ID())
	}
	if _, ok := FindType(infos[1:], TypePlayer); ok {
		t.Error("FindType() found a player in a soldier-only snapshot")
	}
}

func TestStatusString(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{Resize(640, 480), "Resize(640, 480)"},
		{LoadMapAt(core.Pos(-1, 0)), "LoadMapAtRelativeOffset([-1, 0])"},
		{ToggleMessages(), "ToggleMessageVisibility"},
		{SpawnAt(TypeSoldier, core.Pos(3, 4)), "SpawnActorAt(soldier, [3, 4])"},
		{Quit(), "Quit"},
	}

	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("String() = %q, expected %q", got, tt.want)
		}
	}
}
