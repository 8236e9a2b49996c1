package message

import (
	"fmt"
	"testing"

	"github.com/vovakirdan/tui-rogue/internal/core"
)

func TestLogRecentNewestFirst(t *testing.T) {
	l := NewLog(8)
	l.Push(New("a", Normal), New("b", Danger), New("c", Benefit))

	got := l.Recent(2)
	if len(got) != 2 {
		t.Fatalf("len(Recent(2)) = %d, expected 2", len(got))
	}
	if got[0].Contents != "c" || got[1].Contents != "b" {
		t.Errorf("Recent(2) = %v, expected [c b]", got)
	}

	if got := l.Recent(10); len(got) != 3 {
		t.Errorf("len(Recent(10)) = %d, expected 3", len(got))
	}
	if got := l.Recent(0); got != nil {
		t.Errorf("Recent(0) = %v, expected nil", got)
	}
}

func TestLogEvictsOldest(t *testing.T) {
	l := NewLog(3)
	for i := 0; i < 5; i++ {
		l.Push(New(fmt.Sprintf("m%d", i), Normal))
	}

	if l.Len() != 3 {
		t.Fatalf("Len() = %d, expected 3", l.Len())
	}

	all := l.All()
	want := []string{"m2", "m3", "m4"}
	for i, m := range all {
		if m.Contents != want[i] {
			t.Errorf("All()[%d] = %q, expected %q", i, m.Contents, want[i])
		}
	}

	if got := l.Recent(1)[0].Contents; got != "m4" {
		t.Errorf("Recent(1) = %q, expected m4", got)
	}
}

func TestNewLogDefaultCapacity(t *testing.T) {
	if got := NewLog(0).Cap(); got != DefaultCapacity {
		t.Errorf("NewLog(0).Cap() = %d, expected %d", got, DefaultCapacity)
	}
}

func TestSeverity(t *testing.T) {
	tests := []struct {
		sev   Severity
		color core.Color
	}{
		{Normal, core.ColorWhite},
		{Danger, core.ColorRed},
		{Benefit, core.ColorGreen},
		{Background, core.ColorGray},
	}

	for _, tt := range tests {
		if got := tt.sev.Color(); got != tt.color {
			t.Errorf("%v.Color() = %v, expected %v", tt.sev, got, tt.color)
		}
		if got := ParseSeverity(tt.sev.String()); got != tt.sev {
			t.Errorf("ParseSeverity(%q) = %v, expected %v", tt.sev.String(), got, tt.sev)
		}
	}
}
