package core

import (
	"math"
	"testing"
)

func TestDirectionDelta(t *testing.T) {
	tests := []struct {
		dir    Direction
		dx, dy int
	}{
		{DirUp, 0, -1},
		{DirDown, 0, 1},
		{DirLeft, -1, 0},
		{DirRight, 1, 0},
		{DirUpLeft, -1, -1},
		{DirUpRight, 1, -1},
		{DirDownLeft, -1, 1},
		{DirDownRight, 1, 1},
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			dx, dy := tc.dir.Delta()
			if dx != tc.dx || dy != tc.dy {
				t.Errorf("Delta() = (%d, %d), expected (%d, %d)", dx, dy, tc.dx, tc.dy)
			}
		})
	}
}

func TestPositionStep(t *testing.T) {
	p := Pos(4, 4)

	if got := p.Step(DirRight, 1); got != Pos(5, 4) {
		t.Errorf("Step(Right, 1) = %v, expected [5, 4]", got)
	}
	if got := p.Step(DirUpLeft, 2); got != Pos(2, 2) {
		t.Errorf("Step(UpLeft, 2) = %v, expected [2, 2]", got)
	}
	// Negative step counts are ignored
	if got := p.Step(DirDown, -3); got != p {
		t.Errorf("Step(Down, -3) = %v, expected %v", got, p)
	}
}

func TestPositionDistance(t *testing.T) {
	a := Pos(0, 0)
	b := Pos(3, 4)

	if d := a.DistanceTo(b); math.Abs(d-5) > 1e-9 {
		t.Errorf("DistanceTo() = %f, expected 5", d)
	}
	if d := b.DistanceTo(b); d != 0 {
		t.Errorf("DistanceTo(self) = %f, expected 0", d)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Min(10, 5) != 5 {
		t.Error("Min(10, 5) should be 5")
	}
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
	if Max(10, 5) != 10 {
		t.Error("Max(10, 5) should be 10")
	}
}

func TestAbsSign(t *testing.T) {
	if Abs(-5) != 5 || Abs(5) != 5 || Abs(0) != 0 {
		t.Error("Abs() returned an unexpected value")
	}
	if Sign(-7) != -1 || Sign(7) != 1 || Sign(0) != 0 {
		t.Error("Sign() returned an unexpected value")
	}
}
