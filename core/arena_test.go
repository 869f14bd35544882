package core

import (
	"errors"
	"testing"
)

func mustArena(t *testing.T, w, h int, b Boundary) Arena {
	t.Helper()
	a, err := NewArena(w, h, b)
	if err != nil {
		t.Fatalf("NewArena(%d, %d) failed: %v", w, h, err)
	}
	return a
}

// TestNewArenaRejectsSmallSizes verifies at least one playable row and column are required
func TestNewArenaRejectsSmallSizes(t *testing.T) {
	tests := []struct {
		w, h int
		ok   bool
	}{
		{80, 24, true},
		{1, 2, true},
		{0, 24, false},
		{80, 1, false},
		{-3, -3, false},
	}

	for _, tt := range tests {
		_, err := NewArena(tt.w, tt.h, BoundaryWrap)
		if tt.ok && err != nil {
			t.Errorf("NewArena(%d, %d): unexpected error %v", tt.w, tt.h, err)
		}
		if !tt.ok && !errors.Is(err, ErrArenaTooSmall) {
			t.Errorf("NewArena(%d, %d): expected ErrArenaTooSmall, got %v", tt.w, tt.h, err)
		}
	}
}

// TestStepWrapsAroundEdges verifies toroidal movement with the status row skipped
func TestStepWrapsAroundEdges(t *testing.T) {
	a := mustArena(t, 20, 10, BoundaryWrap)

	tests := []struct {
		name string
		from Point
		dir  Direction
		want Point
	}{
		{"left edge", Point{0, 5}, DirLeft, Point{19, 5}},
		{"right edge", Point{19, 5}, DirRight, Point{0, 5}},
		{"bottom edge", Point{7, 9}, DirDown, Point{7, 1}},
		{"top playable row", Point{7, 1}, DirUp, Point{7, 9}},
		{"interior up", Point{7, 5}, DirUp, Point{7, 4}},
		{"interior right", Point{7, 5}, DirRight, Point{8, 5}},
		{"stopped", Point{7, 5}, DirStopped, Point{7, 5}},
	}

	for _, tt := range tests {
		got, ok := a.Step(tt.from, tt.dir)
		if !ok {
			t.Errorf("%s: wrap step reported blocked", tt.name)
		}
		if got != tt.want {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, got)
		}
		if !a.Contains(got) {
			t.Errorf("%s: result %v outside playable area", tt.name, got)
		}
	}
}

// TestStepSolidBlocksAtEdges verifies solid walls refuse steps out of the playable area
func TestStepSolidBlocksAtEdges(t *testing.T) {
	a := mustArena(t, 20, 10, BoundarySolid)

	blocked := []struct {
		from Point
		dir  Direction
	}{
		{Point{0, 5}, DirLeft},
		{Point{19, 5}, DirRight},
		{Point{7, 9}, DirDown},
		{Point{7, 1}, DirUp},
	}
	for _, tt := range blocked {
		got, ok := a.Step(tt.from, tt.dir)
		if ok {
			t.Errorf("Step(%v, %v): expected blocked, got %v", tt.from, tt.dir, got)
		}
		if got != tt.from {
			t.Errorf("Step(%v, %v): blocked step should return origin, got %v", tt.from, tt.dir, got)
		}
	}

	if got, ok := a.Step(Point{5, 5}, DirDown); !ok || got != (Point{5, 6}) {
		t.Errorf("Expected interior step to (5,6), got %v ok=%v", got, ok)
	}
}

// TestCenterStaysPlayable verifies the spawn cell never lands on the status row
func TestCenterStaysPlayable(t *testing.T) {
	if c := mustArena(t, 80, 24, BoundaryWrap).Center(); c != (Point{39, 11}) {
		t.Errorf("Expected center (39,11), got %v", c)
	}

	for _, size := range [][2]int{{1, 2}, {2, 3}, {3, 2}} {
		a := mustArena(t, size[0], size[1], BoundaryWrap)
		if c := a.Center(); !a.Contains(c) {
			t.Errorf("Center %v of %dx%d arena is not playable", c, size[0], size[1])
		}
	}
}

// TestParseBoundary verifies config names and rejection of unknown modes
func TestParseBoundary(t *testing.T) {
	for name, want := range map[string]Boundary{
		"":       BoundaryWrap,
		"wrap":   BoundaryWrap,
		"Wrap":   BoundaryWrap,
		"solid":  BoundarySolid,
		" wall ": BoundarySolid,
	} {
		got, err := ParseBoundary(name)
		if err != nil {
			t.Errorf("ParseBoundary(%q): unexpected error %v", name, err)
		}
		if got != want {
			t.Errorf("ParseBoundary(%q): expected %v, got %v", name, want, got)
		}
	}

	if _, err := ParseBoundary("bouncy"); !errors.Is(err, ErrUnknownBoundary) {
		t.Errorf("Expected ErrUnknownBoundary, got %v", err)
	}
}
