package core

import "testing"

func TestOppositePairs(t *testing.T) {
	pairs := map[Direction]Direction{
		DirUp:      DirDown,
		DirDown:    DirUp,
		DirLeft:    DirRight,
		DirRight:   DirLeft,
		DirStopped: DirStopped,
	}
	for d, want := range pairs {
		if got := d.Opposite(); got != want {
			t.Errorf("%v.Opposite(): expected %v, got %v", d, want, got)
		}
	}
}

func TestDeltaIsUnitStep(t *testing.T) {
	for _, d := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
		dx, dy := d.Delta()
		if dx*dx+dy*dy != 1 {
			t.Errorf("%v: expected unit step, got (%d,%d)", d, dx, dy)
		}
		ox, oy := d.Opposite().Delta()
		if dx+ox != 0 || dy+oy != 0 {
			t.Errorf("%v: opposite delta does not cancel", d)
		}
	}
	if dx, dy := DirStopped.Delta(); dx != 0 || dy != 0 {
		t.Errorf("Stopped should not move, got (%d,%d)", dx, dy)
	}
}
