package core

import "testing"

func TestInputFrameEdgeAndHeld(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionFire)
	f.SetHeld(ActionLeft)

	if !f.Has(ActionFire) {
		t.Error("Fire should be an edge press")
	}
	if f.Has(ActionLeft) {
		t.Error("Held Left should not count as an edge press")
	}
	if !f.IsDown(ActionLeft) || !f.IsDown(ActionFire) {
		t.Error("IsDown should cover held and pressed actions")
	}
	if f.IsDown(ActionRight) {
		t.Error("Right was never pressed")
	}

	f.Clear()
	if f.IsDown(ActionLeft) || f.Has(ActionFire) {
		t.Error("Clear should reset pressed and held actions")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionFire) || f.IsDown(ActionLeft) {
		t.Error("Zero frame should report nothing")
	}
	f.SetHeld(ActionRight)
	if !f.IsDown(ActionRight) {
		t.Error("SetHeld on zero frame should allocate")
	}
}

func TestHoldTrackerFreshPress(t *testing.T) {
	tr := NewHoldTracker(3)

	if !tr.Press(ActionFire) {
		t.Error("First press should be fresh")
	}
	f := NewInputFrame()
	tr.Apply(&f)

	// Auto-repeat inside the window is not fresh
	if tr.Press(ActionFire) {
		t.Error("Repeat inside hold window should not be fresh")
	}

	// Let the key go stale
	for i := 0; i < 5; i++ {
		f := NewInputFrame()
		tr.Apply(&f)
	}
	if !tr.Press(ActionFire) {
		t.Error("Press after the hold window should be fresh again")
	}
}

func TestHoldTrackerHeldWindow(t *testing.T) {
	tr := NewHoldTracker(2)
	tr.Press(ActionLeft)

	held := 0
	for i := 0; i < 6; i++ {
		f := NewInputFrame()
		tr.Apply(&f)
		if f.IsDown(ActionLeft) {
			held++
		}
	}

	// Held on the press tick plus two more ticks
	if held != 3 {
		t.Errorf("Left should be held for 3 ticks, got %d", held)
	}
}

func TestHoldTrackerRelease(t *testing.T) {
	tr := NewHoldTracker(10)
	tr.Press(ActionRight)
	tr.Release(ActionRight)

	f := NewInputFrame()
	tr.Apply(&f)
	if f.IsDown(ActionRight) {
		t.Error("Released action should not be held")
	}
	if !tr.Press(ActionRight) {
		t.Error("Press after release should be fresh")
	}
}

func TestHoldTrackerActionWindow(t *testing.T) {
	tr := NewHoldTracker(2).WithWindow(ActionFire, 10)

	tr.Press(ActionFire)
	tr.Press(ActionLeft)
	for i := 0; i < 8; i++ {
		f := NewInputFrame()
		tr.Apply(&f)
	}

	// Left used the default window and went stale; Fire is still inside its own
	if !tr.Press(ActionLeft) {
		t.Error("Left should be fresh after its default window")
	}
	if tr.Press(ActionFire) {
		t.Error("Fire repeat inside its own window should not be fresh")
	}
}

func TestHoldTrackerReset(t *testing.T) {
	tr := NewHoldTracker(10)
	tr.Press(ActionLeft)
	tr.Reset()

	f := NewInputFrame()
	tr.Apply(&f)
	if f.IsDown(ActionLeft) {
		t.Error("Reset should drop held actions")
	}
	if !tr.Press(ActionLeft) {
		t.Error("Press after reset should be fresh")
	}
}
