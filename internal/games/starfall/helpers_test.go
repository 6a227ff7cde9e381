package starfall

import (
	"testing"
	"time"

	"github.com/vovakirdan/starfall/internal/config"
	"github.com/vovakirdan/starfall/internal/core"
)

// scriptedRandom replays fixed values, then falls back to the range minimum.
type scriptedRandom struct {
	values []int
}

func (r *scriptedRandom) Between(min, max int) int {
	if len(r.values) == 0 {
		return min
	}
	v := r.values[0]
	r.values = r.values[1:]
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// stubDetector reports a fixed list of overlaps once, then nothing.
type stubDetector struct {
	pending []Overlap
}

func (d *stubDetector) Detect(_ Field, dst []Overlap) []Overlap {
	dst = append(dst, d.pending...)
	d.pending = nil
	return dst
}

const tick = time.Second / 60

func testConfig() config.StarfallConfig {
	cfg := config.DefaultStarfallConfig()
	cfg.Asteroids.Spread = false
	return cfg
}

// newPlayingSession returns a session already in PhasePlaying with an
// overlap detector the test controls.
func newPlayingSession(t *testing.T) (*Session, *stubDetector) {
	t.Helper()
	det := &stubDetector{}
	s := NewSession(testConfig(), NewRandom(1), det)
	s.Step(press(core.ActionConfirm), tick)
	if s.Phase() != PhasePlaying {
		t.Fatalf("confirm should start a run, phase = %s", s.Phase())
	}
	return s, det
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func hold(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.SetHeld(a)
	}
	return in
}

// place acquires a slot and puts it at (x, y).
func place(t *testing.T, p *Pool, x, y float64) Handle {
	t.Helper()
	h, ok := p.Acquire()
	if !ok {
		t.Fatalf("%s pool exhausted", p.Kind())
	}
	e := p.Get(h)
	e.X, e.Y = x, y
	return h
}

func countCue(cues []core.Cue, c core.Cue) int {
	n := 0
	for _, got := range cues {
		if got == c {
			n++
		}
	}
	return n
}
