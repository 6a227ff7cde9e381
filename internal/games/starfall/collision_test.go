package starfall

import (
	"testing"

	"github.com/vovakirdan/starfall/internal/core"
)

func TestShipAsteroidDamage(t *testing.T) {
	s, _ := newPlayingSession(t)
	h := place(t, s.asteroids, 100, 100)

	s.resolve(Overlap{Kind: ShipAsteroid, B: h})

	if s.ship.Life != 3 {
		t.Errorf("Life = %d, want 3", s.ship.Life)
	}
	if s.asteroids.Get(h).Active {
		t.Error("asteroid should be released")
	}
	if countCue(s.cues, core.CueDamage) != 1 {
		t.Errorf("cues = %v, want one damage", s.cues)
	}
	if s.Status() != "Life: 3\nBullets: 4\nTime: 00:00" {
		t.Errorf("Status() = %q", s.Status())
	}

	// Same overlap again: asteroid is gone, nothing happens
	s.resolve(Overlap{Kind: ShipAsteroid, B: h})
	if s.ship.Life != 3 {
		t.Errorf("stale overlap changed Life to %d", s.ship.Life)
	}
}

func TestFourHitsEndRunOnce(t *testing.T) {
	s, det := newPlayingSession(t)
	for i := 0; i < 4; i++ {
		h := place(t, s.asteroids, float64(100*i), 300)
		det.pending = append(det.pending, Overlap{Kind: ShipAsteroid, B: h})
	}

	cues := s.Step(core.NewInputFrame(), tick)

	if s.ship.Life != 0 {
		t.Errorf("Life = %d, want 0", s.ship.Life)
	}
	if s.Phase() != PhaseGameOver {
		t.Fatalf("phase = %s, want game_over", s.Phase())
	}
	if n := countCue(cues, core.CueGameOver); n != 1 {
		t.Errorf("game over raised %d times, want 1", n)
	}
}

func TestLifeNeverNegative(t *testing.T) {
	s, _ := newPlayingSession(t)
	for i := 0; i < 8; i++ {
		h := place(t, s.asteroids, 0, 0)
		s.resolve(Overlap{Kind: ShipAsteroid, B: h})
		if s.ship.Life < 0 {
			t.Fatalf("Life went negative after %d hits", i+1)
		}
	}
	if s.ship.Life != 0 {
		t.Errorf("Life = %d, want 0", s.ship.Life)
	}
	if n := countCue(s.cues, core.CueGameOver); n != 1 {
		t.Errorf("game over raised %d times, want 1", n)
	}
}

func TestExtraOverlapsIgnoredAfterGameOver(t *testing.T) {
	s, det := newPlayingSession(t)
	s.ship.Life = 1
	for i := 0; i < 3; i++ {
		h := place(t, s.asteroids, float64(i), 0)
		det.pending = append(det.pending, Overlap{Kind: ShipAsteroid, B: h})
	}

	s.Step(core.NewInputFrame(), tick)

	// Dispatch stops once the run ends; the other two asteroids stay
	if s.asteroids.Active() != 2 {
		t.Errorf("asteroids Active() = %d, want 2", s.asteroids.Active())
	}
}

func TestBulletAsteroid(t *testing.T) {
	s, _ := newPlayingSession(t)
	b := place(t, s.bullets, 50, 50)
	a := place(t, s.asteroids, 50, 50)

	o := Overlap{Kind: BulletAsteroid, A: b, B: a}
	s.resolve(o)

	if s.bullets.Active() != 0 || s.asteroids.Active() != 0 {
		t.Fatalf("both should be released, bullets=%d asteroids=%d", s.bullets.Active(), s.asteroids.Active())
	}

	// Reuse the asteroid slot, then replay the stale event: the bullet side
	// is inactive so the new asteroid survives
	a2 := place(t, s.asteroids, 10, 10)
	if a2 != a {
		t.Fatalf("expected slot %d to be reused, got %d", a, a2)
	}
	s.resolve(o)
	if !s.asteroids.Get(a2).Active {
		t.Error("stale bullet event destroyed a live asteroid")
	}
}

func TestShipEnergy(t *testing.T) {
	s, _ := newPlayingSession(t)
	h := place(t, s.energy, 0, 0)
	capBefore := s.bullets.Cap()

	s.resolve(Overlap{Kind: ShipEnergy, B: h})

	if s.ship.Bullets != 8 {
		t.Errorf("Bullets = %d, want 8", s.ship.Bullets)
	}
	if s.energy.Active() != 0 {
		t.Error("pickup should be released")
	}
	if s.bullets.Cap() != capBefore || s.bullets.Active() != 0 {
		t.Error("pickup must not touch the bullet pool")
	}
	if countCue(s.cues, core.CuePickup) != 1 {
		t.Errorf("cues = %v, want one pickup", s.cues)
	}

	s.resolve(Overlap{Kind: ShipEnergy, B: h})
	if s.ship.Bullets != 8 {
		t.Errorf("stale pickup changed Bullets to %d", s.ship.Bullets)
	}
}

func TestSpreadRerollsOnlyAboveField(t *testing.T) {
	cfg := testConfig()
	cfg.Asteroids.Spread = true
	s := NewSession(cfg, &scriptedRandom{values: []int{777, 888}}, &stubDetector{})
	s.startRun()

	top := place(t, s.asteroids, 100, -100)
	below := place(t, s.asteroids, 100, -80)
	s.resolve(Overlap{Kind: AsteroidAsteroid, A: top, B: below})
	if x := s.asteroids.Get(top).X; x != 777 {
		t.Errorf("newer asteroid x = %v, want 777", x)
	}

	onScreen := place(t, s.energy, 300, 200)
	rock := place(t, s.asteroids, 300, 200)
	s.resolve(Overlap{Kind: EnergyAsteroid, A: onScreen, B: rock})
	if x := s.energy.Get(onScreen).X; x != 300 {
		t.Errorf("visible pickup moved to x = %v", x)
	}
}

func TestBoxDetector(t *testing.T) {
	cfg := testConfig()
	cfg.Asteroids.Spread = true
	d := NewBoxDetector(cfg)

	ship := Ship{X: 600, Y: 500}
	asteroids := NewPool(KindAsteroid, 5)
	bullets := NewPool(KindBullet, 5)
	energy := NewPool(KindEnergy, 5)

	hit := place(t, asteroids, 610, 480)  // overlaps ship
	far := place(t, asteroids, 100, 100)  // overlaps bullet
	newer := place(t, asteroids, 120, 60) // overlaps far, higher up
	_ = place(t, asteroids, 1000, 300)    // overlaps nothing
	shot := place(t, bullets, 100, 110)
	pickup := place(t, energy, 590, 510) // overlaps ship and hit

	got := d.Detect(Field{Ship: ship, Asteroids: asteroids, Bullets: bullets, Energy: energy}, nil)

	want := map[Overlap]bool{
		{Kind: ShipAsteroid, B: hit}:               true,
		{Kind: BulletAsteroid, A: shot, B: far}:    true,
		{Kind: ShipEnergy, B: pickup}:              true,
		{Kind: AsteroidAsteroid, A: newer, B: far}: true,
		{Kind: EnergyAsteroid, A: pickup, B: hit}:  true,
	}
	for _, o := range got {
		if !want[o] {
			t.Errorf("unexpected overlap %s %+v", o.Kind, o)
		}
		delete(want, o)
	}
	for o := range want {
		t.Errorf("missing overlap %s %+v", o.Kind, o)
	}
}

func TestBoxDetectorIgnoresInactive(t *testing.T) {
	d := NewBoxDetector(testConfig())
	asteroids := NewPool(KindAsteroid, 2)
	h := place(t, asteroids, 600, 500)
	asteroids.Release(h)

	got := d.Detect(Field{
		Ship:      Ship{X: 600, Y: 500},
		Asteroids: asteroids,
		Bullets:   NewPool(KindBullet, 1),
		Energy:    NewPool(KindEnergy, 1),
	}, nil)
	if len(got) != 0 {
		t.Errorf("inactive asteroid reported: %+v", got)
	}
}
