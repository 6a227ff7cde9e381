package starfall

import (
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/starfall/internal/config"
	"github.com/vovakirdan/starfall/internal/core"
	"github.com/vovakirdan/starfall/internal/registry"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed}
}

func TestGameRegistered(t *testing.T) {
	for _, id := range []string{"starfall", "dodge"} {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q): %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID() = %q, want %q", g.ID(), id)
		}
	}
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 900)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch {
		case i == 0:
			inputs[i].Set(core.ActionConfirm)
		case i%90 == 45:
			inputs[i].Set(core.ActionFire)
		case (i/120)%2 == 0:
			inputs[i].SetHeld(core.ActionLeft)
		default:
			inputs[i].SetHeld(core.ActionRight)
		}
	}

	run := func() Snapshot {
		g := New()
		g.ResetWith(testRuntime(12345), config.DefaultStarfallConfig())
		for _, in := range inputs {
			g.Step(in)
		}
		return g.Session().Snapshot()
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed and inputs diverged:\n%+v\n%+v", a, b)
	}
}

func TestGameStepResult(t *testing.T) {
	g := New()
	g.ResetWith(testRuntime(1), config.DefaultStarfallConfig())

	if st := g.State(); st.Phase != "title" || st.GameOver {
		t.Errorf("initial state = %+v", st)
	}

	res := g.Step(press(core.ActionConfirm))
	if !res.Has(core.CueRunStart) {
		t.Errorf("cues = %v, want run start", res.Cues)
	}
	if res.State.Phase != "playing" {
		t.Errorf("Phase = %q", res.State.Phase)
	}

	res = g.Step(press(core.ActionFire))
	if !res.Has(core.CueFire) {
		t.Errorf("cues = %v, want fire", res.Cues)
	}
}

func TestGameDamageFlash(t *testing.T) {
	g := New()
	g.ResetWith(testRuntime(1), config.DefaultStarfallConfig())
	g.Step(press(core.ActionConfirm))

	s := g.Session()
	place(t, s.asteroids, s.ship.X, s.ship.Y)
	res := g.Step(core.NewInputFrame())

	if !res.Has(core.CueDamage) {
		t.Fatalf("cues = %v, want damage", res.Cues)
	}
	if g.flash != flashTicks {
		t.Errorf("flash = %d, want %d", g.flash, flashTicks)
	}
}

func TestGameOverState(t *testing.T) {
	g := New()
	g.ResetWith(testRuntime(1), config.DefaultStarfallConfig())
	g.Step(press(core.ActionConfirm))

	s := g.Session()
	s.ship.Life = 1
	place(t, s.asteroids, s.ship.X, s.ship.Y)
	res := g.Step(core.NewInputFrame())

	if !res.Has(core.CueGameOver) || !res.State.GameOver {
		t.Errorf("result = %+v, want game over", res)
	}
	if res.State.Phase != "game_over" {
		t.Errorf("Phase = %q", res.State.Phase)
	}
}

func TestGameResetKeepsRecords(t *testing.T) {
	g := New()
	g.ResetWith(testRuntime(1), config.DefaultStarfallConfig())
	g.Session().SetRecords(Record{0, 10}, Record{1, 5})

	g.Reset(testRuntime(2))

	if g.Session().Best() != (Record{1, 5}) || g.Session().Last() != (Record{0, 10}) {
		t.Errorf("records lost: last=%s best=%s", g.Session().Last(), g.Session().Best())
	}
	if g.Session().Phase() != PhaseTitle {
		t.Errorf("phase = %s after Reset", g.Session().Phase())
	}
}

func TestDodgeVariant(t *testing.T) {
	g := NewVariant(Dodge)
	g.ResetWith(testRuntime(3), config.DefaultStarfallConfig())
	g.Step(press(core.ActionConfirm))

	s := g.Session()
	if s.Ship().Bullets != 0 {
		t.Errorf("Bullets = %d, want 0", s.Ship().Bullets)
	}

	for i := 0; i < 600; i++ {
		res := g.Step(press(core.ActionFire))
		if res.Has(core.CueFire) {
			t.Fatal("dodge fired a bullet")
		}
		if s.Phase() != PhasePlaying {
			break
		}
		if s.Pool(KindEnergy).Active() != 0 {
			t.Fatal("dodge spawned an energy pickup")
		}
	}
}

func TestRenderTitle(t *testing.T) {
	g := New()
	g.ResetWith(testRuntime(1), config.DefaultStarfallConfig())
	g.Session().SetRecords(Record{0, 42}, Record{1, 30})

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"S T A R F A L L", "Press ENTER", "Last 00:42", "Best 01:30"} {
		if !strings.Contains(out, want) {
			t.Errorf("title screen missing %q", want)
		}
	}
}

func TestRenderPlaying(t *testing.T) {
	g := New()
	g.ResetWith(testRuntime(1), config.DefaultStarfallConfig())
	g.Step(press(core.ActionConfirm))

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if row := screen.Row(0); !strings.Contains(row, "Life: 4") {
		t.Errorf("row 0 = %q, want life", row)
	}
	if row := screen.Row(2); !strings.Contains(row, "Time: 00:00") {
		t.Errorf("row 2 = %q, want time", row)
	}
	if !strings.Contains(screen.String(), ShipGlyph) {
		t.Error("ship not drawn")
	}
}

func TestRenderDodgeHidesBullets(t *testing.T) {
	g := NewVariant(Dodge)
	g.ResetWith(testRuntime(1), config.DefaultStarfallConfig())
	g.Step(press(core.ActionConfirm))

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if strings.Contains(screen.String(), "Bullets") {
		t.Error("dodge HUD should not show bullets")
	}
	if row := screen.Row(1); !strings.Contains(row, "Time: 00:00") {
		t.Errorf("row 1 = %q, want time", row)
	}
}

func TestRenderGameOver(t *testing.T) {
	g := New()
	g.ResetWith(testRuntime(1), config.DefaultStarfallConfig())
	g.Step(press(core.ActionConfirm))
	s := g.Session()
	s.ship.Life = 1
	place(t, s.asteroids, s.ship.X, s.ship.Y)
	g.Step(core.NewInputFrame())

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("game over banner missing")
	}
}

func TestRenderSmallScreen(t *testing.T) {
	g := New()
	g.ResetWith(testRuntime(1), config.DefaultStarfallConfig())

	screen := core.NewScreen(20, 8)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("expected size warning")
	}
}
