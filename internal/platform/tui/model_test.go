package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/starfall/internal/core"
	"github.com/vovakirdan/starfall/internal/storage"
)

// fakeGame replays a fixed list of step results.
type fakeGame struct {
	steps  []core.StepResult
	inputs []core.InputFrame
	state  core.GameState
}

func (g *fakeGame) ID() string                    { return "fake" }
func (g *fakeGame) Title() string                 { return "Fake" }
func (g *fakeGame) Reset(core.RuntimeConfig)      { g.state = core.GameState{Phase: "title"} }
func (g *fakeGame) State() core.GameState         { return g.state }
func (g *fakeGame) Render(dst *core.Screen)       { dst.DrawText(0, 0, "fake:"+g.state.Phase) }
func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.inputs = append(g.inputs, copyFrame(in))
	if len(g.steps) == 0 {
		return core.StepResult{State: g.state}
	}
	res := g.steps[0]
	g.steps = g.steps[1:]
	g.state = res.State
	return res
}

// copyFrame snapshots a frame, since the model reuses its maps.
func copyFrame(in core.InputFrame) core.InputFrame {
	out := core.NewInputFrame()
	for a := range in.Actions {
		out.Set(a)
	}
	for a := range in.Held {
		out.SetHeld(a)
	}
	return out
}

func testRuntimeConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1}
}

func tick(m Model) (Model, tea.Cmd) {
	next, cmd := m.Update(TickMsg{ID: m.tickLoop, Time: time.Now()})
	return next.(Model), cmd
}

func TestModelSavesRunOnGameOver(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	game := &fakeGame{steps: []core.StepResult{
		{State: core.GameState{Phase: "playing", Elapsed: 41}},
		{State: core.GameState{Phase: "game_over", Elapsed: 42, GameOver: true}, Cues: []core.Cue{core.CueGameOver}},
		{State: core.GameState{Phase: "game_over", Elapsed: 42, GameOver: true}},
	}}
	m := NewModel(game, testRuntimeConfig(), Options{Store: store, Source: storage.SourceTerminal})
	m.Init()

	for i := 0; i < 3; i++ {
		m, _ = tick(m)
	}

	runs, err := store.TopRuns("fake", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("saved %d runs, want exactly 1", len(runs))
	}
	if runs[0].Seconds != 42 || runs[0].Source != storage.SourceTerminal {
		t.Errorf("run = %+v", runs[0])
	}
}

func TestModelIgnoresForeignTicks(t *testing.T) {
	game := &fakeGame{}
	m := NewModel(game, testRuntimeConfig(), Options{})
	m.Init()

	next, cmd := m.Update(TickMsg{ID: m.tickLoop + 1000})
	if cmd != nil {
		t.Error("a tick from another loop should not schedule another tick")
	}
	if len(next.(Model).game.(*fakeGame).inputs) != 0 {
		t.Error("a tick from another loop should not step the game")
	}
}

func TestModelPassesInputOnce(t *testing.T) {
	game := &fakeGame{}
	m := NewModel(game, testRuntimeConfig(), Options{HoldWindow: 50 * time.Millisecond})
	m.Init()

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = next.(Model)
	m, _ = tick(m)
	m, _ = tick(m)

	if !game.inputs[0].Has(core.ActionConfirm) || !game.inputs[0].IsDown(core.ActionLeft) {
		t.Errorf("first tick input = %+v", game.inputs[0])
	}
	if game.inputs[1].Has(core.ActionConfirm) {
		t.Error("confirm should be cleared after one tick")
	}
	if !game.inputs[1].IsDown(core.ActionLeft) {
		t.Error("left should still be held inside the hold window")
	}
}

func TestModelMouseClickConfirms(t *testing.T) {
	game := &fakeGame{}
	m := NewModel(game, testRuntimeConfig(), Options{})
	m.Init()

	next, _ := m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, _ = tick(next.(Model))

	if !game.inputs[0].Has(core.ActionConfirm) {
		t.Error("left click should confirm")
	}
}

func TestModelBackRefusedMidRun(t *testing.T) {
	game := &fakeGame{steps: []core.StepResult{{State: core.GameState{Phase: "playing"}}}}
	m := NewModel(game, testRuntimeConfig(), Options{})
	m.Init()
	m, _ = tick(m)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if next.(Model).BackToMenu() {
		t.Error("back should be refused while a run is in progress")
	}

	game.state = core.GameState{Phase: "title"}
	m.gameState = game.state
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(Model).BackToMenu() {
		t.Error("back should work on the title screen")
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(&fakeGame{}, testRuntimeConfig(), Options{})
	next, cmd := m.Update(runeKey('q'))
	if !next.(Model).IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
	if next.(Model).View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestModelView(t *testing.T) {
	game := &fakeGame{}
	m := NewModel(game, testRuntimeConfig(), Options{})
	m.Init()
	if !strings.Contains(m.View(), "fake:title") {
		t.Errorf("View() = %q", m.View())
	}
}

func TestHoldTicks(t *testing.T) {
	if got := holdTicks(150*time.Millisecond, 60); got != 9 {
		t.Errorf("holdTicks(150ms, 60) = %d, want 9", got)
	}
	if got := holdTicks(time.Second, 0); got != 60 {
		t.Errorf("holdTicks(1s, 0) = %d, want 60", got)
	}
}

func TestModelHeldSpaceFiresOnce(t *testing.T) {
	game := &fakeGame{}
	m := NewModel(game, testRuntimeConfig(), Options{HoldWindow: 150 * time.Millisecond})
	m.Init()
	space := tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}

	// Terminal auto-repeat: one press, a half-second pause, then a burst
	for i := 0; i <= 90; i++ {
		if i == 0 || (i >= 30 && i%2 == 0) {
			next, _ := m.Update(space)
			m = next.(Model)
		}
		m, _ = tick(m)
	}

	fires := 0
	for _, in := range game.inputs {
		if in.Has(core.ActionFire) {
			fires++
		}
	}
	if fires != 1 {
		t.Errorf("held space fired %d times, want 1", fires)
	}

	// Released long enough, the next press is a new shot
	for i := 0; i < 40; i++ {
		m, _ = tick(m)
	}
	next, _ := m.Update(space)
	m, _ = tick(next.(Model))
	if !game.inputs[len(game.inputs)-1].Has(core.ActionFire) {
		t.Error("press after release should fire")
	}
}

func TestModelRunStartDropsHeldKeys(t *testing.T) {
	game := &fakeGame{steps: []core.StepResult{
		{State: core.GameState{Phase: "playing"}, Cues: []core.Cue{core.CueRunStart}},
		{State: core.GameState{Phase: "playing"}},
	}}
	m := NewModel(game, testRuntimeConfig(), Options{HoldWindow: time.Second})
	m.Init()

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = tick(next.(Model))
	m, _ = tick(m)

	if !game.inputs[0].IsDown(core.ActionLeft) {
		t.Error("left should be down on the tick it was pressed")
	}
	if game.inputs[1].IsDown(core.ActionLeft) {
		t.Error("left held from the title screen should not steer the new run")
	}
}
