// Package window plays starfall in a desktop window using Ebitengine.
// The world is drawn at its native resolution and scaled by Ebitengine;
// cues are played as synthesized beeps.
package window

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/starfall/internal/core"
	"github.com/vovakirdan/starfall/internal/games/starfall"
	"github.com/vovakirdan/starfall/internal/storage"
)

// Options configures the window frontend.
type Options struct {
	// Store receives finished runs. Nil disables run history.
	Store *storage.Store

	// Logger receives gameplay events. Nil discards them.
	Logger *log.Logger

	// Scale multiplies the initial window size.
	Scale float64

	// Mute disables cue sounds.
	Mute bool
}

// App is the ebiten.Game driving one starfall game.
type App struct {
	game   *starfall.Game
	opts   Options
	logger *log.Logger
	input  keySource
	sounds *SoundBank
	face   text.Face
	stars  []star
}

// NewApp resets game for rt and wraps it for Ebitengine.
func NewApp(game *starfall.Game, rt core.RuntimeConfig, opts Options) *App {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	game.Reset(rt)

	cfg := game.Config()
	return &App{
		game:   game,
		opts:   opts,
		logger: logger,
		input:  ebitenInput{},
		face:   text.NewGoXFace(basicfont.Face7x13),
		stars:  newStars(cfg.World.Width, cfg.World.Height, rt.Seed),
	}
}

// Update advances the game by one tick.
func (a *App) Update() error {
	frame, quit := readInput(a.input)
	if quit {
		return ebiten.Termination
	}

	result := a.game.Step(frame)
	for _, cue := range result.Cues {
		a.logger.Debug("cue", "game", a.game.ID(), "cue", cue)
		if a.sounds != nil {
			a.sounds.Play(cue)
		}
	}
	if result.Has(core.CueGameOver) {
		a.saveRun(result.State.Elapsed)
	}
	return nil
}

// saveRun records a finished run. Storage errors are logged, never fatal.
func (a *App) saveRun(seconds int) {
	a.logger.Info("run finished", "game", a.game.ID(), "seconds", seconds)
	if a.opts.Store == nil {
		return
	}
	if _, err := a.opts.Store.SaveRun(a.game.ID(), seconds, storage.SourceWindow); err != nil {
		a.logger.Warn("could not save run", "game", a.game.ID(), "error", err)
	}
}

// Layout keeps the logical screen at world size.
func (a *App) Layout(_, _ int) (int, int) {
	cfg := a.game.Config()
	return cfg.World.Width, cfg.World.Height
}

// Run opens the window and plays until it is closed or the player quits.
func Run(game *starfall.Game, rt core.RuntimeConfig, opts Options) error {
	if rt.TickRate <= 0 {
		rt.TickRate = 60
	}
	app := NewApp(game, rt, opts)
	if !opts.Mute {
		app.sounds = NewSoundBank()
	}

	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	cfg := game.Config()
	ebiten.SetWindowSize(int(float64(cfg.World.Width)*scale), int(float64(cfg.World.Height)*scale))
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(rt.TickRate)

	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
