// Package starfall implements an asteroid-dodging arcade game.
// The ship steers along the bottom of the field, shoots falling asteroids
// with limited ammunition and refills it from energy pickups. A run lasts
// until the ship loses its last life; the longest run is kept as the best time.
package starfall

import (
	"time"

	"github.com/vovakirdan/starfall/internal/config"
	"github.com/vovakirdan/starfall/internal/core"
	"github.com/vovakirdan/starfall/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.DifficultyPreset(preset)
}

// LoadConfig loads the configuration for the current path and preset.
func LoadConfig() (config.StarfallConfig, error) {
	cfg, err := config.LoadStarfall(configPath)
	if err != nil {
		return cfg, err
	}
	if err := config.ApplyStarfallPreset(&cfg, difficultyPreset); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Variant selects which mechanics a game instance plays with.
type Variant struct {
	ID      string
	Title   string
	Blurb   string
	Weapons bool // Ship starts with ammunition
	Energy  bool // Energy pickups spawn
}

var (
	// Classic is the full game.
	Classic = Variant{
		ID:      "starfall",
		Title:   "Starfall",
		Blurb:   "Shoot, dodge and collect energy to reload",
		Weapons: true,
		Energy:  true,
	}
	// Dodge has no weapons and no pickups.
	Dodge = Variant{
		ID:    "dodge",
		Title: "Starfall: Dodge",
		Blurb: "No guns, no pickups. Just stay alive",
	}
)

// Apply adjusts cfg to the variant's mechanics.
func (v Variant) Apply(cfg *config.StarfallConfig) {
	if !v.Weapons {
		cfg.Ship.Bullets = 0
	}
	if !v.Energy {
		cfg.Energy.Probability = 0
	}
}

// flashTicks is how long the HUD stays highlighted after damage.
const flashTicks = 12

// Game adapts a Session to the registry.Game interface.
type Game struct {
	variant Variant
	runtime core.RuntimeConfig
	cfg     config.StarfallConfig
	session *Session
	dt      time.Duration
	flash   int
}

// New creates the classic game.
func New() *Game {
	return NewVariant(Classic)
}

// NewVariant creates a game playing the given variant.
func NewVariant(v Variant) *Game {
	return &Game{variant: v}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.variant.Title
}

// Reset builds a fresh session on the title screen. Records from a previous
// session carry over, so reopening the mode keeps the last and best times.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := LoadConfig()
	if err != nil {
		cfg = config.DefaultStarfallConfig()
	}
	g.ResetWith(runtime, cfg)
}

// ResetWith is Reset with an explicit configuration.
func (g *Game) ResetWith(runtime core.RuntimeConfig, cfg config.StarfallConfig) {
	g.variant.Apply(&cfg)
	g.runtime = runtime
	g.cfg = cfg

	tickRate := runtime.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	g.dt = time.Second / time.Duration(tickRate)

	prev := g.session
	g.session = NewSession(cfg, NewRandom(runtime.Seed), nil)
	if prev != nil {
		g.session.SetRecords(prev.Last(), prev.Best())
	}
	g.flash = 0
}

// Step advances the session by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	cues := g.session.Step(in, g.dt)

	if g.flash > 0 {
		g.flash--
	}
	out := make([]core.Cue, len(cues))
	copy(out, cues)
	for _, c := range out {
		if c == core.CueDamage {
			g.flash = flashTicks
		}
	}

	return core.StepResult{State: g.State(), Cues: out}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	elapsed := g.session.Clock().TotalSeconds()
	if g.session.Phase() != PhasePlaying {
		elapsed = g.session.Last().TotalSeconds()
	}
	return core.GameState{
		Phase:    g.session.Phase().String(),
		Elapsed:  elapsed,
		GameOver: g.session.Phase() == PhaseGameOver,
		Paused:   g.session.Paused(),
	}
}

// Description returns a one-line summary for menus.
func (g *Game) Description() string {
	return g.variant.Blurb
}

// Session exposes the underlying session to graphical frontends.
func (g *Game) Session() *Session {
	return g.session
}

// Config returns the configuration the current session runs with.
func (g *Game) Config() config.StarfallConfig {
	return g.cfg
}

// Variant returns the variant this game plays.
func (g *Game) Variant() Variant {
	return g.variant
}

// Register the games with the registry
func init() {
	registry.Register(Classic.ID, func() registry.Game {
		return New()
	})
	registry.Register(Dodge.ID, func() registry.Game {
		return NewVariant(Dodge)
	})
}
