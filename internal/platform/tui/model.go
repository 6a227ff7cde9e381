package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/starfall/internal/core"
	"github.com/vovakirdan/starfall/internal/registry"
	"github.com/vovakirdan/starfall/internal/storage"
)

// Options configures a game model.
type Options struct {
	// Store receives finished runs. Nil disables run history.
	Store *storage.Store

	// Logger receives gameplay events. Nil discards them.
	Logger *log.Logger

	// HoldWindow is how long a steering key stays held after its last
	// key-repeat event.
	HoldWindow time.Duration

	// Source tags saved runs with the frontend that played them.
	Source string
}

// fireRepeatGap spans the delay before terminal auto-repeat kicks in, so a
// held Space counts as one shot.
const fireRepeatGap = 600 * time.Millisecond

// holdTicks converts a hold window to simulation ticks.
func holdTicks(window time.Duration, tickRate int) int {
	if tickRate <= 0 {
		tickRate = 60
	}
	return int(window * time.Duration(tickRate) / time.Second)
}

func newHoldTracker(window time.Duration, tickRate int) *core.HoldTracker {
	return core.NewHoldTracker(holdTicks(window, tickRate)).
		WithWindow(core.ActionFire, holdTicks(fireRepeatGap, tickRate))
}

// Model is the Bubble Tea model for playing one game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	opts       Options
	logger     *log.Logger
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	hold       *core.HoldTracker
	keyMapper  *KeyMapper
	gameState  core.GameState
	tickLoop   int64
	standalone bool // Owns the program: leaving the game quits it
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		opts:       opts,
		logger:     logger,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		hold:       newHoldTracker(opts.HoldWindow, cfg.TickRate),
		keyMapper:  NewKeyMapper(),
		tickLoop:   newTickLoop(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Debug("game ready", "game", m.game.ID(), "seed", m.config.Seed, "tick_rate", m.config.TickRate)

	// Start the tick loop
	return tickCmd(m.tickLoop, m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.inputFrame.Set(core.ActionConfirm)
		}
		return m, nil

	case tea.WindowSizeMsg:
		// The field is in world units, so a resize only changes the mapping
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.ID != m.tickLoop {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame, m.hold) {
		m.quitting = true
		return m, tea.Quit
	}

	// Back to menu is refused mid-run unless paused
	if m.inputFrame.Has(core.ActionBack) && (m.gameState.Phase != "playing" || m.gameState.Paused) {
		m.backToMenu = true
		if m.standalone {
			return m, tea.Quit
		}
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.hold.Apply(&m.inputFrame)

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	for _, cue := range result.Cues {
		m.logger.Debug("cue", "game", m.game.ID(), "cue", cue)
	}
	if result.Has(core.CueRunStart) {
		// Keys held on the title screen do not steer the new run
		m.hold.Reset()
	}
	if result.Has(core.CueGameOver) {
		m.saveRun(result.State.Elapsed)
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.tickLoop, m.config.TickRate)
}

// saveRun records a finished run. Storage errors are logged, never fatal.
func (m Model) saveRun(seconds int) {
	m.logger.Info("run finished", "game", m.game.ID(), "seconds", seconds)
	if m.opts.Store == nil {
		return
	}
	if _, err := m.opts.Store.SaveRun(m.game.ID(), seconds, m.opts.Source); err != nil {
		m.logger.Warn("could not save run", "game", m.game.ID(), "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run plays the game in the local terminal until the player quits or
// goes back to the menu.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (backToMenu bool, err error) {
	model := NewModel(game, cfg, opts)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Click confirms on the title screen
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	if m, ok := finalModel.(Model); ok {
		return m.BackToMenu(), nil
	}
	return false, nil
}
