// starfall is an asteroid-dodging arcade game for the terminal, SSH and the
// desktop.
//
// Usage:
//
//	starfall list              - List game modes
//	starfall play [mode]       - Play in the terminal
//	starfall menu              - Pick modes interactively
//	starfall window [mode]     - Play in a desktop window
//	starfall serve             - Start SSH server for remote play
//	starfall scores [mode]     - Show the longest runs
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.arcade/starfall.db)
//	--config <path>       - Use a custom YAML config
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log <path>          - Write a debug log to a file
//	--hold-ms <ms>        - Override how long a key counts as held in terminals
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/starfall/internal/config"
	"github.com/vovakirdan/starfall/internal/core"
	"github.com/vovakirdan/starfall/internal/games/starfall"
	"github.com/vovakirdan/starfall/internal/registry"
	"github.com/vovakirdan/starfall/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogPath    string
	flagHoldMs     int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "starfall",
	Short: "Starfall - dodge and shoot falling asteroids",
	Long: `Starfall is an asteroid-dodging arcade game. Steer the ship along the
bottom of the field, shoot asteroids with limited ammunition and collect
energy to reload. A run lasts until the last life is gone; the longest run
is your best time.

Available commands:
  list     - Show all game modes
  play     - Play in the terminal
  menu     - Interactive mode picker
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  scores   - View the longest runs

Examples:
  starfall play
  starfall play dodge --difficulty hard
  starfall menu
  starfall window --scale 0.75
  starfall serve --ssh :2222
  starfall scores starfall`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/starfall.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write a debug log to this file")
	rootCmd.PersistentFlags().IntVar(&flagHoldMs, "hold-ms", 0, "Key hold window in milliseconds (0 = from config)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// loadGameConfig hands the config flags to the game package and checks
// that the resulting configuration is usable.
func loadGameConfig() (config.StarfallConfig, error) {
	starfall.SetConfigPath(flagConfig)
	starfall.SetDifficultyPreset(flagDifficulty)
	return starfall.LoadConfig()
}

// holdWindow returns the terminal key hold window.
func holdWindow(cfg config.StarfallConfig) time.Duration {
	ms := cfg.Input.HoldMs
	if flagHoldMs > 0 {
		ms = flagHoldMs
	}
	return time.Duration(ms) * time.Millisecond
}

// newLogger returns a file logger when --log is set and a discarding one
// otherwise. The terminal belongs to the game, so nothing logs to stderr.
func newLogger() (*log.Logger, func(), error) {
	if flagLogPath == "" {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "starfall",
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }, nil
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the run database. The game still works without one.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run database: %v\n", err)
		logger.Warn("could not open run database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// setup runs the common start-up for the game commands and exits on error.
func setup() (config.StarfallConfig, *log.Logger, func()) {
	cfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger, closeLog, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg, logger, closeLog
}

// modeArg returns the requested mode or the classic game, exiting when the
// mode is unknown.
func modeArg(args []string) string {
	id := starfall.Classic.ID
	if len(args) > 0 {
		id = args[0]
	}
	if !registry.Exists(id) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", id)
		fmt.Fprintln(os.Stderr, "Run 'starfall list' to see available modes.")
		os.Exit(1)
	}
	return id
}
