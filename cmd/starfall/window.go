package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/starfall/internal/games/starfall"
	"github.com/vovakirdan/starfall/internal/platform/window"
	"github.com/vovakirdan/starfall/internal/registry"
)

var (
	flagScale float64
	flagMute  bool
)

var windowCmd = &cobra.Command{
	Use:   "window [mode]",
	Short: "Play in a desktop window",
	Long: `Open a desktop window and play the given mode (default: starfall).

Controls:
  Left/Right, A/D  - Steer (held)
  Space            - Fire
  Enter/Click      - Start a run
  P                - Pause
  Q                - Quit

Examples:
  starfall window
  starfall window dodge --scale 0.75
  starfall window --mute`,
	Args: cobra.MaximumNArgs(1),
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size relative to the playfield")
	windowCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runWindow(_ *cobra.Command, args []string) {
	gameID := modeArg(args)
	_, logger, closeLog := setup()
	defer closeLog()

	created, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	game, ok := created.(*starfall.Game)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: mode %q cannot run in a window\n", gameID)
		os.Exit(1)
	}

	store := openStore(logger)

	runErr := window.Run(game, runtimeConfig(), window.Options{
		Store:  store,
		Logger: logger,
		Scale:  flagScale,
		Mute:   flagMute,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
