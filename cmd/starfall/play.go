package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/starfall/internal/platform/tui"
	"github.com/vovakirdan/starfall/internal/registry"
	"github.com/vovakirdan/starfall/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play in the terminal",
	Long: `Start playing the given mode (default: starfall) in the terminal.

Controls:
  Left/Right, A/D  - Steer
  Space            - Fire
  Enter/Click      - Start a run
  P                - Pause
  Esc/B            - Leave (title screen, game over or paused)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Start at the classic speed, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  starfall play
  starfall play dodge
  starfall play --difficulty hard
  starfall play --config ./my-starfall.yaml --log ./starfall.log`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := modeArg(args)
	cfg, logger, closeLog := setup()
	defer closeLog()

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore(logger)

	_, runErr := tui.Run(game, runtimeConfig(), tui.Options{
		Store:      store,
		Logger:     logger,
		HoldWindow: holdWindow(cfg),
		Source:     storage.SourceTerminal,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
