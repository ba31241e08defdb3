package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-asteroids/internal/platform/tui"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
)

const defaultMode = "asteroids"

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the specified mode (default: asteroids).

Controls:
  Left/Right, A/D  - Turn
  Up, W            - Thrust
  Space            - Fire (hold for continuous fire)
  M, X             - Homing missile (enhanced mode)
  Enter            - Start from the title screen
  P                - Pause
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - More lives, saucers arrive later
  normal - Arcade defaults with gentle progression
  hard   - Fewer lives, early saucers, fewer bullets
  fixed  - No progression beyond the config values

Examples:
  asteroids play
  asteroids play asteroids_enhanced
  asteroids play --difficulty hard --mute
  asteroids play --config ./my-asteroids.yaml --log ./debug.log`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := defaultMode
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'asteroids list' to see available modes.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := setupLogging()
	sound, closeSound := openSound(logger)
	store := openStore(flagDBPath)

	runErr := tui.Run(game, store, runtimeConfig(), sound)

	// Release resources before potential exit
	closeSound()
	if store != nil {
		store.Close()
	}
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
