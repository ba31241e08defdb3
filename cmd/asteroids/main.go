// asteroids plays the classic vector arcade game in the terminal.
//
// Usage:
//
//	asteroids list              - List available modes
//	asteroids play [mode]       - Play a mode (default: asteroids)
//	asteroids menu              - Start menu to pick a mode interactively
//	asteroids serve             - Start SSH server for remote play
//	asteroids scores [mode]     - Show high scores
//	asteroids config            - Print the effective configuration
//
// Global flags:
//
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.arcade/scores.db)
//	--config <path>       - Load a custom YAML config
//	--difficulty <preset> - easy, normal, hard or fixed
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-asteroids/internal/audio"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

var (
	// Global flags
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string

	// Local play flags
	flagMute    bool
	flagVolume  float64
	flagLogPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "asteroids",
	Short: "Asteroids - the vector arcade classic in your terminal",
	Long: `Asteroids is a terminal rendition of the vector arcade classic.
Steer the ship, shoot the rocks, and watch out for saucers.

Available commands:
  list     - Show available modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Print the effective configuration

Examples:
  asteroids play
  asteroids play asteroids_enhanced --difficulty hard
  asteroids menu
  asteroids serve --ssh :2222
  asteroids scores`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		asteroids.SetConfigPath(flagConfig)
		asteroids.SetDifficultyPreset(flagDifficulty)
	},
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	for _, cmd := range []*cobra.Command{playCmd, menuCmd} {
		cmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
		cmd.Flags().Float64Var(&flagVolume, "volume", 0.6, "Sound volume from 0 to 1")
		cmd.Flags().StringVar(&flagLogPath, "log", "", "Write debug logs to this file")
	}

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.Seed = flagSeed
	cfg.Muted = flagMute
	return cfg
}

// setupLogging routes game logs to --log, or drops everything below warn
// on stderr before the TUI takes over the terminal.
func setupLogging() (*log.Logger, func()) {
	if flagLogPath == "" {
		logger := log.NewWithOptions(os.Stderr, log.Options{Level: log.WarnLevel})
		asteroids.SetLogger(nil)
		return logger, func() {}
	}

	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		asteroids.SetLogger(nil)
		return log.New(io.Discard), func() {}
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
		Prefix:          "asteroids",
	})
	asteroids.SetLogger(logger)
	return logger, func() { f.Close() }
}

// openSound starts audio unless muted. The speaker failing is not fatal.
func openSound(logger *log.Logger) (core.SoundPlayer, func()) {
	if flagMute {
		return core.NopSound{}, func() {}
	}
	return audio.Open(logger, flagVolume)
}

// openStore opens the score database; without it the game still runs.
func openStore(path string) *storage.Store {
	store, err := storage.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}
