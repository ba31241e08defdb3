package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
)

var (
	flagDefaults bool
	flagEnhanced bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a new game would use, as YAML.

The config is resolved in this order:
  --config path, ~/.arcade/configs/asteroids.yaml, ./configs/asteroids.yaml,
  then the built-in defaults. The --difficulty preset is applied on top.

Examples:
  asteroids config --defaults > ~/.arcade/configs/asteroids.yaml
  asteroids config --difficulty hard
  asteroids config --enhanced`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in default config file")
	configCmd.Flags().BoolVar(&flagEnhanced, "enhanced", false, "Apply the enhanced rule set")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagDefaults {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	mode := asteroids.ModeClassic
	if flagEnhanced {
		mode = asteroids.ModeEnhanced
	}
	cfg, source, err := asteroids.ResolveConfig(mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	out, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding config: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("# source: %s\n", source)
	os.Stdout.Write(out)
}
