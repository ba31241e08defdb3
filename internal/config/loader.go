package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const asteroidsFile = "asteroids.yaml"

// Config sources reported by LoadAsteroidsFrom.
const (
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// LoadAsteroids loads Asteroids configuration.
// Search order: customPath -> ~/.arcade/configs/asteroids.yaml -> ./configs/asteroids.yaml -> embedded default
func LoadAsteroids(customPath string) (AsteroidsConfig, error) {
	cfg, _, err := LoadAsteroidsFrom(customPath)
	return cfg, err
}

// LoadAsteroidsFrom is LoadAsteroids that also reports which source won.
// Files only need to name the fields they override; everything else keeps
// its built-in default.
func LoadAsteroidsFrom(customPath string) (AsteroidsConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultAsteroidsConfig(), "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseAsteroids(data)
		if err != nil {
			return DefaultAsteroidsConfig(), "", fmt.Errorf("failed to load config %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(asteroidsFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseAsteroids(data); err == nil {
				return cfg, userCfgPath, nil
			}
		}
	}

	// Try local configs directory
	localPath := filepath.Join("configs", asteroidsFile)
	if data, err := os.ReadFile(localPath); err == nil {
		if cfg, err := parseAsteroids(data); err == nil {
			return cfg, localPath, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseAsteroids(defaultAsteroidsYAML)
	if err != nil {
		return DefaultAsteroidsConfig(), SourceBuiltin, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// parseAsteroids decodes data over the built-in defaults and validates the result.
func parseAsteroids(data []byte) (AsteroidsConfig, error) {
	cfg := DefaultAsteroidsConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validate: %w", err)
	}
	return cfg, nil
}

// Marshal renders a config as YAML, e.g. for `asteroids config`.
func Marshal(cfg AsteroidsConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyAsteroidsPreset modifies the config based on a difficulty preset.
func ApplyAsteroidsPreset(cfg *AsteroidsConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Ship.Lives = 5
		cfg.Bullet.Limit = 10
		cfg.Alien.MinLevel = 3
		cfg.Alien.SmallLevel = max(cfg.Alien.SmallLevel, 4)
	case DifficultyHard:
		cfg.Ship.Lives = 2
		cfg.Bullet.Limit = 6
		cfg.Alien.MinLevel = 1
		cfg.Alien.SmallLevel = 2
	}
}
