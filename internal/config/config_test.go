package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedMatchesBuiltin(t *testing.T) {
	cfg, err := parseAsteroids(defaultAsteroidsYAML)
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultAsteroidsConfig()) {
		t.Errorf("embedded YAML and DefaultAsteroidsConfig differ:\n%+v\n%+v", cfg, DefaultAsteroidsConfig())
	}
}

func TestDefaultsValidate(t *testing.T) {
	if err := DefaultAsteroidsConfig().Validate(); err != nil {
		t.Fatalf("Validate() on defaults: %v", err)
	}
	if err := EnhancedAsteroidsConfig(DefaultAsteroidsConfig()).Validate(); err != nil {
		t.Fatalf("Validate() on enhanced defaults: %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*AsteroidsConfig)
		field  string
	}{
		{"zero world", func(c *AsteroidsConfig) { c.World.Size = 0 }, "world.size"},
		{"positive friction", func(c *AsteroidsConfig) { c.Ship.Friction = 0.1 }, "ship.friction"},
		{"no bullets", func(c *AsteroidsConfig) { c.Bullet.Limit = 0 }, "bullet.limit"},
		{"beat faster than fastest", func(c *AsteroidsConfig) { c.Beat.Initial = 100 * time.Millisecond }, "beat.initial"},
		{"negative tier speed", func(c *AsteroidsConfig) { c.Asteroid.MaxSpeed[1] = -1 }, "asteroid.max_speed[1]"},
		{"small aliens before any", func(c *AsteroidsConfig) { c.Alien.SmallLevel = 1 }, "alien.small_level"},
		{"unknown color", func(c *AsteroidsConfig) { c.Colors.Ship = "plaid" }, "colors.ship"},
		{"unknown progression", func(c *AsteroidsConfig) { c.Difficulty.Progression.Type = "time" }, "difficulty.progression.type"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultAsteroidsConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.field) {
				t.Errorf("error %q does not mention %s", err, tc.field)
			}
		})
	}
}

func TestLoadCustomPathOverridesOnlyNamedFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	doc := "ship:\n  lives: 7\nbullet:\n  duration: 750ms\n"
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, src, err := LoadAsteroidsFrom(path)
	if err != nil {
		t.Fatalf("LoadAsteroidsFrom() failed: %v", err)
	}
	if src != path {
		t.Errorf("source = %q, expected %q", src, path)
	}
	if cfg.Ship.Lives != 7 {
		t.Errorf("Ship.Lives = %d, expected 7", cfg.Ship.Lives)
	}
	if cfg.Bullet.Duration != 750*time.Millisecond {
		t.Errorf("Bullet.Duration = %v, expected 750ms", cfg.Bullet.Duration)
	}
	if cfg.Bullet.Limit != 8 {
		t.Errorf("Bullet.Limit = %d, expected untouched default 8", cfg.Bullet.Limit)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := LoadAsteroids(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("ship:\n  lives: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadAsteroids(bad); err == nil {
		t.Error("expected validation error for zero lives")
	}
}

func TestMarshalRoundTripsDurations(t *testing.T) {
	data, err := Marshal(DefaultAsteroidsConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if !strings.Contains(string(data), "tick_interval: 33ms") {
		t.Errorf("durations should marshal as strings, got:\n%s", data)
	}
}

func TestFieldSize(t *testing.T) {
	a := DefaultAsteroidsConfig().Asteroid
	tests := []struct {
		level, expected int
	}{
		{1, 4},
		{2, 5},
		{4, 7},
		{0, 4},
	}
	for _, tc := range tests {
		if got := a.FieldSize(tc.level); got != tc.expected {
			t.Errorf("FieldSize(%d) = %d, expected %d", tc.level, got, tc.expected)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultAsteroidsConfig()
	ApplyAsteroidsPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset difficulty = %+v", cfg.Difficulty)
	}
	if cfg.Ship.Lives != 2 {
		t.Errorf("hard preset lives = %d, expected 2", cfg.Ship.Lives)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("hard preset config invalid: %v", err)
	}

	cfg = DefaultAsteroidsConfig()
	ApplyAsteroidsPreset(&cfg, DifficultyEasy)
	if err := cfg.Validate(); err != nil {
		t.Errorf("easy preset config invalid: %v", err)
	}

	cfg = DefaultAsteroidsConfig()
	ApplyAsteroidsPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}
}

func TestDifficultyManager(t *testing.T) {
	cfg := DefaultAsteroidsConfig().Difficulty
	d := NewDifficultyManager(cfg)
	if d.SpeedFactor(5, 0) != 1.0 {
		t.Error("disabled difficulty must not scale speeds")
	}

	cfg.Enabled = true
	d = NewDifficultyManager(cfg)
	if got := d.Level(1, 0); got != 0 {
		t.Errorf("Level(1) = %v, expected 0", got)
	}
	if got := d.Level(11, 0); got != 1 {
		t.Errorf("Level(11) = %v, expected 1", got)
	}
	if got := d.SpeedFactor(11, 0); got != 1.5 {
		t.Errorf("SpeedFactor at max = %v, expected 1.5", got)
	}
	if got := d.AlienDelay(5*time.Second, 11, 0); got != 3*time.Second {
		t.Errorf("AlienDelay at max = %v, expected 3s", got)
	}
	if got := d.AlienDelay(time.Second, 11, 0); got != 250*time.Millisecond {
		t.Errorf("AlienDelay floor = %v, expected 250ms", got)
	}
}
