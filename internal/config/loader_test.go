package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) error: %v", err)
	}
	if cfg != DefaultEchoConfig() {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, DefaultEchoConfig())
	}
}

func TestParseOverlaysDefaults(t *testing.T) {
	cfg, err := Parse([]byte("echoes:\n  interval: 3.5\npowerups:\n  weights:\n    ghost_eater: 5\n"))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	if cfg.Echoes.Interval != 3.5 {
		t.Errorf("Echoes.Interval = %g, expected 3.5", cfg.Echoes.Interval)
	}
	if cfg.Echoes.Radius != 12 {
		t.Errorf("Echoes.Radius = %g, expected default 12", cfg.Echoes.Radius)
	}
	if cfg.Powerups.Weights.GhostEater != 5 {
		t.Errorf("Weights.GhostEater = %d, expected 5", cfg.Powerups.Weights.GhostEater)
	}
	if cfg.Powerups.Weights.Shrink != 3 {
		t.Errorf("Weights.Shrink = %d, expected default 3", cfg.Powerups.Weights.Shrink)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*EchoConfig)
		field  string
	}{
		{"zero arena", func(c *EchoConfig) { c.Arena.Width = 0 }, "arena"},
		{"shrink not smaller", func(c *EchoConfig) { c.Player.ShrinkRadius = c.Player.Radius }, "player.shrink_radius"},
		{"zero echo interval", func(c *EchoConfig) { c.Echoes.Interval = 0 }, "echoes.interval"},
		{"inverted item interval", func(c *EchoConfig) { c.Items.MaxInterval = c.Items.MinInterval / 2 }, "items interval"},
		{"all weights zero", func(c *EchoConfig) { c.Powerups.Weights = PowerupWeights{} }, "powerups.weights"},
		{"no attempts", func(c *EchoConfig) { c.Spawn.MaxAttempts = 0 }, "spawn.max_attempts"},
		{"margin too large", func(c *EchoConfig) { c.Items.Margin = 400 }, "items.margin"},
		{"bad progression", func(c *EchoConfig) { c.Difficulty.Progression.Type = "lunar" }, "difficulty.progression.type"},
	}

	if err := DefaultEchoConfig().Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultEchoConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalid) {
				t.Fatalf("Validate() = %v, expected ErrInvalid", err)
			}
			if !strings.Contains(err.Error(), tc.field) {
				t.Errorf("Validate() = %q, expected mention of %q", err, tc.field)
			}
		})
	}
}

func TestWeightlessPickupsAllowedWhenDisabled(t *testing.T) {
	cfg := DefaultEchoConfig()
	cfg.Powerups.MaxLive = 0
	cfg.Powerups.Weights = PowerupWeights{}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, expected nil when pickups are disabled", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "echo.yaml")
	if err := os.WriteFile(path, []byte("player:\n  speed: 300\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Player.Speed != 300 {
		t.Errorf("Player.Speed = %g, expected 300", cfg.Player.Speed)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of missing file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("arena: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load() of malformed YAML should fail")
	}

	invalidPath := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalidPath, []byte("echoes:\n  interval: -1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(invalidPath); !errors.Is(err, ErrInvalid) {
		t.Errorf("Load() = %v, expected ErrInvalid", err)
	}
}

// isolateConfigDirs points HOME and the working directory at empty temp dirs.
func isolateConfigDirs(t *testing.T) (home, work string) {
	t.Helper()
	home, work = t.TempDir(), t.TempDir()
	t.Setenv("HOME", home)
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(work); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(oldWD) })
	return home, work
}

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	isolateConfigDirs(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg != DefaultEchoConfig() {
		t.Errorf("Load() = %+v, expected built-in defaults", cfg)
	}
}

func TestLoadLocalConfig(t *testing.T) {
	_, work := isolateConfigDirs(t)
	writeConfig(t, filepath.Join(work, LocalPath), "echoes:\n  kill_bonus: 9\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Echoes.KillBonus != 9 {
		t.Errorf("Echoes.KillBonus = %d, expected 9", cfg.Echoes.KillBonus)
	}
}

func TestLoadRejectsInvalidDiscoveredConfig(t *testing.T) {
	tests := []struct {
		name    string
		user    bool
		content string
		invalid bool
	}{
		{"local invalid value", false, "echoes:\n  interval: -1\n", true},
		{"local malformed yaml", false, "arena: [1, 2", false},
		{"user invalid value", true, "player:\n  radius: 0\n", true},
		{"user malformed yaml", true, "player: {speed", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			home, work := isolateConfigDirs(t)
			path, named := filepath.Join(work, LocalPath), LocalPath
			if tc.user {
				path = filepath.Join(home, ".echo-arena", "configs", "echo.yaml")
				named = path
			}
			writeConfig(t, path, tc.content)

			_, err := Load("")
			if err == nil {
				t.Fatal("Load() error = nil, expected the broken file to be reported")
			}
			if !strings.Contains(err.Error(), named) {
				t.Errorf("Load() error = %v, expected it to name %s", err, named)
			}
			if tc.invalid && !errors.Is(err, ErrInvalid) {
				t.Errorf("Load() error = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := DefaultEchoConfig()
	cfg.Echoes.KillBonus = 7

	data, err := cfg.Marshal()
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if !strings.Contains(string(data), "kill_bonus: 7") {
		t.Errorf("Marshal() output missing kill_bonus:\n%s", data)
	}

	back, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse(Marshal()) error: %v", err)
	}
	if back != cfg {
		t.Errorf("round trip = %+v, expected %+v", back, cfg)
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultEchoConfig()
	ApplyPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	cfg = DefaultEchoConfig()
	ApplyPreset(&cfg, DifficultyHard)
	if cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("InitialLevel = %g, expected 0.7", cfg.Difficulty.InitialLevel)
	}
	if cfg.Echoes.Grace >= DefaultEchoConfig().Echoes.Grace {
		t.Errorf("hard preset grace = %g, expected less than default", cfg.Echoes.Grace)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("hard preset produced invalid config: %v", err)
	}

	before := DefaultEchoConfig()
	cfg = before
	ApplyPreset(&cfg, "")
	if cfg != before {
		t.Error("empty preset should leave config unchanged")
	}
}

func TestParsePreset(t *testing.T) {
	for _, name := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(name); err != nil {
			t.Errorf("ParsePreset(%q) error: %v", name, err)
		}
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("ParsePreset(nightmare) should fail")
	}
}
