package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LocalPath is the project-local config file consulted after the user file.
const LocalPath = "configs/echo.yaml"

// Load loads the arena configuration.
// Search order: customPath -> ~/.echo-arena/configs/echo.yaml -> ./configs/echo.yaml -> embedded default.
// Files are overlaid on the defaults, so they only need the keys they change.
// The first file that exists wins; if it is invalid, Load returns the error.
func Load(customPath string) (EchoConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return EchoConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return EchoConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory.
	// A missing file falls through; an unreadable or invalid one is an error.
	for _, path := range []string{UserConfigPath("echo.yaml"), LocalPath} {
		if path == "" {
			continue
		}
		cfg, found, err := loadFile(path)
		if err != nil {
			return EchoConfig{}, err
		}
		if found {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultEchoYAML)
	if err != nil {
		return DefaultEchoConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// loadFile reads and parses path. found is false when the file does not exist.
func loadFile(path string) (cfg EchoConfig, found bool, err error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return EchoConfig{}, false, nil
	}
	if err != nil {
		return EchoConfig{}, true, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err = Parse(data)
	if err != nil {
		return EchoConfig{}, true, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, true, nil
}

// Parse decodes YAML on top of the built-in defaults and validates the result.
func Parse(data []byte) (EchoConfig, error) {
	cfg := DefaultEchoConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return EchoConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return EchoConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func (c EchoConfig) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// UserConfigPath returns the path to a file in the user config directory,
// or empty if home is unavailable.
func UserConfigPath(filename string) string {
	dir := UserDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "configs", filename)
}

// UserDir returns ~/.echo-arena, or empty if home is unavailable.
func UserDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".echo-arena")
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

func invalid(field, format string, args ...any) error {
	return fmt.Errorf("%w: %s %s", ErrInvalid, field, fmt.Sprintf(format, args...))
}

// Validate checks that the configuration describes a playable arena.
func (c EchoConfig) Validate() error {
	switch {
	case c.Arena.Width <= 0 || c.Arena.Height <= 0:
		return invalid("arena", "must have positive size, got %gx%g", c.Arena.Width, c.Arena.Height)
	case c.Player.Radius <= 0:
		return invalid("player.radius", "must be positive, got %g", c.Player.Radius)
	case c.Player.ShrinkRadius <= 0 || c.Player.ShrinkRadius >= c.Player.Radius:
		return invalid("player.shrink_radius", "must be in (0, %g), got %g", c.Player.Radius, c.Player.ShrinkRadius)
	case c.Player.Speed < 0:
		return invalid("player.speed", "must not be negative, got %g", c.Player.Speed)
	case 2*c.Player.Radius >= c.Arena.Width || 2*c.Player.Radius >= c.Arena.Height:
		return invalid("player.radius", "does not fit the arena")
	case c.Echoes.Radius <= 0:
		return invalid("echoes.radius", "must be positive, got %g", c.Echoes.Radius)
	case c.Echoes.Interval <= 0:
		return invalid("echoes.interval", "must be positive, got %g", c.Echoes.Interval)
	case c.Echoes.Grace < 0:
		return invalid("echoes.grace", "must not be negative, got %g", c.Echoes.Grace)
	case c.Echoes.KillBonus < 0:
		return invalid("echoes.kill_bonus", "must not be negative, got %d", c.Echoes.KillBonus)
	case c.Items.Radius <= 0 || c.Powerups.Radius <= 0:
		return invalid("items/powerups radius", "must be positive")
	case c.Items.Points < 0:
		return invalid("items.points", "must not be negative, got %d", c.Items.Points)
	case c.Items.MinInterval <= 0 || c.Items.MaxInterval < c.Items.MinInterval:
		return invalid("items interval", "must satisfy 0 < min <= max, got [%g, %g]", c.Items.MinInterval, c.Items.MaxInterval)
	case c.Powerups.MinInterval <= 0 || c.Powerups.MaxInterval < c.Powerups.MinInterval:
		return invalid("powerups interval", "must satisfy 0 < min <= max, got [%g, %g]", c.Powerups.MinInterval, c.Powerups.MaxInterval)
	case c.Powerups.Duration <= 0:
		return invalid("powerups.duration", "must be positive, got %g", c.Powerups.Duration)
	case c.Items.MaxLive < 0 || c.Powerups.MaxLive < 0:
		return invalid("max_live", "must not be negative")
	case c.Powerups.Weights.GhostEater < 0 || c.Powerups.Weights.TimeFreeze < 0 || c.Powerups.Weights.Shrink < 0:
		return invalid("powerups.weights", "must not be negative")
	case c.Powerups.MaxLive > 0 && c.Powerups.Weights.Total() == 0:
		return invalid("powerups.weights", "must not all be zero")
	case 2*c.Items.Margin >= c.Arena.Width || 2*c.Items.Margin >= c.Arena.Height:
		return invalid("items.margin", "leaves no room in the arena")
	case 2*c.Powerups.Margin >= c.Arena.Width || 2*c.Powerups.Margin >= c.Arena.Height:
		return invalid("powerups.margin", "leaves no room in the arena")
	case c.Spawn.MaxAttempts < 1:
		return invalid("spawn.max_attempts", "must be at least 1, got %d", c.Spawn.MaxAttempts)
	case c.Run.StartGrace < 0:
		return invalid("run.start_grace", "must not be negative, got %g", c.Run.StartGrace)
	}
	switch c.Difficulty.Progression.Type {
	case "", "none", "score", "time":
	default:
		return invalid("difficulty.progression.type", "must be score, time or none, got %q", c.Difficulty.Progression.Type)
	}
	return nil
}

// ParsePreset validates a preset name. Empty means no preset.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *EchoConfig, preset DifficultyPreset) {
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
		cfg.Echoes.Grace = 1.5
		cfg.Run.StartGrace = 2.0
		cfg.Powerups.Weights.GhostEater = 2
	case DifficultyHard:
		cfg.Echoes.Grace = 0.5
		cfg.Run.StartGrace = 0.5
		cfg.Player.Speed *= 1.1
	}
}
