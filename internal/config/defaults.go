package config

import (
	_ "embed"
)

//go:embed defaults/echo.yaml
var defaultEchoYAML []byte

// DefaultEchoConfig returns the built-in configuration. It mirrors
// defaults/echo.yaml and is used when the embedded file cannot be parsed.
func DefaultEchoConfig() EchoConfig {
	return EchoConfig{
		Arena: ArenaConfig{
			Width:  800,
			Height: 600,
		},
		Player: PlayerConfig{
			Radius:       12,
			ShrinkRadius: 6,
			Speed:        240, // 4 units per tick at 60fps
		},
		Echoes: EchoesConfig{
			Radius:    12,
			Interval:  5.0,
			Grace:     1.0,
			KillBonus: 3,
		},
		Items: ItemsConfig{
			Radius:      8,
			Points:      1,
			MinInterval: 2.0,
			MaxInterval: 4.0,
			MaxLive:     3,
			Margin:      40,
		},
		Powerups: PowerupsConfig{
			Radius:      12,
			Duration:    5.0,
			MinInterval: 6.0,
			MaxInterval: 10.0,
			MaxLive:     1,
			Margin:      50,
			Weights: PowerupWeights{
				GhostEater: 1,
				TimeFreeze: 3,
				Shrink:     3,
			},
		},
		Spawn: SpawnConfig{
			MaxAttempts: 16,
			Clearance:   8,
		},
		Run: RunConfig{
			StartGrace: 1.0,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 120,
			},
			Scaling: ScalingConfig{
				ItemIntervalReduction:    0.5,
				PowerupIntervalReduction: 0.3,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultEchoYAML
}
