// Package config provides YAML-based game configuration loading and
// difficulty management for Echo Arena.
package config

// EchoConfig contains all tunables of the arena. Durations are in seconds
// and distances in world units; the simulation converts them to ticks at
// the configured tick rate.
type EchoConfig struct {
	Arena      ArenaConfig      `yaml:"arena"`
	Player     PlayerConfig     `yaml:"player"`
	Echoes     EchoesConfig     `yaml:"echoes"`
	Items      ItemsConfig      `yaml:"items"`
	Powerups   PowerupsConfig   `yaml:"powerups"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Run        RunConfig        `yaml:"run"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ArenaConfig defines the world size.
type ArenaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player's hitbox and movement.
type PlayerConfig struct {
	Radius       float64 `yaml:"radius"`
	ShrinkRadius float64 `yaml:"shrink_radius"`
	Speed        float64 `yaml:"speed"` // world units per second
}

// EchoesConfig defines echo spawning and scoring.
type EchoesConfig struct {
	Radius    float64 `yaml:"radius"`
	Interval  float64 `yaml:"interval"`   // seconds between spawns
	Grace     float64 `yaml:"grace"`      // seconds a fresh echo stays harmless
	KillBonus int     `yaml:"kill_bonus"` // points for eating an echo
}

// ItemsConfig defines collectible point items.
type ItemsConfig struct {
	Radius      float64 `yaml:"radius"`
	Points      int     `yaml:"points"`
	MinInterval float64 `yaml:"min_interval"`
	MaxInterval float64 `yaml:"max_interval"`
	MaxLive     int     `yaml:"max_live"`
	Margin      float64 `yaml:"margin"`
}

// PowerupsConfig defines powerup pickups and their effects.
type PowerupsConfig struct {
	Radius      float64        `yaml:"radius"`
	Duration    float64        `yaml:"duration"`
	MinInterval float64        `yaml:"min_interval"`
	MaxInterval float64        `yaml:"max_interval"`
	MaxLive     int            `yaml:"max_live"`
	Margin      float64        `yaml:"margin"`
	Weights     PowerupWeights `yaml:"weights"`
}

// PowerupWeights are relative spawn weights per powerup kind.
type PowerupWeights struct {
	GhostEater int `yaml:"ghost_eater"`
	TimeFreeze int `yaml:"time_freeze"`
	Shrink     int `yaml:"shrink"`
}

// Total returns the sum of all weights.
func (w PowerupWeights) Total() int {
	return w.GhostEater + w.TimeFreeze + w.Shrink
}

// SpawnConfig bounds the placement search for new entities.
type SpawnConfig struct {
	MaxAttempts int     `yaml:"max_attempts"`
	Clearance   float64 `yaml:"clearance"` // extra distance kept from live entities
}

// RunConfig holds per-run settings.
type RunConfig struct {
	StartGrace float64 `yaml:"start_grace"` // seconds the player is invincible after a (re)start
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string  `yaml:"type"`   // "score", "time", or "none"
	MaxAt float64 `yaml:"max_at"` // score or seconds at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	ItemIntervalReduction    float64 `yaml:"item_interval_reduction"`    // fraction of item interval removed at max level
	PowerupIntervalReduction float64 `yaml:"powerup_interval_reduction"` // fraction of pickup interval removed at max level
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
