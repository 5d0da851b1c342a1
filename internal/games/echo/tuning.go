package echo

import (
	"math"

	"github.com/vovakirdan/echo-arena/internal/config"
)

// Tuning is the configuration converted to simulation units: every
// duration is a tick count at the run's tick rate and speeds are per tick.
type Tuning struct {
	TickRate int

	ArenaW, ArenaH float64

	PlayerRadius float64
	ShrinkRadius float64
	PlayerStep   float64 // world units moved per tick

	EchoRadius   float64
	EchoInterval int // ticks between echo spawns
	EchoGrace    int // playback ticks before an echo becomes harmful
	KillBonus    int

	ItemRadius  float64
	ItemPoints  int
	ItemMin     int
	ItemMax     int
	ItemMaxLive int
	ItemMargin  float64

	PickupRadius    float64
	PowerupDuration int
	PickupMin       int
	PickupMax       int
	PickupMaxLive   int
	PickupMargin    float64
	Weights         [kindCount]int

	MaxAttempts int
	Clearance   float64

	StartGrace int // ticks of invincibility at run start

	Difficulty config.DifficultyConfig
}

// NewTuning converts cfg to tick units at tickRate.
func NewTuning(cfg config.EchoConfig, tickRate int) Tuning {
	if tickRate <= 0 {
		tickRate = 60
	}
	return Tuning{
		TickRate: tickRate,

		ArenaW: cfg.Arena.Width,
		ArenaH: cfg.Arena.Height,

		PlayerRadius: cfg.Player.Radius,
		ShrinkRadius: cfg.Player.ShrinkRadius,
		PlayerStep:   cfg.Player.Speed / float64(tickRate),

		EchoRadius:   cfg.Echoes.Radius,
		EchoInterval: ticks(cfg.Echoes.Interval, tickRate),
		EchoGrace:    ticksOrZero(cfg.Echoes.Grace, tickRate),
		KillBonus:    cfg.Echoes.KillBonus,

		ItemRadius:  cfg.Items.Radius,
		ItemPoints:  cfg.Items.Points,
		ItemMin:     ticks(cfg.Items.MinInterval, tickRate),
		ItemMax:     ticks(cfg.Items.MaxInterval, tickRate),
		ItemMaxLive: cfg.Items.MaxLive,
		ItemMargin:  cfg.Items.Margin,

		PickupRadius:    cfg.Powerups.Radius,
		PowerupDuration: ticks(cfg.Powerups.Duration, tickRate),
		PickupMin:       ticks(cfg.Powerups.MinInterval, tickRate),
		PickupMax:       ticks(cfg.Powerups.MaxInterval, tickRate),
		PickupMaxLive:   cfg.Powerups.MaxLive,
		PickupMargin:    cfg.Powerups.Margin,
		Weights: [kindCount]int{
			KindGhostEater: cfg.Powerups.Weights.GhostEater,
			KindTimeFreeze: cfg.Powerups.Weights.TimeFreeze,
			KindShrink:     cfg.Powerups.Weights.Shrink,
		},

		MaxAttempts: max(1, cfg.Spawn.MaxAttempts),
		Clearance:   cfg.Spawn.Clearance,

		StartGrace: ticksOrZero(cfg.Run.StartGrace, tickRate),

		Difficulty: cfg.Difficulty,
	}
}

// Seconds converts a tick count to seconds.
func (t Tuning) Seconds(n uint64) float64 {
	return float64(n) / float64(t.TickRate)
}

// ticks rounds seconds to a tick count of at least one.
func ticks(seconds float64, rate int) int {
	return max(1, ticksOrZero(seconds, rate))
}

func ticksOrZero(seconds float64, rate int) int {
	return max(0, int(math.Round(seconds*float64(rate))))
}
