package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int    // Current score
	Best     int    // Best score of the session
	Run      int    // 1-based run number within the session
	GameOver bool   // Whether the current run has ended
	Cause    string // Why the run ended, empty while playing
}

// Event is a notable simulation occurrence, reported to the platform for
// logging. Attrs holds alternating key/value pairs.
type Event struct {
	Name  string
	Tick  uint64
	Attrs []any
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event

	// Err is set when the simulation cannot continue, such as a history read out of range.
	// The run cannot continue and the platform should stop.
	Err error
}
