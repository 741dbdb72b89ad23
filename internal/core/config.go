package core

// RuntimeConfig contains configuration passed to the simulation at initialization.
// The simulation uses this to size the board and for deterministic seeding.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Platform ticks per second (default 60)
	Seed     int64 // RNG seed for random fill
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

// GameState is the externally visible state of a simulation session.
type GameState struct {
	Generation int  // Generations advanced since the board was last cleared
	Population int  // Live cells on the board
	Running    bool // Whether the timed loop is advancing generations
	Eraser     bool // Whether pointer painting removes cells
}

// RunSummary describes a finished run, recorded once per run.
type RunSummary struct {
	Pattern           string
	Width             int
	Height            int
	Generations       int
	PeakPopulation    int
	InitialPopulation int
	EndReason         string // "extinct", "cleared" or "quit"
}

// StepResult is returned by Step() after each platform tick.
type StepResult struct {
	State    GameState
	Advanced bool        // A generation was computed this tick
	Finished *RunSummary // Non-nil on the tick a run ended
}
