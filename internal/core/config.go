package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Phase    string // Phase name shown by the platform ("title", "playing", "game_over")
	Elapsed  int    // Seconds survived in the current or last run
	GameOver bool   // Whether the current run has just ended
	Paused   bool   // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and the cues raised during the tick.
type StepResult struct {
	State GameState
	Cues  []Cue
}

// Has reports whether the given cue was raised during the tick.
func (r StepResult) Has(c Cue) bool {
	for _, got := range r.Cues {
		if got == c {
			return true
		}
	}
	return false
}
