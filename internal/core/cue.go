package core

// Cue is a fire-and-forget notification raised by a game tick.
// Frontends turn cues into sounds or visual flashes; the simulation never
// waits for them to complete.
type Cue int

const (
	CueNone     Cue = iota
	CueFire         // A bullet left the ship
	CueDamage       // The ship was hit
	CuePickup       // An energy pickup was collected
	CueGameOver     // The run ended
	CueRunStart     // A new run started
)

// String returns a human-readable name for the cue.
func (c Cue) String() string {
	switch c {
	case CueFire:
		return "Fire"
	case CueDamage:
		return "Damage"
	case CuePickup:
		return "Pickup"
	case CueGameOver:
		return "GameOver"
	case CueRunStart:
		return "RunStart"
	default:
		return "None"
	}
}
