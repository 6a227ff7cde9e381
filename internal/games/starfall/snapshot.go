package starfall

// EntityView is one active entity as a renderer sees it.
type EntityView struct {
	Kind    Kind
	X, Y    float64
	Variant int
}

// Snapshot is a copy of everything a frontend draws or plays sounds for.
type Snapshot struct {
	Phase    Phase
	Paused   bool
	Status   string
	Message  string
	Clock    string
	Life     int
	Bullets  int
	ShipX    float64
	ShipY    float64
	Entities []EntityView
	Last     Record
	Best     Record
	NewBest  bool
	WorldW   int
	WorldH   int
}

// Snapshot copies the current session state. Entities are listed asteroids
// first, then pickups, then bullets.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:   s.phase,
		Paused:  s.paused,
		Status:  s.status,
		Message: s.message,
		Clock:   s.clock.String(),
		Life:    s.ship.Life,
		Bullets: s.ship.Bullets,
		ShipX:   s.ship.X,
		ShipY:   s.ship.Y,
		Last:    s.last,
		Best:    s.best,
		NewBest: s.newBest,
		WorldW:  s.cfg.World.Width,
		WorldH:  s.cfg.World.Height,
	}
	snap.Entities = make([]EntityView, 0, s.asteroids.Active()+s.energy.Active()+s.bullets.Active())
	for _, p := range []*Pool{s.asteroids, s.energy, s.bullets} {
		p.Each(func(_ Handle, e *Entity) {
			if !e.Visible {
				return
			}
			snap.Entities = append(snap.Entities, EntityView{Kind: p.Kind(), X: e.X, Y: e.Y, Variant: e.Variant})
		})
	}
	return snap
}
