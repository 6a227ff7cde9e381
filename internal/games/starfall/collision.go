package starfall

import (
	"github.com/vovakirdan/starfall/internal/config"
	"github.com/vovakirdan/starfall/internal/core"
)

// OverlapKind names the pair of groups an overlap came from.
type OverlapKind int

const (
	ShipAsteroid OverlapKind = iota
	BulletAsteroid
	ShipEnergy
	AsteroidAsteroid // A is the newer asteroid
	EnergyAsteroid
)

// String returns the overlap kind name.
func (k OverlapKind) String() string {
	switch k {
	case ShipAsteroid:
		return "ship-asteroid"
	case BulletAsteroid:
		return "bullet-asteroid"
	case ShipEnergy:
		return "ship-energy"
	case AsteroidAsteroid:
		return "asteroid-asteroid"
	case EnergyAsteroid:
		return "energy-asteroid"
	default:
		return "unknown"
	}
}

// Overlap is one pairwise intersection found during a tick.
// For ship overlaps only B is meaningful.
type Overlap struct {
	Kind OverlapKind
	A, B Handle
}

// Field is the read-only view a Detector inspects.
type Field struct {
	Ship      Ship
	Asteroids *Pool
	Bullets   *Pool
	Energy    *Pool
}

// Detector finds overlaps in a field and appends them to dst.
type Detector interface {
	Detect(f Field, dst []Overlap) []Overlap
}

// BoxDetector tests axis-aligned bounding boxes centered on each entity.
type BoxDetector struct {
	ShipW, ShipH     int
	AsteroidSize     int
	BulletW, BulletH int
	EnergySize       int
	Spread           bool // Also report asteroid and pickup overlaps with asteroids
}

// NewBoxDetector sizes a detector from config.
func NewBoxDetector(cfg config.StarfallConfig) *BoxDetector {
	return &BoxDetector{
		ShipW:        cfg.Ship.Width,
		ShipH:        cfg.Ship.Height,
		AsteroidSize: cfg.Asteroids.Size,
		BulletW:      cfg.Bullets.Width,
		BulletH:      cfg.Bullets.Height,
		EnergySize:   cfg.Energy.Size,
		Spread:       cfg.Asteroids.Spread,
	}
}

// Detect implements Detector.
func (d *BoxDetector) Detect(f Field, dst []Overlap) []Overlap {
	ship := core.RectAround(f.Ship.X, f.Ship.Y, d.ShipW, d.ShipH)

	f.Asteroids.Each(func(ah Handle, a *Entity) {
		rock := core.RectAround(a.X, a.Y, d.AsteroidSize, d.AsteroidSize)
		if ship.Intersects(rock) {
			dst = append(dst, Overlap{Kind: ShipAsteroid, B: ah})
		}
		f.Bullets.Each(func(bh Handle, b *Entity) {
			if core.RectAround(b.X, b.Y, d.BulletW, d.BulletH).Intersects(rock) {
				dst = append(dst, Overlap{Kind: BulletAsteroid, A: bh, B: ah})
			}
		})
	})

	f.Energy.Each(func(eh Handle, e *Entity) {
		if ship.Intersects(core.RectAround(e.X, e.Y, d.EnergySize, d.EnergySize)) {
			dst = append(dst, Overlap{Kind: ShipEnergy, B: eh})
		}
	})

	if d.Spread {
		dst = d.detectSpread(f, dst)
	}
	return dst
}

func (d *BoxDetector) detectSpread(f Field, dst []Overlap) []Overlap {
	for i := 0; i < f.Asteroids.Cap(); i++ {
		a := f.Asteroids.Get(Handle(i))
		if !a.Active {
			continue
		}
		ra := core.RectAround(a.X, a.Y, d.AsteroidSize, d.AsteroidSize)
		for j := i + 1; j < f.Asteroids.Cap(); j++ {
			b := f.Asteroids.Get(Handle(j))
			if !b.Active || !ra.Intersects(core.RectAround(b.X, b.Y, d.AsteroidSize, d.AsteroidSize)) {
				continue
			}
			// Everything falls at one speed, so the higher one entered later.
			newer, other := Handle(j), Handle(i)
			if a.Y < b.Y {
				newer, other = Handle(i), Handle(j)
			}
			dst = append(dst, Overlap{Kind: AsteroidAsteroid, A: newer, B: other})
		}
	}

	f.Energy.Each(func(eh Handle, e *Entity) {
		re := core.RectAround(e.X, e.Y, d.EnergySize, d.EnergySize)
		f.Asteroids.Each(func(ah Handle, a *Entity) {
			if re.Intersects(core.RectAround(a.X, a.Y, d.AsteroidSize, d.AsteroidSize)) {
				dst = append(dst, Overlap{Kind: EnergyAsteroid, A: eh, B: ah})
			}
		})
	})
	return dst
}

// resolve applies one overlap to the session. Overlaps naming an entity
// that is no longer active are ignored, so stale or repeated events are safe.
// Spread overlaps only move entities that are still above the visible field.
func (s *Session) resolve(o Overlap) {
	switch o.Kind {
	case ShipAsteroid:
		rock := s.asteroids.Get(o.B)
		if rock == nil || !rock.Active {
			return
		}
		s.asteroids.Release(o.B)
		s.emit(core.CueDamage)
		last := s.ship.damage()
		s.refreshStatus()
		if last {
			s.gameOver()
		}

	case BulletAsteroid:
		bullet, rock := s.bullets.Get(o.A), s.asteroids.Get(o.B)
		if bullet == nil || rock == nil || !bullet.Active || !rock.Active {
			return
		}
		s.bullets.Release(o.A)
		s.asteroids.Release(o.B)

	case ShipEnergy:
		pickup := s.energy.Get(o.B)
		if pickup == nil || !pickup.Active {
			return
		}
		s.energy.Release(o.B)
		s.emit(core.CuePickup)
		s.ship.Bullets += s.cfg.Energy.BulletsPerPickup
		s.refreshStatus()

	case AsteroidAsteroid:
		newer, other := s.asteroids.Get(o.A), s.asteroids.Get(o.B)
		if newer == nil || other == nil || !newer.Active || !other.Active || newer.Y >= 0 {
			return
		}
		s.spawner.RerollX(newer)

	case EnergyAsteroid:
		pickup, rock := s.energy.Get(o.A), s.asteroids.Get(o.B)
		if pickup == nil || rock == nil || !pickup.Active || !rock.Active || pickup.Y >= 0 {
			return
		}
		s.spawner.RerollX(pickup)
	}
}
