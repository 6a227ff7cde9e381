package starfall

import (
	"github.com/vovakirdan/starfall/internal/config"
	"github.com/vovakirdan/starfall/internal/core"
)

// Ship is the player-controlled craft at the bottom of the field.
type Ship struct {
	X, Y      float64 // Center position in world units
	VelocityX float64 // Units per second
	Life      int
	Bullets   int
}

// reset places the ship at its start position with full life and ammo.
func (s *Ship) reset(cfg config.StarfallConfig) {
	s.X = float64(cfg.World.Width) / 2
	s.Y = float64(cfg.World.Height - cfg.Ship.BottomOffset)
	s.VelocityX = 0
	s.Life = cfg.Ship.Lives
	s.Bullets = cfg.Ship.Bullets
}

// Steer sets the horizontal velocity from the held direction keys.
// Holding both or neither stops the ship.
func (s *Ship) Steer(left, right bool, speed float64) {
	switch {
	case left && !right:
		s.VelocityX = -speed
	case right && !left:
		s.VelocityX = speed
	default:
		s.VelocityX = 0
	}
}

// move applies velocity for one tick and keeps the hull inside the field.
func (s *Ship) move(dtSeconds float64, width, shipWidth int) {
	half := float64(shipWidth) / 2
	s.X = core.ClampF(s.X+s.VelocityX*dtSeconds, half, float64(width)-half)
}

// damage removes one life. Returns true when that was the last one.
func (s *Ship) damage() bool {
	if s.Life <= 0 {
		return false
	}
	s.Life--
	return s.Life == 0
}
