package starfall

import "github.com/vovakirdan/starfall/internal/config"

// Spawner decides what enters the field on each wave.
type Spawner struct {
	cfg  config.StarfallConfig
	rng  Random
	diff *config.DifficultyManager
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(cfg config.StarfallConfig, rng Random) *Spawner {
	return &Spawner{
		cfg:  cfg,
		rng:  rng,
		diff: config.NewDifficultyManager(cfg.Difficulty),
	}
}

// Wave populates the pools for one spawn interval and returns how many
// asteroids and pickups actually entered the field. Exhausted pools drop the
// request silently.
func (sp *Spawner) Wave(asteroids, energy *Pool, seconds int) (spawned int, pickup bool) {
	w := sp.cfg.World.Width
	maxPerWave := sp.diff.MaxPerWave(sp.cfg.Asteroids.MaxPerWave, seconds)

	n := sp.rng.Between(sp.cfg.Asteroids.MinPerWave, maxPerWave)
	for i := 0; i < n; i++ {
		h, ok := asteroids.Acquire()
		if !ok {
			continue
		}
		e := asteroids.Get(h)
		e.Y = sp.cfg.Asteroids.SpawnY
		e.X = float64(sp.rng.Between(0, w))
		e.Variant = sp.rng.Between(0, sp.cfg.Asteroids.Variants-1)
		spawned++
	}

	if sp.rng.Between(1, 100) <= sp.cfg.Energy.Probability {
		if h, ok := energy.Acquire(); ok {
			e := energy.Get(h)
			e.Y = sp.cfg.Asteroids.SpawnY
			e.X = float64(sp.rng.Between(0, w))
			pickup = true
		}
	}
	return spawned, pickup
}

// RerollX moves an entity to a new random column.
func (sp *Spawner) RerollX(e *Entity) {
	e.X = float64(sp.rng.Between(0, sp.cfg.World.Width))
}
