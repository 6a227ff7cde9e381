package starfall

import (
	"math/rand"
	"time"
)

// Random supplies the integers the spawner draws.
type Random interface {
	// Between returns a uniform integer in [min, max], inclusive.
	Between(min, max int) int
}

type randSource struct {
	r *rand.Rand
}

// NewRandom returns a seeded Random. A zero seed uses the current time.
func NewRandom(seed int64) Random {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &randSource{r: rand.New(rand.NewSource(seed))}
}

func (s *randSource) Between(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.r.Intn(max-min+1)
}
