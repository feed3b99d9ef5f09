package utils

import (
	"math/rand/v2"
	"sync"
)

// LockedSource is a seedable random source safe for concurrent use.
// The lock is held only for the draw itself.
type LockedSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewLockedSource returns a source seeded with seed. A zero seed picks a random one.
func NewLockedSource(seed uint64) *LockedSource {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &LockedSource{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *LockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

func (s *LockedSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}

// IntRange returns a value in [min, max], both inclusive.
func (s *LockedSource) IntRange(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.IntN(max-min+1)
}
