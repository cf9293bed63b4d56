// Package entropy provides the seeded randomness source used by the
// simulation. All stochastic decisions (random movement, communication
// draws, terrain generation) must draw from a Source so that a run is
// exactly reproducible given its seed. Nothing in the core may touch
// the global math/rand state.
package entropy

import "math/rand"

// Source is a deterministic random source derived from a single seed.
type Source struct {
	seed int64
	rng  *rand.Rand
}

// NewSource creates a Source for the given seed.
func NewSource(seed int64) *Source {
	return &Source{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Seed returns the seed this Source was created with.
func (s *Source) Seed() int64 {
	return s.seed
}

// Derive returns an independent Source for a subsystem, offset from the
// parent seed. Subsystems that draw at different rates (terrain
// generation vs. per-tick bee decisions) get their own stream so adding
// draws in one does not perturb the other.
func (s *Source) Derive(offset int64) *Source {
	return NewSource(s.seed + offset)
}

// Float returns a float64 in [0, 1).
func (s *Source) Float() float64 {
	return s.rng.Float64()
}

// Intn returns an int in [0, n). Panics if n <= 0, matching math/rand.
func (s *Source) Intn(n int) int {
	return s.rng.Intn(n)
}

// Int63 returns a non-negative int64.
func (s *Source) Int63() int64 {
	return s.rng.Int63()
}
