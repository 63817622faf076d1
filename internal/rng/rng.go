// Package rng provides the seeded random source shared by level generation
// and the simulation. One Source per session keeps a run reproducible from
// its seed.
package rng

import "math/rand"

// Source draws integers from a seeded math/rand stream.
type Source struct {
	seed int64
	r    *rand.Rand
}

// New returns a Source seeded with seed.
func New(seed int64) *Source {
	return &Source{seed: seed, r: rand.New(rand.NewSource(seed))}
}

// Seed returns the seed the source was created with.
func (s *Source) Seed() int64 { return s.seed }

// Range returns a uniform integer in [min, max). It returns min when the
// range is empty.
func (s *Source) Range(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.r.Intn(max-min)
}
