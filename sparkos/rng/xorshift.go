// Package rng provides the deterministic xorshift32 generator used by every
// stochastic subsystem of the benchmark scenes.
//
// A Source is owned by exactly one scene. It is not safe for concurrent use.
package rng

import "math"

// stuckReplacement is substituted whenever a step would land on the all-zero
// fixed point of xorshift.
const stuckReplacement = 0x1234567

// Source is a xorshift32 (13, 17, 5) bit generator.
type Source struct {
	state uint32
}

// New returns a Source seeded with seed. A zero seed is replaced by 1.
func New(seed uint32) *Source {
	s := &Source{}
	s.Seed(seed)
	return s
}

// Seed resets the generator state.
func (s *Source) Seed(seed uint32) {
	if s == nil {
		return
	}
	if seed == 0 {
		seed = 1
	}
	s.state = seed
}

// State returns the current internal state. It is never zero.
func (s *Source) State() uint32 {
	if s == nil {
		return 0
	}
	return s.state
}

// Next advances the generator and returns the new state.
func (s *Source) Next() uint32 {
	if s == nil {
		return 0
	}
	x := s.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	if x == 0 {
		x = stuckReplacement
	}
	s.state = x
	return x
}

// Float32 returns a uniform value in [0, 1).
//
// Only the top 24 bits are used so every result is exactly representable.
func (s *Source) Float32() float32 {
	return float32(s.Next()>>8) * (1.0 / (1 << 24))
}

// Range returns a uniform value in [min, max). If max <= min it returns min.
func (s *Source) Range(min, max float32) float32 {
	if max <= min {
		return min
	}
	v := min + (max-min)*s.Float32()
	if v >= max {
		v = math.Nextafter32(max, min)
	}
	return v
}

// Intn returns a uniform value in [0, n). It returns 0 for n <= 0.
func (s *Source) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(s.Next() % uint32(n))
}
