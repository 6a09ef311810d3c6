// Package prng implements the Park-Miller-Carta minimal standard linear
// congruential generator (seed * 16807 mod 2^31-1). The generator is tiny,
// portable, and produces the same stream for the same seed on every
// platform, which is all the map pipeline needs: maps must be reproducible
// from a single int64 seed.
//
// See: http://www.firstpr.com.au/dsp/rand31/
package prng

import "math"

const (
	multiplier = 16807
	modulus    = 2147483647
)

// Rand is a deterministic pseudo-random stream. The zero value is not
// usable; construct one with New.
type Rand struct {
	seed int64
}

// New returns a generator for the given seed. Seeds are folded into the
// generator's valid range [1, 2147483646], so any int64 (including 0 and
// negative values) yields a working stream.
func New(seed int64) *Rand {
	s := seed % modulus
	if s < 0 {
		s += modulus
	}
	if s == 0 {
		// 0 is a fixed point of the recurrence.
		s = 1
	}
	return &Rand{seed: s}
}

func (r *Rand) gen() int64 {
	r.seed = (r.seed * multiplier) % modulus
	return r.seed
}

// NextInt returns the next raw value of the stream, in [1, 2147483646].
func (r *Rand) NextInt() int64 {
	return r.gen()
}

// NextDouble returns a float64 in (0, 1).
func (r *Rand) NextDouble() float64 {
	return float64(r.gen()) / modulus
}

// NextIntRange returns an integer in [lo, hi]. Both bounds are inclusive
// and get equal weight: the draw is taken from the widened interval
// (lo-0.4999, hi+0.4999) and rounded.
func (r *Rand) NextIntRange(lo, hi int) int {
	min := float64(lo) - .4999
	max := float64(hi) + .4999
	return int(math.Round(min + (max-min)*r.NextDouble()))
}

// NextDoubleRange returns a float64 in (lo, hi).
func (r *Rand) NextDoubleRange(lo, hi float64) float64 {
	return lo + (hi-lo)*r.NextDouble()
}
