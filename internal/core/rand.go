package core

import (
	"math/bits"
	"time"
)

// Rand is a seeded, deterministic pseudo-random stream (splitmix64).
// The same seed and the same sequence of calls always produce the same
// outputs, which is what makes failing runs reproducible.
//
// A Rand is not safe for concurrent use. Each goroutine that needs
// randomness should own its own stream, obtained via Split.
type Rand struct {
	state uint64
	seed  int64
}

// NewRand creates a new stream from the given seed.
// A seed of 0 means "derive from the current time"; the effective seed is
// always available via Seed so it can be echoed back in reports.
func NewRand(seed int64) *Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Rand{state: uint64(seed), seed: seed}
}

// Seed returns the effective seed this stream was created from.
func (r *Rand) Seed() int64 {
	return r.seed
}

// Uint64 advances the stream and returns the next pseudo-random uint64.
func (r *Rand) Uint64() uint64 {
	r.state += 0x9e3779b97f4a7c15
	z := r.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb

	return z ^ (z >> 31)
}

// Uint64n returns a uniformly distributed value in [0, bound).
// Panics if bound is 0.
//
// Uses Lemire's multiply-shift reduction, see
// https://lemire.me/blog/2016/06/27/a-fast-alternative-to-the-modulo-reduction
func (r *Rand) Uint64n(bound uint64) uint64 {
	if bound == 0 {
		panic("proptest: Uint64n bound must be positive")
	}

	hi, lo := bits.Mul64(r.Uint64(), bound)
	if lo < bound {
		thresh := -bound % bound
		for lo < thresh {
			hi, lo = bits.Mul64(r.Uint64(), bound)
		}
	}

	return hi
}

// Intn returns a uniformly distributed int in [0, n).
// Panics if n <= 0.
func (r *Rand) Intn(n int) int {
	if n <= 0 {
		panic("proptest: Intn bound must be positive")
	}

	return int(r.Uint64n(uint64(n)))
}

// Int63n returns a uniformly distributed int64 in [0, n).
// Panics if n <= 0.
func (r *Rand) Int63n(n int64) int64 {
	if n <= 0 {
		panic("proptest: Int63n bound must be positive")
	}

	return int64(r.Uint64n(uint64(n)))
}

// Float64 returns a pseudo-random float64 in [0.0, 1.0).
func (r *Rand) Float64() float64 {
	return float64(r.Uint64()>>11) / (1 << 53)
}

// Bool returns a pseudo-random boolean.
func (r *Rand) Bool() bool {
	return r.Uint64()&1 == 1
}

// Split consumes one draw from r and returns an independent child stream
// seeded by it. Composed generators each draw from their own split stream,
// so generating one component never perturbs another component's sequence.
func (r *Rand) Split() *Rand {
	child := int64(r.Uint64())
	if child == 0 {
		child = 1
	}

	return &Rand{state: uint64(child), seed: child}
}
