// Package proptest provides property-based testing for Go: composable
// random value generators, automatic shrinking of failing inputs to
// minimal counterexamples, and seeded, fully reproducible runs.
//
// A property is a predicate that should hold for all inputs. The runner
// generates many random inputs, and when one falsifies the predicate it
// searches for a smaller input that still fails, so the report shows a
// minimal counterexample plus the seed that reproduces the exact run.
//
// Basic usage:
//
//	func TestAdditionCommutes(t *testing.T) {
//	    proptest.Check2(t, "addition commutes", proptest.Config{},
//	        proptest.IntRange(-1000, 1000),
//	        proptest.IntRange(-1000, 1000),
//	        func(a, b int) error {
//	            if a+b != b+a {
//	                return fmt.Errorf("%d+%d != %d+%d", a, b, b, a)
//	            }
//	            return nil
//	        })
//	}
//
// On failure the seed is part of the report; setting Config.Seed to it
// replays the identical trial sequence and shrink path.
//
// This is the public API entry point. Implementation lives in internal/core.
package proptest

import (
	"github.com/toejough/proptest/internal/core"
)

// Rand is a seeded, deterministic pseudo-random stream.
type Rand = core.Rand

// NewRand creates a new stream from the given seed.
// A seed of 0 derives one from the current time.
func NewRand(seed int64) *Rand {
	return core.NewRand(seed)
}

// Gen produces values of type T from a random stream and a size hint.
type Gen[T any] = core.Gen[T]

// Shrink is a lazy, finite sequence of smaller candidate values.
type Shrink[T any] = core.Shrink[T]

// Shrinker produces the shrink sequence for a failing value.
type Shrinker[T any] = core.Shrinker[T]

// Arbitrary pairs a generator with a matching shrinker.
type Arbitrary[T any] = core.Arbitrary[T]

// Pair holds two independently generated values.
type Pair[A, B any] = core.Pair[A, B]

// Triple holds three independently generated values.
type Triple[A, B, C any] = core.Triple[A, B, C]

// Config holds the knobs for one property run; the zero value means
// "all defaults" (100 trials, max size 100, time-derived seed).
type Config = core.Config

// Status classifies a property run: Passed, Falsified, or Inconclusive.
type Status = core.Status

// Status values.
const (
	Passed       = core.Passed
	Falsified    = core.Falsified
	Inconclusive = core.Inconclusive
)

// Outcome is the result of one property run, carrying everything needed
// to reproduce it: status, counts, seed, and on falsification the
// original and shrunk input tuples.
type Outcome = core.Outcome

// TestReporter is the minimal interface proptest needs from test
// frameworks. Satisfied by *testing.T and *testing.B.
type TestReporter = core.TestReporter

// ForAll runs the predicate against generated values of one Arbitrary
// and returns the outcome. The predicate passes by returning nil;
// returning an error (or panicking) falsifies the trial and starts the
// shrink search.
func ForAll[A any](cfg Config, arbA Arbitrary[A], pred func(A) error) Outcome {
	return core.ForAll(cfg, arbA, pred)
}

// ForAll2 runs the predicate against generated pairs. On falsification
// the components shrink in sequence: the first to a local minimum
// holding the second fixed, then the second.
func ForAll2[A, B any](
	cfg Config,
	arbA Arbitrary[A],
	arbB Arbitrary[B],
	pred func(A, B) error,
) Outcome {
	return core.ForAll2(cfg, arbA, arbB, pred)
}

// ForAll3 runs the predicate against generated triples.
func ForAll3[A, B, C any](
	cfg Config,
	arbA Arbitrary[A],
	arbB Arbitrary[B],
	arbC Arbitrary[C],
	pred func(A, B, C) error,
) Outcome {
	return core.ForAll3(cfg, arbA, arbB, arbC, pred)
}

// Report delivers an outcome to the host test runner: falsified and
// inconclusive runs fail through Fatalf with full reproduction detail.
func Report(t TestReporter, name string, o Outcome) {
	t.Helper()
	core.Report(t, name, o)
}

// Check runs a single-argument property and reports it against t.
func Check[A any](t TestReporter, name string, cfg Config, arbA Arbitrary[A], pred func(A) error) {
	t.Helper()
	core.Report(t, name, core.ForAll(cfg, arbA, pred))
}

// Check2 runs a two-argument property and reports it against t.
func Check2[A, B any](
	t TestReporter,
	name string,
	cfg Config,
	arbA Arbitrary[A],
	arbB Arbitrary[B],
	pred func(A, B) error,
) {
	t.Helper()
	core.Report(t, name, core.ForAll2(cfg, arbA, arbB, pred))
}

// Check3 runs a three-argument property and reports it against t.
func Check3[A, B, C any](
	t TestReporter,
	name string,
	cfg Config,
	arbA Arbitrary[A],
	arbB Arbitrary[B],
	arbC Arbitrary[C],
	pred func(A, B, C) error,
) {
	t.Helper()
	core.Report(t, name, core.ForAll3(cfg, arbA, arbB, arbC, pred))
}
