package core

import (
	"fmt"
	"slices"
	"time"
)

// Config holds the knobs for one property run. The zero value means
// "all defaults"; any field left at zero is filled in by the runner.
type Config struct {
	// Trials is the number of counted generate-and-evaluate rounds
	// required for a pass. Default 100.
	Trials int
	// MaxSize caps the size hint passed to generators. The hint grows
	// one per counted trial until it reaches MaxSize. Default 100.
	MaxSize int
	// Seed makes the whole run (trials, failure, and shrink search)
	// reproducible. 0 derives a seed from the current time; the
	// effective seed is always echoed in the Outcome.
	Seed int64
	// ShrinkLimit bounds the number of predicate re-evaluations spent
	// shrinking a counterexample, guaranteeing termination even when a
	// shrinker converges slowly. Hitting the limit reports the best
	// value found so far, not an error. Default 1000.
	ShrinkLimit int
	// AttemptLimit bounds total generation attempts, counted and
	// discarded alike, so a near-impossible Filter cannot hang the run.
	// Exceeding it before Trials are counted reports Inconclusive.
	// Default 10x Trials.
	AttemptLimit int
	// Timeout is an overall deadline for the run; exceeded, the run
	// reports Inconclusive with partial counts. 0 means no deadline.
	Timeout time.Duration
}

func (c Config) withDefaults() Config {
	if c.Trials <= 0 {
		c.Trials = defaultTrials
	}

	if c.MaxSize <= 0 {
		c.MaxSize = defaultMaxSize
	}

	if c.ShrinkLimit <= 0 {
		c.ShrinkLimit = defaultShrinkLimit
	}

	if c.AttemptLimit <= 0 {
		c.AttemptLimit = c.Trials * defaultAttemptFactor
	}

	return c
}

const (
	defaultTrials        = 100
	defaultMaxSize       = 100
	defaultShrinkLimit   = 1000
	defaultAttemptFactor = 10
)

// Status classifies a property run.
type Status int

const (
	// Passed means every counted trial satisfied the predicate.
	Passed Status = iota
	// Falsified means some input failed the predicate; the Outcome
	// carries the original and shrunk counterexamples.
	Falsified
	// Inconclusive means the attempt ceiling or deadline was reached
	// before enough trials were counted. Distinct from both pass and
	// falsification so callers cannot mistake it for success.
	Inconclusive
)

func (s Status) String() string {
	switch s {
	case Passed:
		return "passed"
	case Falsified:
		return "falsified"
	case Inconclusive:
		return "inconclusive"
	default:
		return fmt.Sprintf("unknown status %d", int(s))
	}
}

// Outcome is the result of one property run, sufficient to reproduce it
// exactly: re-running with the same Seed walks the same trial sequence
// and the same shrink path.
type Outcome struct {
	Status   Status
	Trials   int
	Discards int
	Seed     int64
	// Original is the first falsifying input tuple, as generated.
	Original []any
	// Shrunk is the locally minimal falsifying tuple. The runner only
	// ever accepts a shrink candidate after re-running the predicate on
	// it, so Shrunk always reproduces the failure. Minimality is local:
	// no candidate proposed by the shrinkers from this value still
	// fails.
	Shrunk []any
	// ShrinkSteps is the number of accepted reductions between Original
	// and Shrunk.
	ShrinkSteps int
	// Err is the predicate's failure for the Shrunk input.
	Err error
}

// argSpec erases an Arbitrary's type so the runner can drive a tuple of
// differently typed arguments through one loop.
type argSpec struct {
	generate func(r *Rand, size int) (any, bool)
	shrink   func(v any) func() (any, bool)
}

func argOf[T any](arb Arbitrary[T]) argSpec {
	shrinker := arb.Shrinker
	if shrinker == nil {
		shrinker = NoShrinker[T]
	}

	return argSpec{
		generate: func(r *Rand, size int) (any, bool) {
			value, ok := arb.Gen(r, size)
			if !ok {
				return nil, false
			}

			return value, true
		},
		shrink: func(v any) func() (any, bool) {
			seq := shrinker(v.(T))

			return func() (any, bool) {
				candidate, ok := seq()
				if !ok {
					return nil, false
				}

				return candidate, true
			}
		},
	}
}

// ForAll runs the predicate against generated values of one Arbitrary.
// The predicate passes by returning nil; an error (or a panic, which is
// recovered and treated the same way) falsifies the trial and starts
// the shrink search.
func ForAll[A any](cfg Config, arbA Arbitrary[A], pred func(A) error) Outcome {
	return run(cfg, []argSpec{argOf(arbA)}, func(args []any) error {
		return pred(args[0].(A))
	})
}

// ForAll2 runs the predicate against generated pairs.
// Components are shrunk in sequence: the first to a local minimum
// holding the second fixed, then the second.
func ForAll2[A, B any](
	cfg Config,
	arbA Arbitrary[A],
	arbB Arbitrary[B],
	pred func(A, B) error,
) Outcome {
	return run(cfg, []argSpec{argOf(arbA), argOf(arbB)}, func(args []any) error {
		return pred(args[0].(A), args[1].(B))
	})
}

// ForAll3 runs the predicate against generated triples, shrinking
// components in sequence like ForAll2.
func ForAll3[A, B, C any](
	cfg Config,
	arbA Arbitrary[A],
	arbB Arbitrary[B],
	arbC Arbitrary[C],
	pred func(A, B, C) error,
) Outcome {
	return run(
		cfg,
		[]argSpec{argOf(arbA), argOf(arbB), argOf(arbC)},
		func(args []any) error {
			return pred(args[0].(A), args[1].(B), args[2].(C))
		},
	)
}

// run is the engine loop: generate, evaluate, and on failure shrink.
// A single seeded stream drives everything, so the run is reproducible
// from the seed alone.
func run(cfg Config, args []argSpec, eval func([]any) error) Outcome {
	cfg = cfg.withDefaults()

	r := NewRand(cfg.Seed)
	outcome := Outcome{Seed: r.Seed()}

	var deadline time.Time
	if cfg.Timeout > 0 {
		deadline = time.Now().Add(cfg.Timeout)
	}

	attempts := 0

	for outcome.Trials < cfg.Trials {
		if attempts >= cfg.AttemptLimit {
			outcome.Status = Inconclusive
			return outcome
		}

		if !deadline.IsZero() && time.Now().After(deadline) {
			outcome.Status = Inconclusive
			return outcome
		}

		attempts++

		size := min(cfg.MaxSize, outcome.Trials)

		values, ok := generateAll(r, size, args)
		if !ok {
			outcome.Discards++
			continue
		}

		err := safeEval(eval, values)
		if err == nil {
			outcome.Trials++
			continue
		}

		outcome.Status = Falsified
		outcome.Trials++
		outcome.Original = values
		outcome.Shrunk, outcome.ShrinkSteps, outcome.Err =
			shrinkTuple(cfg, args, values, eval, err)

		return outcome
	}

	outcome.Status = Passed

	return outcome
}

// generateAll draws one value per argument, each from its own split
// stream so an argument's draw count never perturbs its neighbors.
// Reports false if any argument's draw was rejected.
func generateAll(r *Rand, size int, args []argSpec) ([]any, bool) {
	values := make([]any, len(args))

	for i, arg := range args {
		value, ok := arg.generate(r.Split(), size)
		if !ok {
			return nil, false
		}

		values[i] = value
	}

	return values, true
}

// safeEval runs the predicate, converting a panic into a plain failure.
func safeEval(eval func([]any) error, values []any) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			//nolint:err113 // failure diagnostic carries the dynamic panic value
			err = fmt.Errorf("predicate panicked: %v", rec)
		}
	}()

	return eval(values)
}

// shrinkTuple searches for a locally minimal falsifying tuple.
// Components shrink in sequence; within a component, candidates are
// tried in the shrinker's fixed order and the first one that still
// fails becomes the new current value, restarting that component's
// search. Every candidate is re-verified against the full predicate
// before acceptance. The total number of re-evaluations is bounded by
// ShrinkLimit; hitting the bound returns the best tuple found so far.
func shrinkTuple(
	cfg Config,
	args []argSpec,
	original []any,
	eval func([]any) error,
	firstErr error,
) ([]any, int, error) {
	current := slices.Clone(original)
	lastErr := firstErr
	accepted := 0
	evals := 0

	for comp := range args {
		for evals < cfg.ShrinkLimit {
			improved := false
			seq := args[comp].shrink(current[comp])

			for evals < cfg.ShrinkLimit {
				candidate, ok := seq()
				if !ok {
					break
				}

				evals++

				trial := slices.Clone(current)
				trial[comp] = candidate

				err := safeEval(eval, trial)
				if err != nil {
					current = trial
					lastErr = err
					accepted++
					improved = true

					break
				}
			}

			if !improved {
				break
			}
		}
	}

	return current, accepted, lastErr
}
