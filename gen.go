package proptest

import (
	"github.com/toejough/proptest/internal/core"
)

// Generator combinators. Construction problems (empty Elements,
// inverted ChooseInt bounds, mismatched Weighted lists) panic at
// combinator call time, before any trial runs; generation itself never
// fails.

// Const always generates the same value.
func Const[T any](value T) Gen[T] {
	return core.Const(value)
}

// Bool generates true or false with equal probability.
func Bool() Gen[bool] {
	return core.Bool()
}

// ChooseInt generates ints uniformly in the inclusive range [low, high].
// Panics if low > high.
func ChooseInt(low, high int) Gen[int] {
	return core.ChooseInt(low, high)
}

// ChooseInt64 generates int64s uniformly in the inclusive range [low, high].
// Panics if low > high.
func ChooseInt64(low, high int64) Gen[int64] {
	return core.ChooseInt64(low, high)
}

// Float64Range generates float64s in [low, high). Panics if low > high.
func Float64Range(low, high float64) Gen[float64] {
	return core.Float64Range(low, high)
}

// Elements generates a uniformly chosen value from the given set.
// Panics if the set is empty.
func Elements[T any](values ...T) Gen[T] {
	return core.Elements(values...)
}

// OneOf delegates to a uniformly chosen generator.
// Panics if no generators are given.
func OneOf[T any](gens ...Gen[T]) Gen[T] {
	return core.OneOf(gens...)
}

// Weighted delegates to a generator chosen with probability proportional
// to its weight; zero-weight branches are never selected.
func Weighted[T any](weights []int, gens []Gen[T]) Gen[T] {
	return core.Weighted(weights, gens)
}

// Map applies a pure transform to generated values.
func Map[T, U any](g Gen[T], f func(T) U) Gen[U] {
	return core.Map(g, f)
}

// Bind generates a value, builds a dependent generator from it, and
// generates from that.
func Bind[T, U any](g Gen[T], f func(T) Gen[U]) Gen[U] {
	return core.Bind(g, f)
}

// Filter regenerates until pred accepts the value, up to maxRetries
// times per draw. Exhausting the budget discards the trial.
func Filter[T any](g Gen[T], pred func(T) bool, maxRetries int) Gen[T] {
	return core.Filter(g, pred, maxRetries)
}

// PairOf generates both components of a Pair, each from its own split
// stream.
func PairOf[A, B any](genA Gen[A], genB Gen[B]) Gen[Pair[A, B]] {
	return core.PairOf(genA, genB)
}

// TripleOf generates all three components of a Triple, each from its
// own split stream.
func TripleOf[A, B, C any](genA Gen[A], genB Gen[B], genC Gen[C]) Gen[Triple[A, B, C]] {
	return core.TripleOf(genA, genB, genC)
}

// SliceOf generates a slice with length in [0, size].
func SliceOf[T any](elem Gen[T]) Gen[[]T] {
	return core.SliceOf(elem)
}

// SliceOfN generates a slice of exactly n elements.
func SliceOfN[T any](n int, elem Gen[T]) Gen[[]T] {
	return core.SliceOfN(n, elem)
}

// StringOf generates a string of runes from elem, with length in [0, size].
func StringOf(elem Gen[rune]) Gen[string] {
	return core.StringOf(elem)
}

// AlphaChar generates a single ASCII letter.
func AlphaChar() Gen[rune] {
	return core.AlphaChar()
}

// AlphaString generates a string of ASCII letters with length in [0, size].
func AlphaString() Gen[string] {
	return core.AlphaString()
}

// PtrOf generates a pointer to a generated value, or nil; size 0 always
// generates nil.
func PtrOf[T any](elem Gen[T]) Gen[*T] {
	return core.PtrOf(elem)
}

// Shrinkers. Each proposes candidates in a fixed, deterministic order
// and never leaves the value space of the matching generator.

// NoShrinker never proposes any candidate.
func NoShrinker[T any](v T) Shrink[T] {
	return core.NoShrinker(v)
}

// IntShrinker shrinks an int toward zero: zero first, then candidates
// that halve the distance, each with its sign mirror.
func IntShrinker(v int) Shrink[int] {
	return core.IntShrinker(v)
}

// Int64Shrinker shrinks an int64 toward zero.
func Int64Shrinker(v int64) Shrink[int64] {
	return core.Int64Shrinker(v)
}

// BoolShrinker shrinks true to false.
func BoolShrinker(v bool) Shrink[bool] {
	return core.BoolShrinker(v)
}

// Float64Shrinker shrinks a float64 toward zero by halving.
func Float64Shrinker(v float64) Shrink[float64] {
	return core.Float64Shrinker(v)
}

// StringShrinker shrinks a string by dropping chunks of characters,
// largest first.
func StringShrinker(v string) Shrink[string] {
	return core.StringShrinker(v)
}

// SliceShrinker shrinks a slice by removing chunks, then shrinking
// elements in place with elem.
func SliceShrinker[T any](elem Shrinker[T]) Shrinker[[]T] {
	return core.SliceShrinker(elem)
}

// Arbitraries: generator/shrinker pairs ready for ForAll.

// FromGen wraps a generator into an Arbitrary that does not shrink.
func FromGen[T any](g Gen[T]) Arbitrary[T] {
	return core.FromGen(g)
}

// IntRange is an Arbitrary for ints in [low, high]; shrinking moves
// toward the in-range value closest to zero.
func IntRange(low, high int) Arbitrary[int] {
	return core.IntRange(low, high)
}

// Int64Range is an Arbitrary for int64s in [low, high].
func Int64Range(low, high int64) Arbitrary[int64] {
	return core.Int64Range(low, high)
}

// AnyBool is an Arbitrary for booleans; true shrinks to false.
func AnyBool() Arbitrary[bool] {
	return core.AnyBool()
}

// AnyAlphaString is an Arbitrary for ASCII-letter strings.
func AnyAlphaString() Arbitrary[string] {
	return core.AnyAlphaString()
}

// AnyFloat64 is an Arbitrary for float64s in [low, high).
func AnyFloat64(low, high float64) Arbitrary[float64] {
	return core.AnyFloat64(low, high)
}

// SliceArb is an Arbitrary for slices of another Arbitrary's values.
func SliceArb[T any](elem Arbitrary[T]) Arbitrary[[]T] {
	return core.SliceArb(elem)
}

// MapArb transforms an Arbitrary with a pure mapping in both directions,
// so shrinking can keep narrowing in the underlying space.
func MapArb[T, U any](base Arbitrary[T], to func(T) U, from func(U) T) Arbitrary[U] {
	return core.MapArb(base, to, from)
}

// FilterArb narrows an Arbitrary to values satisfying pred, for both
// generation and shrinking.
func FilterArb[T any](base Arbitrary[T], pred func(T) bool, maxRetries int) Arbitrary[T] {
	return core.FilterArb(base, pred, maxRetries)
}
