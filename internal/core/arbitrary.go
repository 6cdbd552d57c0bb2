package core

// Arbitrary pairs a generator with the shrinker that stays inside the
// same value space. It is a stateless specification: build once, reuse
// across any number of properties.
type Arbitrary[T any] struct {
	Gen      Gen[T]
	Shrinker Shrinker[T]
}

// FromGen wraps a generator into an Arbitrary that does not shrink.
// Falsifying inputs are reported as generated.
func FromGen[T any](g Gen[T]) Arbitrary[T] {
	return Arbitrary[T]{Gen: g, Shrinker: NoShrinker[T]}
}

// IntRange is an Arbitrary for ints in the inclusive range [low, high].
// Shrinking moves toward the in-range value closest to zero and never
// proposes a value outside the range. Panics if low > high.
func IntRange(low, high int) Arbitrary[int] {
	return Arbitrary[int]{
		Gen:      ChooseInt(low, high),
		Shrinker: IntRangeShrinker(low, high),
	}
}

// Int64Range is an Arbitrary for int64s in the inclusive range [low, high].
// Panics if low > high.
func Int64Range(low, high int64) Arbitrary[int64] {
	return Arbitrary[int64]{
		Gen:      ChooseInt64(low, high),
		Shrinker: Int64RangeShrinker(low, high),
	}
}

// AnyBool is an Arbitrary for booleans; true shrinks to false.
func AnyBool() Arbitrary[bool] {
	return Arbitrary[bool]{Gen: Bool(), Shrinker: BoolShrinker}
}

// AnyAlphaString is an Arbitrary for ASCII-letter strings with length
// bounded by the size hint; shrinking drops characters, never rewrites
// them.
func AnyAlphaString() Arbitrary[string] {
	return Arbitrary[string]{Gen: AlphaString(), Shrinker: StringShrinker}
}

// AnyFloat64 is an Arbitrary for float64s in [low, high); shrinking
// halves toward zero.
func AnyFloat64(low, high float64) Arbitrary[float64] {
	return Arbitrary[float64]{
		Gen:      Float64Range(low, high),
		Shrinker: Float64Shrinker,
	}
}

// SliceArb is an Arbitrary for slices of another Arbitrary's values.
// Shrinking removes chunks of elements first, then shrinks elements in
// place with the element shrinker.
func SliceArb[T any](elem Arbitrary[T]) Arbitrary[[]T] {
	return Arbitrary[[]T]{
		Gen:      SliceOf(elem.Gen),
		Shrinker: SliceShrinker(elem.Shrinker),
	}
}

// MapArb transforms an Arbitrary with a pure mapping in both directions:
// to maps generated values outward, from maps candidates back so the
// underlying shrinker can keep narrowing in its own space.
func MapArb[T, U any](base Arbitrary[T], to func(T) U, from func(U) T) Arbitrary[U] {
	return Arbitrary[U]{
		Gen: Map(base.Gen, to),
		Shrinker: func(v U) Shrink[U] {
			return MapShrink(base.Shrinker(from(v)), to)
		},
	}
}

// FilterArb narrows an Arbitrary to values satisfying pred. Generation
// retries up to maxRetries per draw; shrink candidates that fail pred
// are skipped so shrinking never leaves the narrowed space.
func FilterArb[T any](base Arbitrary[T], pred func(T) bool, maxRetries int) Arbitrary[T] {
	return Arbitrary[T]{
		Gen: Filter(base.Gen, pred, maxRetries),
		Shrinker: func(v T) Shrink[T] {
			return base.Shrinker(v).Filter(pred)
		},
	}
}
