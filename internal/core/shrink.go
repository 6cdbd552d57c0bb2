package core

// Shrink is a lazy, finite sequence of "smaller" candidate values.
// Each call returns the next candidate and true, or the zero value and
// false once the sequence is exhausted.
type Shrink[T any] func() (T, bool)

// All collects the remaining candidates into a slice.
// Mostly useful for tests and diagnostics; the engine itself walks
// sequences lazily.
func (s Shrink[T]) All() []T {
	result := []T{}

	for value, ok := s(); ok; value, ok = s() {
		result = append(result, value)
	}

	return result
}

// Filter returns a sequence of only the candidates satisfying pred.
// A nil pred passes everything through.
func (s Shrink[T]) Filter(pred func(T) bool) Shrink[T] {
	if pred == nil {
		return s
	}

	return func() (T, bool) {
		for {
			value, ok := s()
			if !ok {
				var zero T
				return zero, false
			}

			if pred(value) {
				return value, true
			}
		}
	}
}

// MapShrink transforms each candidate in a sequence.
func MapShrink[T, U any](s Shrink[T], f func(T) U) Shrink[U] {
	return func() (U, bool) {
		value, ok := s()
		if !ok {
			var zero U
			return zero, false
		}

		return f(value), true
	}
}

// ConcatShrinks chains sequences one after another.
func ConcatShrinks[T any](shrinks ...Shrink[T]) Shrink[T] {
	return func() (T, bool) {
		for len(shrinks) > 0 {
			value, ok := shrinks[0]()
			if ok {
				return value, true
			}

			shrinks = shrinks[1:]
		}

		var zero T

		return zero, false
	}
}

// NoShrink returns an empty sequence.
func NoShrink[T any]() Shrink[T] {
	return func() (T, bool) {
		var zero T
		return zero, false
	}
}

// Shrinker produces the shrink sequence for a failing value.
// Candidates must stay inside the value space the original was drawn
// from, and must come out in a fixed order so that repeated runs with
// the same seed walk the same shrink path.
type Shrinker[T any] func(T) Shrink[T]

// NoShrinker is a Shrinker that never proposes any candidate.
func NoShrinker[T any](T) Shrink[T] {
	return NoShrink[T]()
}

// Int64Shrinker shrinks an int64 toward zero.
// Zero itself comes first, then candidates that halve the distance to
// zero, each followed by its sign mirror: 10 shrinks to
// 0, 5, -5, 8, -8, 9, -9.
func Int64Shrinker(v int64) Shrink[int64] {
	if v == 0 {
		return NoShrink[int64]()
	}

	emittedZero := false
	half := v / 2
	var mirror int64
	haveMirror := false

	return func() (int64, bool) {
		if !emittedZero {
			emittedZero = true
			return 0, true
		}

		if haveMirror {
			haveMirror = false
			return mirror, true
		}

		if half == 0 {
			return 0, false
		}

		candidate := v - half
		half /= 2

		if candidate != 0 {
			mirror = -candidate
			haveMirror = true
		}

		return candidate, true
	}
}

// IntShrinker shrinks an int toward zero with Int64Shrinker's ordering.
func IntShrinker(v int) Shrink[int] {
	return MapShrink(Int64Shrinker(int64(v)), func(v int64) int { return int(v) })
}

// Int64RangeShrinker shrinks toward zero while keeping every candidate
// inside [low, high], so values drawn from a bounded range never shrink
// outside it. When zero is outside the range, candidates move toward the
// bound nearest zero instead.
func Int64RangeShrinker(low, high int64) Shrinker[int64] {
	// The in-range value closest to zero is the shrink target.
	target := int64(0)
	if low > 0 {
		target = low
	} else if high < 0 {
		target = high
	}

	return func(v int64) Shrink[int64] {
		shifted := Int64Shrinker(v - target)

		return MapShrink(shifted, func(c int64) int64 { return c + target }).
			Filter(func(c int64) bool { return c >= low && c <= high })
	}
}

// IntRangeShrinker is Int64RangeShrinker for int values.
func IntRangeShrinker(low, high int) Shrinker[int] {
	inner := Int64RangeShrinker(int64(low), int64(high))

	return func(v int) Shrink[int] {
		return MapShrink(inner(int64(v)), func(c int64) int { return int(c) })
	}
}

// BoolShrinker shrinks true to false; false is already minimal.
func BoolShrinker(v bool) Shrink[bool] {
	if !v {
		return NoShrink[bool]()
	}

	done := false

	return func() (bool, bool) {
		if done {
			return false, false
		}

		done = true

		return false, true
	}
}

// Float64Shrinker shrinks a float64 toward zero by halving.
// The sequence is truncated once candidates stop making visible
// progress, so it is always finite.
func Float64Shrinker(v float64) Shrink[float64] {
	if v == 0 {
		return NoShrink[float64]()
	}

	emittedZero := false
	current := v

	return func() (float64, bool) {
		if !emittedZero {
			emittedZero = true
			return 0, true
		}

		current /= 2
		if current == v || !(current > 1e-9 || current < -1e-9) {
			return 0, false
		}

		candidate := v - current

		return candidate, true
	}
}

// SliceShrinker shrinks a slice by removing chunks, then by shrinking
// individual elements in place. Chunk removals try big reductions first:
// chunks of half the length down to single elements. Element shrinks run
// one index at a time holding the rest fixed.
func SliceShrinker[T any](elem Shrinker[T]) Shrinker[[]T] {
	one := SliceShrinkerOne(elem)

	return func(v []T) Shrink[[]T] {
		return ConcatShrinks(sliceRemovals(v), one(v))
	}
}

// SliceShrinkerOne shrinks slice elements in place without changing the
// length: each element's candidates are tried in order, one index at a
// time, holding all other elements fixed.
func SliceShrinkerOne[T any](elem Shrinker[T]) Shrinker[[]T] {
	return func(v []T) Shrink[[]T] {
		index := 0
		var current Shrink[T]

		return func() ([]T, bool) {
			for {
				if current == nil {
					if index >= len(v) {
						return nil, false
					}

					current = elem(v[index])
				}

				candidate, ok := current()
				if !ok {
					current = nil
					index++

					continue
				}

				shrunk := make([]T, len(v))
				copy(shrunk, v)
				shrunk[index] = candidate

				return shrunk, true
			}
		}
	}
}

// sliceRemovals proposes copies of v with a contiguous chunk removed,
// largest chunks first. A single-element slice has no removals; the
// empty slice is reached by removing the last element of a pair.
func sliceRemovals[T any](v []T) Shrink[[]T] {
	chunk := len(v) / 2
	offset := 0

	return func() ([]T, bool) {
		for chunk >= 1 {
			if offset+chunk <= len(v) {
				shrunk := make([]T, 0, len(v)-chunk)
				shrunk = append(shrunk, v[:offset]...)
				shrunk = append(shrunk, v[offset+chunk:]...)
				offset += chunk

				return shrunk, true
			}

			chunk /= 2
			offset = 0
		}

		return nil, false
	}
}

// StringShrinker shrinks a string like a rune slice: dropping chunks of
// characters, largest first. Individual runes are not shrunk.
func StringShrinker(v string) Shrink[string] {
	runes := []rune(v)

	return MapShrink(sliceRemovals(runes), func(rs []rune) string { return string(rs) })
}
