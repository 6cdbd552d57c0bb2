package core

// Gen produces values of type T from a random stream and a size hint.
// Size grows across trials (0..MaxSize) and controls the magnitude or
// complexity of produced values; size 0 biases toward degenerate values
// (empty strings and slices, nil pointers) so early counterexamples are
// naturally small.
//
// The second return is false when a draw was rejected, which happens
// only when a Filter exhausts its retry budget. The runner treats that
// as a discarded trial, never a failure.
//
// Gens are pure with respect to their inputs: the same stream state and
// size always yield the same value. Construction problems (empty
// Elements, inverted ChooseInt bounds) panic at combinator call time,
// before any trial runs; generation itself never fails.
type Gen[T any] func(r *Rand, size int) (T, bool)

// Const always generates the same value.
func Const[T any](value T) Gen[T] {
	return func(*Rand, int) (T, bool) {
		return value, true
	}
}

// Bool generates true or false with equal probability.
func Bool() Gen[bool] {
	return func(r *Rand, _ int) (bool, bool) {
		return r.Bool(), true
	}
}

// ChooseInt generates ints uniformly in the inclusive range [low, high].
// Panics if low > high.
func ChooseInt(low, high int) Gen[int] {
	if low > high {
		panic("proptest: ChooseInt low must not exceed high")
	}

	// A span of 0 means the range covers all 2^64 values and a raw draw
	// is already uniform over it.
	span := uint64(int64(high)) - uint64(int64(low)) + 1

	return func(r *Rand, _ int) (int, bool) {
		if span == 0 {
			return int(r.Uint64()), true
		}

		return low + int(r.Uint64n(span)), true
	}
}

// ChooseInt64 generates int64s uniformly in the inclusive range [low, high].
// Panics if low > high.
func ChooseInt64(low, high int64) Gen[int64] {
	if low > high {
		panic("proptest: ChooseInt64 low must not exceed high")
	}

	span := uint64(high) - uint64(low) + 1

	return func(r *Rand, _ int) (int64, bool) {
		if span == 0 {
			return int64(r.Uint64()), true
		}

		return low + int64(r.Uint64n(span)), true
	}
}

// Float64Range generates float64s in [low, high).
// Panics if low > high.
func Float64Range(low, high float64) Gen[float64] {
	if low > high {
		panic("proptest: Float64Range low must not exceed high")
	}

	return func(r *Rand, _ int) (float64, bool) {
		return low + r.Float64()*(high-low), true
	}
}

// Elements generates a uniformly chosen value from the given set.
// Panics if the set is empty.
func Elements[T any](values ...T) Gen[T] {
	if len(values) == 0 {
		panic("proptest: Elements called with no values")
	}

	return func(r *Rand, _ int) (T, bool) {
		return values[r.Intn(len(values))], true
	}
}

// OneOf delegates to a uniformly chosen generator.
// Panics if no generators are given.
func OneOf[T any](gens ...Gen[T]) Gen[T] {
	if len(gens) == 0 {
		panic("proptest: OneOf called with no generators")
	}

	return func(r *Rand, size int) (T, bool) {
		return gens[r.Intn(len(gens))](r, size)
	}
}

// Weighted delegates to a generator chosen with probability proportional
// to its weight. Zero-weight branches are never selected. Panics if the
// lists differ in length, are empty, contain a negative weight, or the
// weights sum to zero.
func Weighted[T any](weights []int, gens []Gen[T]) Gen[T] {
	if len(weights) != len(gens) {
		panic("proptest: Weighted weights and generators must have same length")
	}

	if len(gens) == 0 {
		panic("proptest: Weighted called with no generators")
	}

	total := 0

	for _, w := range weights {
		if w < 0 {
			panic("proptest: Weighted weight must not be negative")
		}

		total += w
	}

	if total == 0 {
		panic("proptest: Weighted weights must not all be zero")
	}

	return func(r *Rand, size int) (T, bool) {
		point := r.Intn(total)

		for i, w := range weights {
			if point < w {
				return gens[i](r, size)
			}

			point -= w
		}

		// Unreachable: point < total and the weights sum to total.
		return gens[len(gens)-1](r, size)
	}
}

// Map applies a pure transform to generated values.
// The transform must not draw from the random stream itself.
func Map[T, U any](g Gen[T], f func(T) U) Gen[U] {
	return func(r *Rand, size int) (U, bool) {
		value, ok := g(r, size)
		if !ok {
			var zero U
			return zero, false
		}

		return f(value), true
	}
}

// Bind generates a value, builds a dependent generator from it, and
// generates from that. Used for shapes where one draw constrains the
// next, like "a slice, then a valid index into it".
func Bind[T, U any](g Gen[T], f func(T) Gen[U]) Gen[U] {
	return func(r *Rand, size int) (U, bool) {
		value, ok := g(r, size)
		if !ok {
			var zero U
			return zero, false
		}

		return f(value)(r, size)
	}
}

// Filter regenerates until pred accepts the value, up to maxRetries
// times at the same size. Exhausting the budget rejects the draw, which
// the runner records as a discarded trial and replaces.
// Panics if maxRetries is not positive.
func Filter[T any](g Gen[T], pred func(T) bool, maxRetries int) Gen[T] {
	if maxRetries <= 0 {
		panic("proptest: Filter maxRetries must be positive")
	}

	return func(r *Rand, size int) (T, bool) {
		for range maxRetries {
			value, ok := g(r, size)
			if !ok {
				break
			}

			if pred(value) {
				return value, true
			}
		}

		var zero T

		return zero, false
	}
}

// Pair holds two independently generated values.
type Pair[A, B any] struct {
	First  A
	Second B
}

// PairOf generates both components of a Pair, each from its own split
// stream so neither component's draws perturb the other's sequence.
func PairOf[A, B any](genA Gen[A], genB Gen[B]) Gen[Pair[A, B]] {
	return func(r *Rand, size int) (Pair[A, B], bool) {
		first, ok := genA(r.Split(), size)
		if !ok {
			return Pair[A, B]{}, false
		}

		second, ok := genB(r.Split(), size)
		if !ok {
			return Pair[A, B]{}, false
		}

		return Pair[A, B]{First: first, Second: second}, true
	}
}

// Triple holds three independently generated values.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// TripleOf generates all three components of a Triple, each from its own
// split stream.
func TripleOf[A, B, C any](genA Gen[A], genB Gen[B], genC Gen[C]) Gen[Triple[A, B, C]] {
	return func(r *Rand, size int) (Triple[A, B, C], bool) {
		first, ok := genA(r.Split(), size)
		if !ok {
			return Triple[A, B, C]{}, false
		}

		second, ok := genB(r.Split(), size)
		if !ok {
			return Triple[A, B, C]{}, false
		}

		third, ok := genC(r.Split(), size)
		if !ok {
			return Triple[A, B, C]{}, false
		}

		return Triple[A, B, C]{First: first, Second: second, Third: third}, true
	}
}

// SliceOf generates a slice with length in [0, size].
func SliceOf[T any](elem Gen[T]) Gen[[]T] {
	return func(r *Rand, size int) ([]T, bool) {
		if size <= 0 {
			return []T{}, true
		}

		return generateSlice(r, size, r.Intn(size+1), elem)
	}
}

// SliceOfN generates a slice of exactly n elements.
// Panics if n is negative.
func SliceOfN[T any](n int, elem Gen[T]) Gen[[]T] {
	if n < 0 {
		panic("proptest: SliceOfN length must not be negative")
	}

	return func(r *Rand, size int) ([]T, bool) {
		return generateSlice(r, size, n, elem)
	}
}

func generateSlice[T any](r *Rand, size, length int, elem Gen[T]) ([]T, bool) {
	result := make([]T, 0, length)

	for range length {
		value, ok := elem(r, size)
		if !ok {
			return nil, false
		}

		result = append(result, value)
	}

	return result, true
}

// StringOf generates a string of runes from elem, with length in [0, size].
func StringOf(elem Gen[rune]) Gen[string] {
	runes := SliceOf(elem)

	return func(r *Rand, size int) (string, bool) {
		value, ok := runes(r, size)
		if !ok {
			return "", false
		}

		return string(value), true
	}
}

// AlphaChar generates a single ASCII letter.
func AlphaChar() Gen[rune] {
	return func(r *Rand, _ int) (rune, bool) {
		letters := int('z' - 'a' + 1)

		n := r.Intn(2 * letters)
		if n < letters {
			return 'a' + rune(n), true
		}

		return 'A' + rune(n-letters), true
	}
}

// AlphaString generates a string of ASCII letters with length in [0, size].
func AlphaString() Gen[string] {
	return StringOf(AlphaChar())
}

// PtrOf generates a pointer to a generated value, or nil.
// Size 0 always generates nil.
func PtrOf[T any](elem Gen[T]) Gen[*T] {
	return func(r *Rand, size int) (*T, bool) {
		if size <= 0 || r.Intn(5) == 0 {
			return nil, true
		}

		value, ok := elem(r, size)
		if !ok {
			return nil, false
		}

		return &value, true
	}
}
