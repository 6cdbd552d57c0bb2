package core_test

import (
	"testing"

	. "github.com/onsi/gomega"
	"github.com/toejough/proptest/internal/core"
	"pgregory.net/rapid"
)

// TestNewRand_SameSeed_SameSequence verifies that two streams built from
// the same seed produce identical draw sequences.
func TestNewRand_SameSeed_SameSequence(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	r1 := core.NewRand(12345)
	r2 := core.NewRand(12345)

	for range 1000 {
		g.Expect(r1.Uint64()).To(Equal(r2.Uint64()), "same seed should draw identically")
	}
}

// TestNewRand_DifferentSeeds_DifferentSequences verifies that distinct
// seeds diverge quickly.
func TestNewRand_DifferentSeeds_DifferentSequences(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	r1 := core.NewRand(1)
	r2 := core.NewRand(2)

	same := 0

	for range 100 {
		if r1.Uint64() == r2.Uint64() {
			same++
		}
	}

	g.Expect(same).To(BeNumerically("<", 5), "different seeds should not track each other")
}

// TestNewRand_ZeroSeed_DerivesFromTime verifies that seed 0 picks a real
// seed and echoes it back.
func TestNewRand_ZeroSeed_DerivesFromTime(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	r := core.NewRand(0)

	g.Expect(r.Seed()).NotTo(BeZero(), "effective seed should be derivable for reporting")
}

// TestRand_Seed_EchoesConstructionSeed verifies the seed accessor.
func TestRand_Seed_EchoesConstructionSeed(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	g.Expect(core.NewRand(987654321).Seed()).To(Equal(int64(987654321)))
}

// TestRand_Uint64n_StaysInBound_Property proves bounded draws never
// leave [0, bound), for arbitrary seeds and bounds.
func TestRand_Uint64n_StaysInBound_Property(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		seed := rapid.Int64().Draw(rt, "seed")
		bound := rapid.Uint64Range(1, 1<<62).Draw(rt, "bound")

		r := core.NewRand(seed)

		for range 100 {
			v := r.Uint64n(bound)
			if v >= bound {
				rt.Fatalf("Uint64n(%d) = %d, out of bound", bound, v)
			}
		}
	})
}

// TestRand_Uint64n_ZeroBound_Panics verifies bound misuse fails loudly.
func TestRand_Uint64n_ZeroBound_Panics(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	r := core.NewRand(1)

	g.Expect(func() { r.Uint64n(0) }).To(PanicWith("proptest: Uint64n bound must be positive"))
}

// TestRand_Intn_NonPositiveBound_Panics verifies bound misuse fails loudly.
func TestRand_Intn_NonPositiveBound_Panics(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	r := core.NewRand(1)

	g.Expect(func() { r.Intn(0) }).To(PanicWith("proptest: Intn bound must be positive"))
	g.Expect(func() { r.Intn(-5) }).To(PanicWith("proptest: Intn bound must be positive"))
}

// TestRand_Intn_SmallBound_CoversRange verifies every value in a small
// range shows up over many draws.
func TestRand_Intn_SmallBound_CoversRange(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	r := core.NewRand(42)
	seen := make(map[int]bool)

	for range 1000 {
		seen[r.Intn(5)] = true
	}

	g.Expect(seen).To(HaveLen(5), "all of [0,5) should appear in 1000 draws")
}

// TestRand_Float64_StaysInUnitInterval verifies the [0, 1) contract.
func TestRand_Float64_StaysInUnitInterval(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	r := core.NewRand(7)

	for range 1000 {
		v := r.Float64()
		g.Expect(v).To(And(BeNumerically(">=", 0.0), BeNumerically("<", 1.0)))
	}
}

// TestRand_Split_IsDeterministic verifies that splitting at the same
// point in two identical streams yields identical children.
func TestRand_Split_IsDeterministic(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	c1 := core.NewRand(55).Split()
	c2 := core.NewRand(55).Split()

	for range 100 {
		g.Expect(c1.Uint64()).To(Equal(c2.Uint64()))
	}
}

// TestRand_Split_ChildDrawsDoNotPerturbParent verifies that however much
// a child stream is consumed, the parent's subsequent draws are
// unchanged. This is what keeps tuple components independent.
func TestRand_Split_ChildDrawsDoNotPerturbParent(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	quiet := core.NewRand(99)
	quiet.Split()
	wantNext := quiet.Uint64()

	busy := core.NewRand(99)
	child := busy.Split()

	for range 1000 {
		child.Uint64()
	}

	g.Expect(busy.Uint64()).To(Equal(wantNext), "consuming a child should not move the parent")
}

// TestRand_Split_SiblingsDiverge verifies two splits from the same
// parent produce unrelated streams.
func TestRand_Split_SiblingsDiverge(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	parent := core.NewRand(3)
	first := parent.Split()
	second := parent.Split()

	same := 0

	for range 100 {
		if first.Uint64() == second.Uint64() {
			same++
		}
	}

	g.Expect(same).To(BeNumerically("<", 5), "sibling streams should not track each other")
}
