package proptest

import (
	"github.com/toejough/proptest/internal/core"
)

// Registry is an explicit, passable table of default Arbitraries keyed
// by semantic type tag. Composite Arbitraries (say, "a currency
// amount") can be registered once and reused across many properties
// without re-specifying ranges at each call site.
type Registry = core.Registry

// NewRegistry creates a registry pre-seeded with common tags:
// "int", "bool", and "string".
func NewRegistry() *Registry {
	return core.NewRegistry()
}

// Register stores arb under tag, replacing any earlier entry.
func Register[T any](r *Registry, tag string, arb Arbitrary[T]) {
	core.Register(r, tag, arb)
}

// Lookup returns the Arbitrary registered under tag. A missing tag, or
// an entry registered for a different type, reports false.
func Lookup[T any](r *Registry, tag string) (Arbitrary[T], bool) {
	return core.Lookup[T](r, tag)
}

// GetOrCreateRegistry returns the Registry scoped to the given test,
// creating one if needed. Multiple calls with the same TestReporter
// return the same instance, so fixtures registered early in a test are
// visible to every property in it. Registries are evicted when the test
// completes, keeping tests isolated and parallel-safe.
func GetOrCreateRegistry(t TestReporter) *Registry {
	return core.GetOrCreateRegistry(t)
}
