package core

import "sync"

// Registry is an explicit, passable table of default Arbitraries keyed
// by semantic type tag. It is a convenience for sharing composite
// Arbitraries across many properties, like a fixture; call sites can
// always bypass it with a locally constructed Arbitrary.
//
// Lookup is by explicit tag only, no structural inference. Registration
// is additive and override-friendly: a later Register for the same tag
// replaces the earlier entry.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]any
}

// NewRegistry creates a registry pre-seeded with common tags:
// "int" (full int range), "bool", and "string" (ASCII letters).
func NewRegistry() *Registry {
	r := &Registry{entries: make(map[string]any)}

	Register(r, "int", IntRange(minInt, maxInt))
	Register(r, "bool", AnyBool())
	Register(r, "string", AnyAlphaString())

	return r
}

const (
	maxInt = int(^uint(0) >> 1)
	minInt = -maxInt - 1
)

// Register stores arb under tag, replacing any earlier entry.
func Register[T any](r *Registry, tag string, arb Arbitrary[T]) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[tag] = arb
}

// Lookup returns the Arbitrary registered under tag.
// A missing tag, or an entry registered for a different type, reports
// false.
func Lookup[T any](r *Registry, tag string) (Arbitrary[T], bool) {
	r.mu.RLock()
	entry, ok := r.entries[tag]
	r.mu.RUnlock()

	if !ok {
		return Arbitrary[T]{}, false
	}

	arb, ok := entry.(Arbitrary[T])
	if !ok {
		return Arbitrary[T]{}, false
	}

	return arb, true
}

// GetOrCreateRegistry returns the Registry scoped to the given test,
// creating one if needed. Multiple calls with the same TestReporter
// return the same instance, so fixtures registered early in a test are
// visible to every property in it without any process-global state.
//
// If the TestReporter supports Cleanup (like *testing.T), the Registry
// is removed from the session table when the test completes.
func GetOrCreateRegistry(t TestReporter) *Registry {
	sessionMu.Lock()
	defer sessionMu.Unlock()

	if reg, ok := sessions[t]; ok {
		return reg
	}

	reg := NewRegistry()
	sessions[t] = reg

	// Register cleanup if the TestReporter supports it
	if cr, ok := t.(cleanupRegistrar); ok {
		cr.Cleanup(func() {
			sessionMu.Lock()
			delete(sessions, t)
			sessionMu.Unlock()
		})
	}

	return reg
}

// unexported variables.
var (
	//nolint:gochecknoglobals // Session table is intentional for per-test fixture scoping
	sessions = make(map[TestReporter]*Registry)
	//nolint:gochecknoglobals // Mutex for the session table
	sessionMu sync.Mutex
)

// cleanupRegistrar is the interface needed for registering cleanup functions.
// This is satisfied by *testing.T and *testing.B.
type cleanupRegistrar interface {
	Cleanup(cleanupFunc func())
}
