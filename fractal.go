package fractal

import (
	"fmt"
	"slices"
	"sync"
)

// Fractal describes one escape-time recurrence. Implementations must be
// immutable values: the engine hands them to concurrent workers and, in
// process mode, rebuilds them from their registered name on the far side.
type Fractal interface {
	// Name identifies the variant in the registry, in logs, and in the
	// handoff to worker processes.
	Name() string

	// Viewport returns the region of the complex plane the variant is
	// typically viewed in, x being the real axis and y the imaginary.
	// Params with zero ranges resolve to it.
	Viewport() (x, y Range)

	// Step advances one pixel by one round. z is the pixel's current
	// value and c the grid point the pixel was seeded from.
	Step(z, c complex128) complex128
}

// DecodeFunc rebuilds a variant from its encoded argument string. The
// string is empty for variants without parameters.
type DecodeFunc func(args string) (Fractal, error)

var (
	registryMu sync.RWMutex
	registry   = map[string]DecodeFunc{}
)

// Register makes a variant constructible by name, replacing any previous
// registration with the same name. Worker processes use the registry to
// rebuild the variant they were assigned.
func Register(name string, decode DecodeFunc) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = decode
}

// Lookup builds the named variant from its encoded arguments.
func Lookup(name, args string) (Fractal, error) {
	registryMu.RLock()
	decode := registry[name]
	registryMu.RUnlock()
	if decode == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
	}
	return decode(args)
}

// Variants returns the registered variant names, sorted.
func Variants() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// argser is implemented by variants whose parameters must survive the
// trip to a worker process.
type argser interface {
	Args() string
}

// encodeArgs returns the variant's argument string, empty when it carries
// no parameters.
func encodeArgs(f Fractal) string {
	if a, ok := f.(argser); ok {
		return a.Args()
	}
	return ""
}
