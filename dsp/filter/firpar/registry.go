package firpar

import (
	"sync"

	"github.com/cwbudde/algo-firpar/internal/cpu"
)

// Entry is one registered dot-product engine.
type Entry struct {
	Name     string
	Variant  Variant
	Priority int
	// Generic entries stay selectable when specialized kernels are disabled.
	Generic bool
	// Accepts reports whether the engine can run nCoeffs taps.
	Accepts func(nCoeffs int) bool

	compute computeFn
}

// registry stores engines ordered by priority, highest first.
type registry struct {
	mu      sync.RWMutex
	entries []Entry
}

var global = &registry{}

func init() {
	global.Register(Entry{
		Name:     "scalar",
		Variant:  VariantScalar,
		Priority: 0,
		Generic:  true,
		Accepts:  func(n int) bool { return n >= 1 },
		compute:  computeScalar,
	})
	global.Register(Entry{
		Name:     "paired",
		Variant:  VariantPaired,
		Priority: 10,
		Accepts:  func(n int) bool { return n >= 2 && n%2 == 0 },
		compute:  computePaired,
	})
	global.Register(Entry{
		Name:     "taps10",
		Variant:  Variant10Taps,
		Priority: 20,
		Accepts:  func(n int) bool { return n == 10 },
		compute:  computeFixed[[10]int16],
	})
	global.Register(Entry{
		Name:     "taps20",
		Variant:  Variant20Taps,
		Priority: 20,
		Accepts:  func(n int) bool { return n == 20 },
		compute:  computeFixed[[20]int16],
	})
}

// Register adds an engine. Engines of equal priority keep registration order.
func (r *registry) Register(e Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, e)
	r.sortByPriority()
}

// Lookup returns the highest-priority engine that accepts nCoeffs, or nil.
// With forceGeneric only generic engines are considered.
func (r *registry) Lookup(nCoeffs int, forceGeneric bool) *Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		e := &r.entries[i]
		if forceGeneric && !e.Generic {
			continue
		}
		if e.Accepts(nCoeffs) {
			return e
		}
	}
	return nil
}

// ByVariant returns the engine registered for v, or nil.
func (r *registry) ByVariant(v Variant) *Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		if r.entries[i].Variant == v {
			return &r.entries[i]
		}
	}
	return nil
}

// List returns a copy of the entries for tests and diagnostics.
func (r *registry) List() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// stable insertion sort, highest priority first
func (r *registry) sortByPriority() {
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// Lookup returns the engine the default registry selects for nCoeffs on this
// host. Setting FIRPAR_FORCE_GENERIC restricts it to the scalar reference.
func Lookup(nCoeffs int) *Entry {
	return global.Lookup(nCoeffs, cpu.DetectFeatures().ForceGeneric)
}

// Engines lists the engines of the default registry.
func Engines() []Entry {
	return global.List()
}
