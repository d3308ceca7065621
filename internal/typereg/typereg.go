// Package typereg is the process-wide, append-only registry of heap
// object type descriptors. It sits below internal/heap in the core's
// dependency order: a heap never constructs an object without first
// resolving its TypeID here, and the collector drives every relocation
// and fixup through the Descriptor a TypeID resolves to.
package typereg

import (
	"fmt"
	"sync"

	"fortio.org/safecast"
)

// TypeID indexes into the registry. Two indices are reserved by the
// heap itself rather than by any registered type: Unallocated marks a
// header whose object has been reserved but not yet constructed, and
// Forwarded marks a header that has already been relocated during a
// collection in progress.
type TypeID uint32

const (
	Unallocated TypeID = 0
	Forwarded   TypeID = 1
)

// Fixer is the collector's callback surface, handed to a Descriptor's
// Fixup function so it can resolve positions the object embeds. Fixup
// either follows an existing forwarding header or moves the referenced
// object immediately (if it has not been visited yet) and returns its
// new position.
type Fixer interface {
	Fixup(pos uint32) uint32
}

// Descriptor is the per-type record a heap consults on allocation,
// collection, and teardown. Move is required; Destroy, Fixup, and
// Convertible are optional and default to no-ops / identity.
type Descriptor struct {
	// Name identifies the type in debug output.
	Name string

	// Move relocates one object's slots from src into dst, both of
	// the object's data length (the collector derives that length
	// from the object's header, not from this descriptor). It
	// performs whatever is in a plain memcpy's place type-specific:
	// for trivially relocatable types this is exactly copy(dst, src).
	Move func(dst, src []uint64)

	// Fixup runs once per object in the companion arena after Move,
	// rewriting any embedded position it owns via fx.Fixup. Nil for
	// types that embed no positions.
	Fixup func(fx Fixer, obj []uint64)

	// Destroy releases resources a live object holds outside the slot
	// array itself. Nil for trivially destructible types.
	Destroy func(obj []uint64)

	// Convertible reports whether a handle of this type may be
	// downcast to target. Defaults to identity (only convertible to
	// itself) if left nil at registration.
	Convertible func(target TypeID) bool
}

// Registry is a process-wide, append-only sequence of Descriptors.
// Registration order determines TypeID assignment; once assigned, a
// TypeID is stable for the process lifetime, matching the requirement
// that headers can carry a type index indefinitely.
type Registry struct {
	mu    sync.Mutex
	descs []Descriptor
}

// NewRegistry constructs a Registry with the two reserved indices
// pre-populated so real registrations start at index 2.
func NewRegistry() *Registry {
	r := &Registry{}
	r.descs = append(r.descs, Descriptor{Name: "<unallocated>"})
	r.descs = append(r.descs, Descriptor{Name: "<forwarded>"})
	return r
}

// Register appends d and returns its newly assigned TypeID.
func (r *Registry) Register(d Descriptor) TypeID {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, err := safecast.Conv[uint32](len(r.descs))
	if err != nil {
		panic(fmt.Errorf("typereg: registry overflow: %w", err))
	}
	self := TypeID(id)
	if d.Convertible == nil {
		d.Convertible = func(target TypeID) bool { return target == self }
	}
	r.descs = append(r.descs, d)
	return self
}

// Get returns the Descriptor registered under id. It panics on an
// out-of-range id: an invalid TypeID reaching here is an internal
// invariant violation, not a recoverable condition.
func (r *Registry) Get(id TypeID) Descriptor {
	r.mu.Lock()
	defer r.mu.Unlock()
	if int(id) >= len(r.descs) {
		panic(fmt.Errorf("typereg: type index %d out of range", id))
	}
	return r.descs[id]
}

// Name is a convenience accessor used by debug dumps.
func (r *Registry) Name(id TypeID) string {
	return r.Get(id).Name
}

var global = NewRegistry()

// Global returns the single process-wide registry. Built-in heap
// object kinds and any embedder-defined types share it.
func Global() *Registry { return global }
