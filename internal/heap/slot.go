// Package heap implements the core's relocating, precise, copying
// garbage-collected arena: a flat array of fixed-width slots, typed
// handles into it, and a semispace collector that compacts live data
// into a fresh arena on demand.
package heap

import "github.com/lineCode/mjs-1/internal/typereg"

// Slot is the heap's fixed-width storage unit.
type Slot = uint64

// Pos indexes a slot within a heap's arena. Pos 0 never denotes a live
// object: allocation begins at slot 1, leaving 0 free as a sentinel for
// "no object" (an uninitialized handle, an absent embedded reference).
type Pos uint32

// NoPos is the sentinel position held by a handle or Value that refers
// to nothing.
const NoPos Pos = 0

// header occupies exactly one Slot, packing the object's total size in
// slots (including this header) into the high 32 bits and its type
// index into the low 32 bits.
func encodeHeader(size uint32, typeIdx typereg.TypeID) Slot {
	return uint64(size)<<32 | uint64(typeIdx)
}

func decodeHeader(s Slot) (size uint32, typeIdx typereg.TypeID) {
	return uint32(s >> 32), typereg.TypeID(uint32(s))
}
