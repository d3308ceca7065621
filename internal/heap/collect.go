package heap

import "github.com/lineCode/mjs-1/internal/typereg"

// collector drives one semispace collection: it forwards roots into a
// companion arena, then breadth-first fixes up every freshly placed
// object's embedded positions, implementing typereg.Fixer so a type's
// Fixup callback can resolve a position through it.
type collector struct {
	old      *Heap
	newSlots []Slot
	next     uint32
	worklist []Pos
}

var _ typereg.Fixer = (*collector)(nil)

// Fixup resolves a position embedded in an object being relocated,
// following an existing forwarding header or moving the referent
// immediately if this collection hasn't reached it yet.
func (c *collector) Fixup(pos uint32) uint32 {
	return uint32(c.forward(Pos(pos)))
}

// forward relocates the object at pos into the companion arena if it
// isn't there already, and returns its (possibly unchanged) position
// in the companion.
func (c *collector) forward(pos Pos) Pos {
	if pos == NoPos {
		return NoPos
	}
	headerPos := uint32(pos) - 1
	size, typeIdx := decodeHeader(c.old.slots[headerPos])
	if typeIdx == typereg.Forwarded {
		return Pos(c.old.slots[headerPos+1])
	}

	dataLen := size - 1
	newHeaderPos := c.next
	c.next += size

	desc := typereg.Global().Get(typeIdx)
	dst := c.newSlots[newHeaderPos+1 : newHeaderPos+1+dataLen]
	src := c.old.slots[uint32(pos) : uint32(pos)+dataLen]
	desc.Move(dst, src)
	c.newSlots[newHeaderPos] = encodeHeader(size, typeIdx)

	newPos := Pos(newHeaderPos + 1)
	c.old.slots[headerPos] = encodeHeader(size, typereg.Forwarded)
	c.old.slots[headerPos+1] = uint64(newPos)

	c.worklist = append(c.worklist, newPos)
	return newPos
}

// GarbageCollect runs one stop-the-world semispace collection: every
// root is forwarded into a fresh companion arena, every relocated
// object's embedded positions are fixed up in breadth-first order, and
// whatever remains unforwarded in the old arena — unreachable — is
// destroyed before the old slot array is released.
//
// The caller must hold no raw slot indices across this call other than
// through Handle/Untracked — both remain valid afterward.
func (h *Heap) GarbageCollect() {
	c := &collector{old: h, newSlots: make([]Slot, len(h.slots)), next: 1}

	// Handles registered after this point (there should be none —
	// collection never reenters) are skipped by the root walk, exactly
	// as newly created handles are during a collection in progress.
	ptrKeepCount := len(h.roots)
	for i := 0; i < ptrKeepCount; i++ {
		cell := h.roots[i]
		cell.pos = c.forward(cell.pos)
	}

	for len(c.worklist) > 0 {
		pos := c.worklist[0]
		c.worklist = c.worklist[1:]

		headerPos := uint32(pos) - 1
		size, typeIdx := decodeHeader(c.newSlots[headerPos])
		desc := typereg.Global().Get(typeIdx)
		if desc.Fixup == nil {
			continue
		}
		dataLen := size - 1
		desc.Fixup(c, c.newSlots[uint32(pos):uint32(pos)+dataLen])
	}

	h.destroyUnforwarded()

	h.slots = c.newSlots
	h.next = c.next
}
