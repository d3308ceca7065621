package heap

import (
	"fortio.org/safecast"

	"github.com/lineCode/mjs-1/internal/diag"
	"github.com/lineCode/mjs-1/internal/source"
	"github.com/lineCode/mjs-1/internal/typereg"
)

// Heap is a flat array of Slots plus the ordered set of roots (tracked
// handles) pointing into it. Allocation is a bump pointer; exhaustion
// triggers GarbageCollect before an allocation is allowed to fail.
type Heap struct {
	slots []Slot
	next  uint32 // next free slot; slot 0 is never allocated, matching NoPos.
	roots []*posCell
}

// NewHeap constructs a heap with room for capacitySlots slots,
// including the unused sentinel slot at position 0.
func NewHeap(capacitySlots uint32) *Heap {
	if capacitySlots < 2 {
		capacitySlots = 2
	}
	return &Heap{slots: make([]Slot, capacitySlots), next: 1}
}

// UsedSlots reports how many slots are currently occupied by live or
// as-yet-uncollected data, excluding the unused sentinel slot.
func (h *Heap) UsedSlots() uint32 { return h.next - 1 }

// Capacity reports the heap's total slot count.
func (h *Heap) Capacity() uint32 { return uint32(len(h.slots)) }

func (h *Heap) headerPos(pos Pos) uint32 { return uint32(pos) - 1 }

// objectTag is the constraint satisfied by the marker types (String,
// Array, StructObj) that parameterize Handle and Untracked. Each
// marker's typeID resolves to the TypeID its own init registered.
type objectTag interface {
	typeID() typereg.TypeID
}

type String struct{}
type Array struct{}
type StructObj struct{}

var (
	stringType typereg.TypeID
	arrayType  typereg.TypeID
	structType typereg.TypeID
)

func (String) typeID() typereg.TypeID    { return stringType }
func (Array) typeID() typereg.TypeID     { return arrayType }
func (StructObj) typeID() typereg.TypeID { return structType }

func init() {
	stringType = typereg.Global().Register(typereg.Descriptor{
		Name: "string",
		Move: func(dst, src []uint64) { copy(dst, src) },
	})
	arrayType = typereg.Global().Register(typereg.Descriptor{
		Name:  "array",
		Move:  func(dst, src []uint64) { copy(dst, src) },
		Fixup: fixupValueList,
	})
	structType = typereg.Global().Register(typereg.Descriptor{
		Name:  "struct",
		Move:  func(dst, src []uint64) { copy(dst, src) },
		Fixup: fixupValueList,
	})
}

// fixupValueList rewrites a counted Value list's element slots, used by
// both Array and StructObj: obj[0] holds the element count, obj[1:]
// the elements themselves, so index 0 is skipped.
func fixupValueList(fx typereg.Fixer, obj []uint64) {
	for i := 1; i < len(obj); i++ {
		obj[i] = uint64(Value(obj[i]).FixupAfterMove(fx))
	}
}

// checkType validates that pos refers to a live, constructed object
// convertible to want. It panics rather than returning an error: a
// handle failing this check is a contract violation by the caller, not
// a recoverable runtime condition.
func (h *Heap) checkType(pos Pos, want typereg.TypeID) {
	if pos == NoPos || uint32(pos) >= h.next {
		invariant(diag.HeapHandleInvalid, "position %d does not refer to a live object", pos)
	}
	_, typeIdx := decodeHeader(h.slots[h.headerPos(pos)])
	switch typeIdx {
	case typereg.Unallocated:
		invariant(diag.HeapHandleInvalid, "position %d is reserved but not yet constructed", pos)
	case typereg.Forwarded:
		invariant(diag.HeapHandleStale, "position %d was forwarded by a collection and never fixed up", pos)
	}
	desc := typereg.Global().Get(typeIdx)
	if !desc.Convertible(want) {
		invariant(diag.HeapHandleInvalid, "position %d holds a %q, not convertible to the requested type", pos, desc.Name)
	}
}

// objectSlots returns the live data slots (excluding the header) for
// pos, after validating its type.
func (h *Heap) objectSlots(pos Pos, want typereg.TypeID) []Slot {
	h.checkType(pos, want)
	size, _ := decodeHeader(h.slots[h.headerPos(pos)])
	return h.slots[uint32(pos) : uint32(pos)+size-1]
}

// allocObject reserves dataLen+1 slots (header plus data), constructs
// the object via write, and stamps its final type index. A collection
// is attempted once if the reservation does not fit; OutOfMemory is
// returned if it still doesn't.
func (h *Heap) allocObject(typeIdx typereg.TypeID, dataLen uint32, write func(obj []Slot)) (Pos, error) {
	total := dataLen + 1
	if h.next+total > uint32(len(h.slots)) {
		h.GarbageCollect()
		if h.next+total > uint32(len(h.slots)) {
			return NoPos, &OutOfMemory{Requested: total, Capacity: uint32(len(h.slots))}
		}
	}
	headerPos := h.next
	h.slots[headerPos] = encodeHeader(total, typereg.Unallocated)
	dataPos := headerPos + 1
	h.next += total
	write(h.slots[dataPos : dataPos+dataLen])
	h.slots[headerPos] = encodeHeader(total, typeIdx)
	return Pos(dataPos), nil
}

// trackHandle registers a freshly constructed or promoted position as
// a tracked root and wraps it in a Handle.
func trackHandle[T objectTag](h *Heap, pos Pos) Handle[T] {
	cell := &posCell{pos: pos}
	h.roots = append(h.roots, cell)
	return Handle[T]{h: h, cell: cell}
}

// untrack removes cell from the root set, scanning from the back since
// short-lived handles dominate churn and tend to have registered most
// recently.
func (h *Heap) untrack(cell *posCell) {
	for i := len(h.roots) - 1; i >= 0; i-- {
		if h.roots[i] == cell {
			h.roots = append(h.roots[:i], h.roots[i+1:]...)
			return
		}
	}
}

// AllocString constructs a string object referring to an interned
// string table entry.
func (h *Heap) AllocString(id source.StringID) (Handle[String], error) {
	pos, err := h.allocObject(stringType, 1, func(obj []Slot) {
		obj[0] = uint64(id)
	})
	if err != nil {
		return Handle[String]{}, err
	}
	return trackHandle[String](h, pos), nil
}

// String dereferences a string handle to its interned string id.
func (h *Heap) String(hn Handle[String]) source.StringID {
	obj := h.objectSlots(hn.Pos(), stringType)
	return source.StringID(obj[0])
}

// AllocArray constructs an array object holding a copy of elems.
func (h *Heap) AllocArray(elems []Value) (Handle[Array], error) {
	n, err := safecast.Conv[uint32](len(elems))
	if err != nil {
		return Handle[Array]{}, err
	}
	pos, aerr := h.allocObject(arrayType, n+1, func(obj []Slot) {
		obj[0] = uint64(n)
		for i, v := range elems {
			obj[1+i] = uint64(v)
		}
	})
	if aerr != nil {
		return Handle[Array]{}, aerr
	}
	return trackHandle[Array](h, pos), nil
}

// ArrayLen reports an array handle's element count.
func (h *Heap) ArrayLen(hn Handle[Array]) int {
	return int(h.objectSlots(hn.Pos(), arrayType)[0])
}

// ArrayGet reads element i of an array handle.
func (h *Heap) ArrayGet(hn Handle[Array], i int) Value {
	return Value(h.objectSlots(hn.Pos(), arrayType)[1+i])
}

// ArraySet writes element i of an array handle in place.
func (h *Heap) ArraySet(hn Handle[Array], i int, v Value) {
	h.objectSlots(hn.Pos(), arrayType)[1+i] = uint64(v)
}

// AllocStruct constructs a struct object holding a copy of fields.
func (h *Heap) AllocStruct(fields []Value) (Handle[StructObj], error) {
	n, err := safecast.Conv[uint32](len(fields))
	if err != nil {
		return Handle[StructObj]{}, err
	}
	pos, serr := h.allocObject(structType, n+1, func(obj []Slot) {
		obj[0] = uint64(n)
		for i, v := range fields {
			obj[1+i] = uint64(v)
		}
	})
	if serr != nil {
		return Handle[StructObj]{}, serr
	}
	return trackHandle[StructObj](h, pos), nil
}

// StructLen reports a struct handle's field count.
func (h *Heap) StructLen(hn Handle[StructObj]) int {
	return int(h.objectSlots(hn.Pos(), structType)[0])
}

// StructGet reads field i of a struct handle.
func (h *Heap) StructGet(hn Handle[StructObj], i int) Value {
	return Value(h.objectSlots(hn.Pos(), structType)[1+i])
}

// StructSet writes field i of a struct handle in place.
func (h *Heap) StructSet(hn Handle[StructObj], i int, v Value) {
	h.objectSlots(hn.Pos(), structType)[1+i] = uint64(v)
}

// Close runs every still-live object's destructor and releases the
// slot array. The heap must not be used afterward.
func (h *Heap) Close() {
	h.destroyUnforwarded()
	h.slots = nil
	h.roots = nil
}

// destroyUnforwarded walks every object currently packed into h.slots
// and invokes its type's Destroy, skipping headers a collection has
// already forwarded. Used both by GarbageCollect (old arena, right
// before it's released) and by Close (the whole live arena, at
// teardown — nothing there is ever forwarded).
func (h *Heap) destroyUnforwarded() {
	headerPos := uint32(1)
	for headerPos < h.next {
		size, typeIdx := decodeHeader(h.slots[headerPos])
		if typeIdx != typereg.Forwarded {
			desc := typereg.Global().Get(typeIdx)
			if desc.Destroy != nil {
				dataPos := headerPos + 1
				desc.Destroy(h.slots[dataPos : dataPos+size-1])
			}
		}
		headerPos += size
	}
}
