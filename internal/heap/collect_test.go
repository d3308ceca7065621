package heap

import "testing"

func TestCollectReclaimsUnreachable(t *testing.T) {
	h := NewHeap(64)
	defer h.Close()

	for i := 0; i < 30; i++ {
		hn, err := h.AllocStruct(nil)
		if err != nil {
			t.Fatalf("AllocStruct #%d: %v", i, err)
		}
		hn.Close()
	}

	h.GarbageCollect()
	if got := h.UsedSlots(); got != 0 {
		t.Errorf("got %d used slots after collecting 30 dropped objects, want 0", got)
	}
}

func TestForwardingChainCycleSurvivesCollection(t *testing.T) {
	h := NewHeap(64)
	defer h.Close()

	aH, err := h.AllocStruct([]Value{Undefined})
	if err != nil {
		t.Fatalf("AllocStruct a: %v", err)
	}
	bH, err := h.AllocStruct([]Value{objectValue(aH.Pos())})
	if err != nil {
		t.Fatalf("AllocStruct b: %v", err)
	}
	h.StructSet(aH, 0, objectValue(bH.Pos()))
	// B has no root of its own; it is reachable only through A's field.
	bH.Close()

	h.GarbageCollect()

	bRef := h.StructGet(aH, 0)
	if bRef.Kind() != KindObject {
		t.Fatalf("A's field 0 is no longer an object reference")
	}
	// B survived: checkType panics if it didn't.
	h.checkType(bRef.Pos(), structType)

	aRef := Value(h.objectSlots(bRef.Pos(), structType)[1])
	if aRef.Kind() != KindObject || aRef.Pos() != aH.Pos() {
		t.Fatalf("B's back-reference to A was not fixed up to A's new position")
	}
}

func TestCollectionIsIdempotent(t *testing.T) {
	h := NewHeap(64)
	defer h.Close()

	for i := 0; i < 5; i++ {
		hn, err := h.AllocStruct([]Value{Number(float64(i))})
		if err != nil {
			t.Fatalf("AllocStruct #%d: %v", i, err)
		}
		hn.Close()
	}
	keep, err := h.AllocStruct([]Value{Number(99)})
	if err != nil {
		t.Fatalf("AllocStruct keep: %v", err)
	}
	defer keep.Close()

	h.GarbageCollect()
	first := h.UsedSlots()
	h.GarbageCollect()
	second := h.UsedSlots()
	if first != second {
		t.Errorf("got %d slots then %d; a second consecutive collection must be a no-op", first, second)
	}
}

func TestHandleStableAcrossImplicitCollection(t *testing.T) {
	h := NewHeap(16)
	defer h.Close()

	keep, err := h.AllocStruct([]Value{Number(7)})
	if err != nil {
		t.Fatalf("AllocStruct keep: %v", err)
	}
	defer keep.Close()

	for i := 0; i < 20; i++ {
		hn, err := h.AllocStruct([]Value{Number(float64(i))})
		if err != nil {
			t.Fatalf("AllocStruct #%d: %v", i, err)
		}
		hn.Close()
	}

	if got := h.StructGet(keep, 0).AsNumber(); got != 7 {
		t.Errorf("got %v, want 7 — keep's handle should stay valid across implicit collections", got)
	}
}
