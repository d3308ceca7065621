package heap

import (
	"bytes"
	"strings"
	"testing"
)

func TestDebugPrintListsLiveObjects(t *testing.T) {
	h := NewHeap(32)
	defer h.Close()
	hn, err := h.AllocStruct([]Value{Number(1)})
	if err != nil {
		t.Fatalf("AllocStruct: %v", err)
	}
	defer hn.Close()

	var buf bytes.Buffer
	if err := h.DebugPrint(&buf); err != nil {
		t.Fatalf("DebugPrint: %v", err)
	}
	if !strings.Contains(buf.String(), "type=struct") {
		t.Errorf("got %q, want a line naming the struct type", buf.String())
	}
}

func TestDumpProducesDecodableMsgpack(t *testing.T) {
	h := NewHeap(32)
	defer h.Close()
	hn, err := h.AllocArray([]Value{Number(1), Number(2)})
	if err != nil {
		t.Fatalf("AllocArray: %v", err)
	}
	defer hn.Close()

	var buf bytes.Buffer
	if err := h.Dump(&buf); err != nil {
		t.Fatalf("Dump: %v", err)
	}
	if buf.Len() == 0 {
		t.Errorf("want non-empty msgpack output")
	}
}
