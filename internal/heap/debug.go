package heap

import (
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/lineCode/mjs-1/internal/typereg"
)

// DebugPrint writes a human-readable listing of every header currently
// packed into the arena, live or not-yet-collected, one line per
// object: its position, slot size, and type name.
func (h *Heap) DebugPrint(w io.Writer) error {
	fmt.Fprintf(w, "heap: %d/%d slots used, %d roots\n", h.UsedSlots(), h.Capacity(), len(h.roots))
	headerPos := uint32(1)
	for headerPos < h.next {
		size, typeIdx := decodeHeader(h.slots[headerPos])
		name := typereg.Global().Name(typeIdx)
		fmt.Fprintf(w, "  pos=%-8d size=%-4d type=%s\n", headerPos+1, size, name)
		headerPos += size
	}
	return nil
}

// dumpEntry is one object of a dumpSnapshot, named for msgpack encoding
// rather than internal field names so the format is stable independent
// of Heap's own layout.
type dumpEntry struct {
	Pos  uint32 `msgpack:"pos"`
	Size uint32 `msgpack:"size"`
	Type string `msgpack:"type"`
}

type dumpSnapshot struct {
	UsedSlots uint32      `msgpack:"used_slots"`
	Capacity  uint32      `msgpack:"capacity"`
	Roots     int         `msgpack:"roots"`
	Objects   []dumpEntry `msgpack:"objects"`
}

// Dump writes a binary msgpack snapshot of the arena's current header
// layout, for tooling that wants to diff heap state across runs
// without parsing the human-readable DebugPrint form.
func (h *Heap) Dump(w io.Writer) error {
	snap := dumpSnapshot{
		UsedSlots: h.UsedSlots(),
		Capacity:  h.Capacity(),
		Roots:     len(h.roots),
	}
	headerPos := uint32(1)
	for headerPos < h.next {
		size, typeIdx := decodeHeader(h.slots[headerPos])
		snap.Objects = append(snap.Objects, dumpEntry{
			Pos:  headerPos + 1,
			Size: size,
			Type: typereg.Global().Name(typeIdx),
		})
		headerPos += size
	}
	return msgpack.NewEncoder(w).Encode(snap)
}
