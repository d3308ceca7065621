package heap

import (
	"fmt"

	"github.com/lineCode/mjs-1/internal/diag"
)

// OutOfMemory is returned by an allocating call when the heap is still
// exhausted after a collection attempt. The heap itself is left in a
// consistent state; the allocation simply did not happen.
type OutOfMemory struct {
	Requested uint32
	Capacity  uint32
}

func (e *OutOfMemory) Error() string {
	return fmt.Sprintf("%s: requested %d slots, have %d total", diag.HeapOutOfMemory.Title(), e.Requested, e.Capacity)
}

// invariant panics on a condition the core's contract makes the
// caller's responsibility to avoid — a stale or otherwise invalid
// handle, or heap state that should be unreachable. There is no
// recoverable path for these, unlike OutOfMemory: a release build may
// compile the check calling this out entirely.
func invariant(code diag.Code, format string, args ...any) {
	panic(fmt.Errorf("%s: %s", code.Title(), fmt.Sprintf(format, args...)))
}
