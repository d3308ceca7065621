package lexer

import (
	"testing"

	"github.com/lineCode/mjs-1/internal/source"
)

func newTestCursor(t *testing.T, content string) Cursor {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.mjs", []byte(content))
	return NewCursor(fs.Get(id))
}

func TestCursorPeekAndBump(t *testing.T) {
	c := newTestCursor(t, "ab")
	if c.Peek() != 'a' {
		t.Fatalf("Peek() = %q, want 'a'", c.Peek())
	}
	if got := c.Bump(); got != 'a' {
		t.Fatalf("Bump() = %q, want 'a'", got)
	}
	if c.Peek() != 'b' {
		t.Fatalf("Peek() = %q, want 'b'", c.Peek())
	}
	c.Bump()
	if !c.EOF() {
		t.Fatalf("EOF() = false, want true")
	}
	if c.Bump() != 0 {
		t.Fatalf("Bump() at EOF should return 0")
	}
}

func TestCursorMarkAndSpanFrom(t *testing.T) {
	c := newTestCursor(t, "hello")
	m := c.Mark()
	c.Bump()
	c.Bump()
	sp := c.SpanFrom(m)
	if sp.Start != 0 || sp.End != 2 {
		t.Errorf("SpanFrom() = %+v, want {Start:0 End:2}", sp)
	}
}

func TestCursorReset(t *testing.T) {
	c := newTestCursor(t, "hello")
	m := c.Mark()
	c.Bump()
	c.Bump()
	c.Reset(m)
	if c.Off != 0 {
		t.Errorf("Off after Reset() = %d, want 0", c.Off)
	}
}

func TestCursorEat(t *testing.T) {
	c := newTestCursor(t, "ab")
	if !c.Eat('a') {
		t.Fatalf("Eat('a') = false, want true")
	}
	if c.Eat('z') {
		t.Fatalf("Eat('z') = true, want false")
	}
	if !c.Eat('b') {
		t.Fatalf("Eat('b') = false, want true")
	}
	if !c.EOF() {
		t.Fatalf("EOF() = false, want true")
	}
}

func TestCursorPeek2(t *testing.T) {
	c := newTestCursor(t, "ab")
	b0, b1, ok := c.Peek2()
	if !ok || b0 != 'a' || b1 != 'b' {
		t.Errorf("Peek2() = (%q, %q, %v), want ('a', 'b', true)", b0, b1, ok)
	}
	c.Bump()
	if _, _, ok := c.Peek2(); ok {
		t.Errorf("Peek2() near EOF should report ok = false")
	}
}
