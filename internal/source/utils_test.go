package source

import "testing"

func TestNormalizeCRLF(t *testing.T) {
	got, changed := normalizeCRLF([]byte("a\r\nb\r\nc"))
	if !changed {
		t.Errorf("expected changed=true")
	}
	if string(got) != "a\nb\nc" {
		t.Errorf("got %q", got)
	}

	got, changed = normalizeCRLF([]byte("a\nb"))
	if changed {
		t.Errorf("expected changed=false for LF-only input")
	}
	if string(got) != "a\nb" {
		t.Errorf("got %q", got)
	}
}

func TestRemoveBOM(t *testing.T) {
	withBOM := []byte{0xEF, 0xBB, 0xBF, 'h', 'i'}
	got, had := removeBOM(withBOM)
	if !had || string(got) != "hi" {
		t.Errorf("removeBOM() = %q, %v", got, had)
	}

	noBOM := []byte("hi")
	got, had = removeBOM(noBOM)
	if had || string(got) != "hi" {
		t.Errorf("removeBOM() = %q, %v", got, had)
	}
}

func TestColumnOfExpandsTabs(t *testing.T) {
	// "\tx" — a tab at column 1 advances to column 9, then 'x' lands at 9.
	line := []byte("\tx")
	col := columnOf(line, 0, 1) // position of 'x'
	if col != 9 {
		t.Errorf("columnOf() = %d, want 9", col)
	}
}

func TestToLineColMultiline(t *testing.T) {
	content := []byte("abc\ndef\nghi")
	idx := buildLineIndex(content)
	lc := toLineCol(content, idx, 5) // 'e' on line 2
	if lc.Line != 2 || lc.Col != 2 {
		t.Errorf("toLineCol() = %+v, want {2 2}", lc)
	}
}
