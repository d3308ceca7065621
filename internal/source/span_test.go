package source

import "testing"

func TestSpanEmptyAndLen(t *testing.T) {
	s := Span{File: 0, Start: 4, End: 4}
	if !s.Empty() {
		t.Errorf("expected empty span")
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}

	s2 := Span{File: 0, Start: 4, End: 10}
	if s2.Empty() {
		t.Errorf("did not expect empty span")
	}
	if s2.Len() != 6 {
		t.Errorf("Len() = %d, want 6", s2.Len())
	}
}

func TestSpanCover(t *testing.T) {
	a := Span{File: 0, Start: 5, End: 10}
	b := Span{File: 0, Start: 2, End: 7}
	got := a.Cover(b)
	want := Span{File: 0, Start: 2, End: 10}
	if got != want {
		t.Errorf("Cover() = %+v, want %+v", got, want)
	}
}

func TestSpanCoverDifferentFiles(t *testing.T) {
	a := Span{File: 0, Start: 5, End: 10}
	b := Span{File: 1, Start: 0, End: 100}
	got := a.Cover(b)
	if got != a {
		t.Errorf("Cover() across files should be a no-op, got %+v", got)
	}
}

func TestSpanString(t *testing.T) {
	s := Span{File: 3, Start: 1, End: 9}
	if got, want := s.String(), "3:1-9"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
