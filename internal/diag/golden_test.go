package diag

import (
	"strings"
	"testing"

	"github.com/lineCode/mjs-1/internal/source"
)

func TestFormat(t *testing.T) {
	fs := source.NewFileSetWithBase("/proj")
	fid := fs.Add("/proj/main.mjs", []byte("let x = ;\n"), 0)

	d := NewError(SynExpectExpression, source.Span{File: fid, Start: 8, End: 9}, "expected an expression")
	got := Format([]Diagnostic{d}, fs, false)
	if !strings.Contains(got, "main.mjs:1:9") {
		t.Errorf("Format() = %q, want it to contain main.mjs:1:9", got)
	}
	if !strings.Contains(got, "SYN2007") {
		t.Errorf("Format() = %q, want it to contain SYN2007", got)
	}
}

func TestFormatEmpty(t *testing.T) {
	fs := source.NewFileSet()
	if got := Format(nil, fs, false); got != "" {
		t.Errorf("Format(nil) = %q, want empty", got)
	}
}
