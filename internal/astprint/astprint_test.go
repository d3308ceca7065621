package astprint

import (
	"strings"
	"testing"

	"github.com/lineCode/mjs-1/internal/ast"
	"github.com/lineCode/mjs-1/internal/diag"
	"github.com/lineCode/mjs-1/internal/lexer"
	"github.com/lineCode/mjs-1/internal/parser"
	"github.com/lineCode/mjs-1/internal/source"
)

func TestFilePrintsStatementShapes(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("t.js", []byte("var x = 1 + 2;\nif (x) { return x; }"))
	f := fs.Get(id)

	bag := diag.NewBag(16)
	lx := lexer.New(f, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	b := ast.NewBuilder(ast.Hints{})
	res := parser.ParseFile(fs, lx, b, parser.Options{Reporter: diag.BagReporter{Bag: bag}})
	if res.Errs != 0 {
		t.Fatalf("got %d parse errors, want 0", res.Errs)
	}

	var buf strings.Builder
	File(&buf, b, res.File)
	out := buf.String()

	for _, want := range []string{"file", "var", "if", "return"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func dumpFile(t *testing.T, src string) (string, uint) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("t.js", []byte(src))
	f := fs.Get(id)

	bag := diag.NewBag(16)
	lx := lexer.New(f, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	b := ast.NewBuilder(ast.Hints{})
	res := parser.ParseFile(fs, lx, b, parser.Options{Reporter: diag.BagReporter{Bag: bag}})

	var buf strings.Builder
	File(&buf, b, res.File)
	return buf.String(), res.Errs
}

func TestFilePrintsArithmeticBeforeEqualityPrecedence(t *testing.T) {
	// "1 + 2 * 3 == 7" must dump as ==(+(1,*(2,3)),7): '*' nests inside
	// '+', and '+' nests inside '=='.
	out, errs := dumpFile(t, "1 + 2 * 3 == 7;")
	if errs != 0 {
		t.Fatalf("got %d parse errors, want 0", errs)
	}
	want := `file
  expr-stmt
    binary ==
      binary +
        number "1"
        binary *
          number "2"
          number "3"
      number "7"
`
	if out != want {
		t.Fatalf("got dump:\n%s\nwant:\n%s", out, want)
	}
}

func TestFilePrintsNewlineSeparatedAssignmentsAsTwoStatements(t *testing.T) {
	// ASI with no semicolon between "a = b" and "c = d" on separate lines
	// must dump as two expr-stmt nodes, not one statement or a sequence.
	out, errs := dumpFile(t, "a = b\nc = d")
	if errs != 0 {
		t.Fatalf("got %d parse errors, want 0", errs)
	}
	want := `file
  expr-stmt
    assign =
      ident "a"
      ident "b"
  expr-stmt
    assign =
      ident "c"
      ident "d"
`
	if out != want {
		t.Fatalf("got dump:\n%s\nwant:\n%s", out, want)
	}
}
