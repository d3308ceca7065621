package parser

import (
	"testing"

	"github.com/lineCode/mjs-1/internal/ast"
	"github.com/lineCode/mjs-1/internal/lexer"
	"github.com/lineCode/mjs-1/internal/source"
	"github.com/lineCode/mjs-1/internal/token"
)

func parseSrc(t *testing.T, src string) (*ast.Builder, ast.FileID, uint) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.mjs", []byte(src))
	lx := lexer.New(fs.Get(id), lexer.Options{})
	b := ast.NewBuilder(ast.Hints{})
	res := ParseFile(fs, lx, b, Options{})
	return b, res.File, res.Errs
}

func bodyKinds(t *testing.T, b *ast.Builder, file ast.FileID) []ast.StmtKind {
	t.Helper()
	f := b.Files.Get(file)
	out := make([]ast.StmtKind, len(f.Body))
	for i, id := range f.Body {
		out[i] = b.Stmts.Get(id).Kind
	}
	return out
}

func TestParseVarDecl(t *testing.T) {
	b, file, errs := parseSrc(t, "var x = 1, y;")
	if errs != 0 {
		t.Fatalf("got %d errors", errs)
	}
	kinds := bodyKinds(t, b, file)
	if len(kinds) != 1 || kinds[0] != ast.StmtVarDecl {
		t.Fatalf("got %v, want single StmtVarDecl", kinds)
	}
	stmt := b.Stmts.Get(b.Files.Get(file).Body[0])
	if len(stmt.Decls) != 2 {
		t.Fatalf("got %d declarators, want 2", len(stmt.Decls))
	}
	if stmt.Decls[0].Name != "x" || !stmt.Decls[0].Init.IsValid() {
		t.Errorf("got %+v, want initialized x", stmt.Decls[0])
	}
	if stmt.Decls[1].Name != "y" || stmt.Decls[1].Init.IsValid() {
		t.Errorf("got %+v, want uninitialized y", stmt.Decls[1])
	}
}

func TestParseIfElse(t *testing.T) {
	b, file, errs := parseSrc(t, "if (x) y; else z;")
	if errs != 0 {
		t.Fatalf("got %d errors", errs)
	}
	kinds := bodyKinds(t, b, file)
	if len(kinds) != 1 || kinds[0] != ast.StmtIf {
		t.Fatalf("got %v, want single StmtIf", kinds)
	}
	stmt := b.Stmts.Get(b.Files.Get(file).Body[0])
	if !stmt.Test.IsValid() || !stmt.Cons.IsValid() || !stmt.Alt.IsValid() {
		t.Errorf("got %+v, want test/cons/alt all present", stmt)
	}
}

func TestParseForClassic(t *testing.T) {
	b, file, errs := parseSrc(t, "for (var i = 0; i < 10; i = i + 1) x;")
	if errs != 0 {
		t.Fatalf("got %d errors", errs)
	}
	stmt := b.Stmts.Get(b.Files.Get(file).Body[0])
	if stmt.Kind != ast.StmtFor {
		t.Fatalf("got %v, want StmtFor", stmt.Kind)
	}
	if len(stmt.Decls) != 1 || !stmt.Test.IsValid() || !stmt.Update.IsValid() {
		t.Errorf("got %+v, want decls+test+update", stmt)
	}
}

func TestParseForIn(t *testing.T) {
	b, file, errs := parseSrc(t, "for (var k in obj) x;")
	if errs != 0 {
		t.Fatalf("got %d errors", errs)
	}
	stmt := b.Stmts.Get(b.Files.Get(file).Body[0])
	if stmt.Kind != ast.StmtForIn {
		t.Fatalf("got %v, want StmtForIn", stmt.Kind)
	}
	if stmt.LeftDecl == nil || stmt.LeftDecl.Name != "k" {
		t.Errorf("got %+v, want LeftDecl k", stmt)
	}
}

func TestParseForInExistingRef(t *testing.T) {
	b, file, errs := parseSrc(t, "for (k in obj) x;")
	if errs != 0 {
		t.Fatalf("got %d errors", errs)
	}
	stmt := b.Stmts.Get(b.Files.Get(file).Body[0])
	if stmt.Kind != ast.StmtForIn {
		t.Fatalf("got %v, want StmtForIn", stmt.Kind)
	}
	if !stmt.Left.IsValid() || stmt.LeftDecl != nil {
		t.Errorf("got %+v, want plain Left reference", stmt)
	}
}

func TestParseWhileAndDoWhile(t *testing.T) {
	b, file, errs := parseSrc(t, "while (x) y; do z; while (x);")
	if errs != 0 {
		t.Fatalf("got %d errors", errs)
	}
	kinds := bodyKinds(t, b, file)
	want := []ast.StmtKind{ast.StmtWhile, ast.StmtDoWhile}
	if len(kinds) != len(want) {
		t.Fatalf("got %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("stmt %d: got %v, want %v", i, kinds[i], want[i])
		}
	}
}

func TestParseBreakContinueWithLabel(t *testing.T) {
	b, file, errs := parseSrc(t, "outer: while (x) { break outer; continue; }")
	if errs != 0 {
		t.Fatalf("got %d errors", errs)
	}
	labeled := b.Stmts.Get(b.Files.Get(file).Body[0])
	if labeled.Kind != ast.StmtLabeled || labeled.Label != "outer" {
		t.Fatalf("got %+v, want labeled 'outer'", labeled)
	}
	loop := b.Stmts.Get(labeled.Cons)
	block := b.Stmts.Get(loop.Cons)
	if len(block.Body) != 2 {
		t.Fatalf("got %d stmts in block, want 2", len(block.Body))
	}
	brk := b.Stmts.Get(block.Body[0])
	if brk.Kind != ast.StmtBreak || brk.Label != "outer" {
		t.Errorf("got %+v, want break with label 'outer'", brk)
	}
	cont := b.Stmts.Get(block.Body[1])
	if cont.Kind != ast.StmtContinue || cont.Label != "" {
		t.Errorf("got %+v, want unlabeled continue", cont)
	}
}

func TestParseReturnASI(t *testing.T) {
	// A line terminator after 'return' blocks the restricted production:
	// the value on the next line belongs to a separate statement.
	b, file, errs := parseSrc(t, "function f() { return\n1; }")
	if errs != 0 {
		t.Fatalf("got %d errors", errs)
	}
	fnDecl := b.Stmts.Get(b.Files.Get(file).Body[0])
	body := b.Stmts.Get(fnDecl.Fn.Body)
	if len(body.Body) != 2 {
		t.Fatalf("got %d statements in function body, want 2", len(body.Body))
	}
	ret := b.Stmts.Get(body.Body[0])
	if ret.Kind != ast.StmtReturn || ret.Expr.IsValid() {
		t.Errorf("got %+v, want bare return with no argument", ret)
	}
}

func TestParseSwitch(t *testing.T) {
	b, file, errs := parseSrc(t, "switch (x) { case 1: y; break; default: z; }")
	if errs != 0 {
		t.Fatalf("got %d errors", errs)
	}
	stmt := b.Stmts.Get(b.Files.Get(file).Body[0])
	if stmt.Kind != ast.StmtSwitch || len(stmt.Cases) != 2 {
		t.Fatalf("got %+v, want switch with 2 cases", stmt)
	}
	if !stmt.Cases[0].Test.IsValid() {
		t.Errorf("first case should have a test expression")
	}
	if stmt.Cases[1].Test.IsValid() {
		t.Errorf("default case should have no test expression")
	}
}

func TestParseTryCatchFinally(t *testing.T) {
	b, file, errs := parseSrc(t, "try { a; } catch (e) { b; } finally { c; }")
	if errs != 0 {
		t.Fatalf("got %d errors", errs)
	}
	stmt := b.Stmts.Get(b.Files.Get(file).Body[0])
	if stmt.Kind != ast.StmtTry {
		t.Fatalf("got %v, want StmtTry", stmt.Kind)
	}
	if stmt.CatchParam != "e" || !stmt.Catch.IsValid() || !stmt.Finally.IsValid() {
		t.Errorf("got %+v, want catch param 'e' with catch and finally blocks", stmt)
	}
}

func TestParseTryWithoutCatchOrFinallyErrors(t *testing.T) {
	_, _, errs := parseSrc(t, "try { a; }")
	if errs == 0 {
		t.Fatalf("want an error for a 'try' with no catch or finally")
	}
}

func TestParseFunctionDecl(t *testing.T) {
	b, file, errs := parseSrc(t, "function add(a, b) { return a + b; }")
	if errs != 0 {
		t.Fatalf("got %d errors", errs)
	}
	stmt := b.Stmts.Get(b.Files.Get(file).Body[0])
	if stmt.Kind != ast.StmtFunctionDecl {
		t.Fatalf("got %v, want StmtFunctionDecl", stmt.Kind)
	}
	if stmt.Fn.Name != "add" || len(stmt.Fn.Params) != 2 {
		t.Errorf("got %+v, want 'add' with 2 params", stmt.Fn)
	}
}

func TestParseThrow(t *testing.T) {
	b, file, errs := parseSrc(t, "throw new Error(\"bad\");")
	if errs != 0 {
		t.Fatalf("got %d errors", errs)
	}
	stmt := b.Stmts.Get(b.Files.Get(file).Body[0])
	if stmt.Kind != ast.StmtThrow || !stmt.Expr.IsValid() {
		t.Fatalf("got %+v, want a throw with an argument", stmt)
	}
	thrown := b.Exprs.Get(stmt.Expr)
	if thrown.Kind != ast.ExprNew {
		t.Errorf("got %v, want a 'new' expression thrown", thrown.Kind)
	}
}

func TestParseLabeledVsExprStmt(t *testing.T) {
	b, file, errs := parseSrc(t, "foo: x; bar + 1;")
	if errs != 0 {
		t.Fatalf("got %d errors", errs)
	}
	kinds := bodyKinds(t, b, file)
	want := []ast.StmtKind{ast.StmtLabeled, ast.StmtExpr}
	if len(kinds) != len(want) {
		t.Fatalf("got %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("stmt %d: got %v, want %v", i, kinds[i], want[i])
		}
	}
}

func TestParseWith(t *testing.T) {
	b, file, errs := parseSrc(t, "with (obj) x;")
	if errs != 0 {
		t.Fatalf("got %d errors", errs)
	}
	stmt := b.Stmts.Get(b.Files.Get(file).Body[0])
	if stmt.Kind != ast.StmtWith || !stmt.Right.IsValid() || !stmt.Cons.IsValid() {
		t.Fatalf("got %+v, want a with statement", stmt)
	}
}

func TestParseStopsOnFirstError(t *testing.T) {
	// A malformed var declaration is fatal: the parser does not resync
	// and attempt the trailing "x;" as a second statement.
	b, file, errs := parseSrc(t, "var ; x;")
	if errs == 0 {
		t.Fatalf("want an error for a malformed var declaration")
	}
	if got := len(b.Files.Get(file).Body); got != 0 {
		t.Fatalf("got %d statements, want 0 — parse is fatal on the first error", got)
	}
}

func TestParseForInWithMultipleDeclaratorsErrors(t *testing.T) {
	_, _, errs := parseSrc(t, "for (var a, b in obj) ;")
	if errs == 0 {
		t.Fatalf("want an error: for-in requires exactly one declarator")
	}
}

// binaryShape renders a binary/logical expression tree as "op(left,right)",
// a literal/ident leaf as its text, so a precedence-climbing result can be
// asserted against an exact expected shape instead of just node counts.
func binaryShape(t *testing.T, b *ast.Builder, id ast.ExprID) string {
	t.Helper()
	e := b.Exprs.Get(id)
	switch e.Kind {
	case ast.ExprBinary, ast.ExprLogical:
		return e.Op.String() + "(" + binaryShape(t, b, e.Left) + "," + binaryShape(t, b, e.Right) + ")"
	case ast.ExprIdent, ast.ExprNumberLit:
		return e.Text
	default:
		t.Fatalf("unexpected expr kind %v in binary shape", e.Kind)
		return ""
	}
}

func TestParsePrecedenceArithmeticBeforeEquality(t *testing.T) {
	// "1 + 2 * 3 == 7" must group as "==(+(1,*(2,3)),7)": * binds tighter
	// than +, and + binds tighter than ==.
	b, file, errs := parseSrc(t, "1 + 2 * 3 == 7;")
	if errs != 0 {
		t.Fatalf("got %d errors", errs)
	}
	stmt := b.Stmts.Get(b.Files.Get(file).Body[0])
	got := binaryShape(t, b, stmt.Expr)
	want := "==(+(1,*(2,3)),7)"
	if got != want {
		t.Fatalf("got shape %s, want %s", got, want)
	}
}

func TestParseLogicalAndOrShareOnePrecedenceLevel(t *testing.T) {
	// '&&' and '||' sit at the same precedence level, left-associative,
	// so "a || b && c" groups as "(a || b) && c", not "a || (b && c)".
	b, file, errs := parseSrc(t, "a || b && c;")
	if errs != 0 {
		t.Fatalf("got %d errors", errs)
	}
	stmt := b.Stmts.Get(b.Files.Get(file).Body[0])
	got := binaryShape(t, b, stmt.Expr)
	want := "&&(||(a,b),c)"
	if got != want {
		t.Fatalf("got shape %s, want %s", got, want)
	}

	top := b.Exprs.Get(stmt.Expr)
	if top.Kind != ast.ExprLogical || top.Op != token.AndAnd {
		t.Fatalf("got top node %+v, want a logical '&&' at the root", top)
	}
	left := b.Exprs.Get(top.Left)
	if left.Kind != ast.ExprLogical || left.Op != token.OrOr {
		t.Fatalf("got left operand %+v, want a logical '||'", left)
	}
}

func TestParseAsiSplitsNewlineSeparatedAssignments(t *testing.T) {
	// With no semicolon between them, a newline-separated "a = b" and
	// "c = d" are two separate expression statements, not one sequence.
	b, file, errs := parseSrc(t, "a = b\nc = d")
	if errs != 0 {
		t.Fatalf("got %d errors", errs)
	}
	kinds := bodyKinds(t, b, file)
	want := []ast.StmtKind{ast.StmtExpr, ast.StmtExpr}
	if len(kinds) != len(want) {
		t.Fatalf("got %d statements %v, want 2 expression statements", len(kinds), kinds)
	}
	first := b.Exprs.Get(b.Stmts.Get(b.Files.Get(file).Body[0]).Expr)
	second := b.Exprs.Get(b.Stmts.Get(b.Files.Get(file).Body[1]).Expr)
	if first.Kind != ast.ExprAssign || first.Op != token.Assign {
		t.Errorf("got first stmt %+v, want a plain assignment", first)
	}
	if second.Kind != ast.ExprAssign || second.Op != token.Assign {
		t.Errorf("got second stmt %+v, want a plain assignment", second)
	}
}

func TestParseVarDeclSpanEndsAtInitializerNotNextToken(t *testing.T) {
	// After ASI silently ends a var statement (no explicit ';'), its span
	// must end at the last declarator's initializer, not bleed into
	// whatever token follows on the next line.
	b, file, errs := parseSrc(t, "var x = 1\ny;")
	if errs != 0 {
		t.Fatalf("got %d errors", errs)
	}
	body := b.Files.Get(file).Body
	if len(body) != 2 {
		t.Fatalf("got %d statements, want 2", len(body))
	}
	decl := b.Stmts.Get(body[0])
	init := b.Exprs.Get(decl.Decls[0].Init)
	if decl.Span.End != init.Span.End {
		t.Fatalf("got var-decl span end %d, want it to match initializer's end %d", decl.Span.End, init.Span.End)
	}
}
