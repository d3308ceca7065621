package ast

import (
	"testing"

	"github.com/lineCode/mjs-1/internal/source"
)

func TestArenaAllocateAndGet(t *testing.T) {
	a := NewArena[string](0)
	id1 := a.Allocate("one")
	id2 := a.Allocate("two")
	if id1 == id2 {
		t.Fatalf("Allocate returned duplicate IDs: %d, %d", id1, id2)
	}
	if got := *a.Get(id1); got != "one" {
		t.Errorf("Get(%d) = %q, want %q", id1, got, "one")
	}
	if got := *a.Get(id2); got != "two" {
		t.Errorf("Get(%d) = %q, want %q", id2, got, "two")
	}
}

func TestArenaZeroIDIsNil(t *testing.T) {
	a := NewArena[string](0)
	if a.Get(0) != nil {
		t.Errorf("Get(0) should be nil, the zero ID must never be a valid node")
	}
}

func TestArenaLen(t *testing.T) {
	a := NewArena[int](0)
	if a.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", a.Len())
	}
	a.Allocate(1)
	a.Allocate(2)
	if a.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", a.Len())
	}
}

func TestBuilderRoundTrip(t *testing.T) {
	b := NewBuilder(Hints{})
	lit := b.NewExpr(Expr{Kind: ExprNumberLit, Text: "1"})
	ret := b.NewStmt(Stmt{Kind: StmtReturn, Expr: lit})
	file := b.NewFile(source.Span{})
	b.SetBody(file, []StmtID{ret})

	if got := b.Exprs.Get(lit).Text; got != "1" {
		t.Errorf("Exprs.Get(lit).Text = %q, want %q", got, "1")
	}
	if got := b.Stmts.Get(ret).Expr; got != lit {
		t.Errorf("Stmts.Get(ret).Expr = %d, want %d", got, lit)
	}
	if got := b.Files.Get(file).Body; len(got) != 1 || got[0] != ret {
		t.Errorf("Files.Get(file).Body = %v, want [%d]", got, ret)
	}
}
