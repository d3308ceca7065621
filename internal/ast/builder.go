package ast

import "github.com/lineCode/mjs-1/internal/source"

// Hints sizes a Builder's arenas up front to avoid reallocation churn
// while parsing a typically-sized source file.
type Hints struct{ Files, Stmts, Exprs uint }

// Builder owns the arenas for one parse and is the sole place new nodes
// are allocated. A *ast.File's StmtID/ExprID fields are only meaningful
// relative to the Builder that produced them.
type Builder struct {
	Files *Files
	Stmts *Stmts
	Exprs *Exprs
}

func NewBuilder(hints Hints) *Builder {
	if hints.Files == 0 {
		hints.Files = 1
	}
	if hints.Stmts == 0 {
		hints.Stmts = 1 << 8
	}
	if hints.Exprs == 0 {
		hints.Exprs = 1 << 8
	}
	return &Builder{
		Files: NewFiles(hints.Files),
		Stmts: NewStmts(hints.Stmts),
		Exprs: NewExprs(hints.Exprs),
	}
}

func (b *Builder) NewFile(sp source.Span) FileID {
	return b.Files.New(sp)
}

func (b *Builder) NewStmt(node Stmt) StmtID {
	return b.Stmts.New(node)
}

func (b *Builder) NewExpr(node Expr) ExprID {
	return b.Exprs.New(node)
}

func (b *Builder) SetBody(file FileID, body []StmtID) {
	b.Files.Get(file).Body = body
}
