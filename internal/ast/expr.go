package ast

import (
	"github.com/lineCode/mjs-1/internal/source"
	"github.com/lineCode/mjs-1/internal/token"
)

type ExprKind uint8

const (
	ExprIdent ExprKind = iota
	ExprNumberLit
	ExprStringLit
	ExprBooleanLit
	ExprNullLit
	ExprRegexLit
	ExprThis
	ExprArray
	ExprObject
	ExprFunction
	ExprUnary     // !x, -x, ~x, typeof x, void x, delete x
	ExprUpdate    // ++x, x++, --x, x--
	ExprBinary    // x + y, x == y, x in y, ...
	ExprLogical   // x && y, x || y
	ExprAssign    // x = y, x += y, ...
	ExprConditional
	ExprMember    // x.y, x[y]
	ExprCall
	ExprNew
	ExprSequence  // x, y, z
)

// ObjectProp is one key/value pair of an object literal.
type ObjectProp struct {
	Key      string
	Computed bool
	KeyExpr  ExprID // when Computed
	Value    ExprID
}

// FunctionLiteral is the shared payload of function expressions and
// function declarations. Name is empty for an anonymous expression.
type FunctionLiteral struct {
	Name   string
	Params []string
	Body   StmtID // a Block statement
}

// Expr is a single AST expression node. Which fields are meaningful is
// determined by Kind; see the comment on each field.
type Expr struct {
	Kind ExprKind
	Span source.Span

	// Ident.Name; the literal kinds' raw source text (NumberLit,
	// StringLit, RegexLit, BooleanLit).
	Text string

	// Unary/Update/Binary/Logical/Assign operator.
	Op token.Kind

	// Unary/Update operand.
	Operand ExprID

	// Binary/Logical/Assign left operand, or assignment target.
	Left ExprID
	// Binary/Logical/Assign right operand, or assigned value.
	Right ExprID

	// Conditional (a ? b : c).
	Test ExprID
	Cons ExprID
	Alt  ExprID

	// Update: true for prefix ++x/--x, false for postfix x++/x--.
	Prefix bool

	// Member.Object.
	Object ExprID
	// Member: true when indexed by PropertyExpr (x[y]), false when a
	// static name (x.y).
	Computed bool
	// Member.Property, when Computed.
	PropertyExpr ExprID
	// Member.Property, when !Computed.
	PropertyName string

	// Call/New.
	Callee ExprID
	Args   []ExprID

	// Array.Elements; NoExprID marks an elided element ([1,,3]).
	Elements []ExprID

	// Object.Properties.
	Props []ObjectProp

	// Sequence.Expressions (the comma operator).
	Exprs []ExprID

	// Function expression payload.
	Fn *FunctionLiteral
}

type Exprs struct {
	arena *Arena[Expr]
}

func NewExprs(capHint uint) *Exprs {
	return &Exprs{arena: NewArena[Expr](capHint)}
}

func (e *Exprs) New(node Expr) ExprID {
	return ExprID(e.arena.Allocate(node))
}

func (e *Exprs) Get(id ExprID) *Expr {
	return e.arena.Get(uint32(id))
}

func (e *Exprs) Len() uint32 {
	return e.arena.Len()
}
