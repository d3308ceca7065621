package ast

import "github.com/lineCode/mjs-1/internal/source"

type StmtKind uint8

const (
	StmtBlock StmtKind = iota
	StmtVarDecl
	StmtEmpty
	StmtExpr
	StmtIf
	StmtDoWhile
	StmtWhile
	StmtFor
	StmtForIn
	StmtContinue
	StmtBreak
	StmtReturn
	StmtWith
	StmtLabeled
	StmtSwitch
	StmtThrow
	StmtTry
	StmtFunctionDecl
)

// VarDeclarator is one binding of a var declaration: "x" or "x = init".
type VarDeclarator struct {
	Name string
	Init ExprID // NoExprID if uninitialized
}

// SwitchCase is one "case test: body" or, when Test is NoExprID, the
// "default:" clause.
type SwitchCase struct {
	Test ExprID
	Body []StmtID
}

// Stmt is a single AST statement node. Which fields are meaningful is
// determined by Kind; see the comment on each field.
type Stmt struct {
	Kind StmtKind
	Span source.Span

	// Labeled.Label; Continue/Break's target label (empty if unlabeled).
	Label string

	// Block.Body.
	Body []StmtID

	// VarDecl.Declarations, and For.Init when the loop declares its
	// induction variable with "var".
	Decls []VarDeclarator

	// ExprStmt.Expr, and Return/Throw.Argument (NoExprID means no
	// argument/expression).
	Expr ExprID

	// If/While/DoWhile/For/Switch's controlling expression.
	Test ExprID
	// If.Consequent; While/DoWhile/For/ForIn/With/Labeled's body;
	// Try.Block.
	Cons StmtID
	// If.Alternate.
	Alt StmtID

	// For.Init, when an expression rather than a "var" declaration.
	Init ExprID
	// For.Update.
	Update ExprID

	// ForIn.Left, when a plain reference target.
	Left ExprID
	// ForIn.Left, when declared inline ("for (var x in y)").
	LeftDecl *VarDeclarator
	// ForIn.Right; With.Object.
	Right ExprID

	// Switch.Cases.
	Cases []SwitchCase

	// Try.CatchParam; empty if the catch clause binds no parameter.
	CatchParam string
	// Try.CatchBlock (NoStmtID if there is no catch clause).
	Catch StmtID
	// Try.FinallyBlock (NoStmtID if there is no finally clause).
	Finally StmtID

	// FunctionDecl payload.
	Fn *FunctionLiteral
}

type Stmts struct {
	arena *Arena[Stmt]
}

func NewStmts(capHint uint) *Stmts {
	return &Stmts{arena: NewArena[Stmt](capHint)}
}

func (s *Stmts) New(node Stmt) StmtID {
	return StmtID(s.arena.Allocate(node))
}

func (s *Stmts) Get(id StmtID) *Stmt {
	return s.arena.Get(uint32(id))
}

func (s *Stmts) Len() uint32 {
	return s.arena.Len()
}
