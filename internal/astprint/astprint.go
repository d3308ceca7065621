// Package astprint dumps a parsed file's AST as an indented, s-expression
// style tree, for CLI inspection and golden-style tests.
package astprint

import (
	"fmt"
	"io"
	"strings"

	"github.com/lineCode/mjs-1/internal/ast"
)

// Printer walks a Builder's arenas and writes an indented tree to w.
type Printer struct {
	w      io.Writer
	b      *ast.Builder
	indent int
}

func NewPrinter(w io.Writer, b *ast.Builder) *Printer {
	return &Printer{w: w, b: b}
}

// File prints the top-level statement list of file.
func File(w io.Writer, b *ast.Builder, file ast.FileID) {
	p := NewPrinter(w, b)
	f := b.Files.Get(file)
	p.printf("file\n")
	p.indent++
	for _, s := range f.Body {
		p.stmt(s)
	}
	p.indent--
}

func (p *Printer) printf(format string, args ...any) {
	fmt.Fprint(p.w, strings.Repeat("  ", p.indent))
	fmt.Fprintf(p.w, format, args...)
}

var stmtNames = map[ast.StmtKind]string{
	ast.StmtBlock:       "block",
	ast.StmtVarDecl:     "var",
	ast.StmtEmpty:       "empty",
	ast.StmtExpr:        "expr-stmt",
	ast.StmtIf:          "if",
	ast.StmtDoWhile:     "do-while",
	ast.StmtWhile:       "while",
	ast.StmtFor:         "for",
	ast.StmtForIn:       "for-in",
	ast.StmtContinue:    "continue",
	ast.StmtBreak:       "break",
	ast.StmtReturn:      "return",
	ast.StmtWith:        "with",
	ast.StmtLabeled:     "labeled",
	ast.StmtSwitch:      "switch",
	ast.StmtThrow:       "throw",
	ast.StmtTry:         "try",
	ast.StmtFunctionDecl: "function-decl",
}

func (p *Printer) stmt(id ast.StmtID) {
	if !id.IsValid() {
		return
	}
	s := p.b.Stmts.Get(id)
	name := stmtNames[s.Kind]

	switch s.Kind {
	case ast.StmtLabeled:
		p.printf("%s %q\n", name, s.Label)
	case ast.StmtFunctionDecl:
		p.printf("%s %q\n", name, s.Fn.Name)
	default:
		p.printf("%s\n", name)
	}

	p.indent++
	switch s.Kind {
	case ast.StmtBlock:
		for _, c := range s.Body {
			p.stmt(c)
		}
	case ast.StmtVarDecl:
		for _, d := range s.Decls {
			p.printf("decl %s\n", d.Name)
			p.indent++
			p.expr(d.Init)
			p.indent--
		}
	case ast.StmtExpr:
		p.expr(s.Expr)
	case ast.StmtIf:
		p.expr(s.Test)
		p.stmt(s.Cons)
		if s.Alt.IsValid() {
			p.stmt(s.Alt)
		}
	case ast.StmtDoWhile, ast.StmtWhile:
		p.expr(s.Test)
		p.stmt(s.Cons)
	case ast.StmtFor:
		p.expr(s.Init)
		for _, d := range s.Decls {
			p.printf("decl %s\n", d.Name)
		}
		p.expr(s.Test)
		p.expr(s.Update)
		p.stmt(s.Cons)
	case ast.StmtForIn:
		if s.LeftDecl != nil {
			p.printf("decl %s\n", s.LeftDecl.Name)
		} else {
			p.expr(s.Left)
		}
		p.expr(s.Right)
		p.stmt(s.Cons)
	case ast.StmtReturn, ast.StmtThrow:
		p.expr(s.Expr)
	case ast.StmtWith:
		p.expr(s.Right)
		p.stmt(s.Cons)
	case ast.StmtLabeled:
		p.stmt(s.Cons)
	case ast.StmtSwitch:
		p.expr(s.Test)
		for _, c := range s.Cases {
			if c.Test.IsValid() {
				p.printf("case\n")
			} else {
				p.printf("default\n")
			}
			p.indent++
			p.expr(c.Test)
			for _, cs := range c.Body {
				p.stmt(cs)
			}
			p.indent--
		}
	case ast.StmtTry:
		p.stmt(s.Cons)
		if s.Catch.IsValid() {
			p.printf("catch %q\n", s.CatchParam)
			p.indent++
			p.stmt(s.Catch)
			p.indent--
		}
		if s.Finally.IsValid() {
			p.printf("finally\n")
			p.indent++
			p.stmt(s.Finally)
			p.indent--
		}
	case ast.StmtFunctionDecl:
		for _, param := range s.Fn.Params {
			p.printf("param %s\n", param)
		}
		p.stmt(s.Fn.Body)
	}
	p.indent--
}

var exprNames = map[ast.ExprKind]string{
	ast.ExprIdent:       "ident",
	ast.ExprNumberLit:   "number",
	ast.ExprStringLit:   "string",
	ast.ExprBooleanLit:  "boolean",
	ast.ExprNullLit:     "null",
	ast.ExprRegexLit:    "regex",
	ast.ExprThis:        "this",
	ast.ExprArray:       "array",
	ast.ExprObject:      "object",
	ast.ExprFunction:    "function",
	ast.ExprUnary:       "unary",
	ast.ExprUpdate:      "update",
	ast.ExprBinary:      "binary",
	ast.ExprLogical:     "logical",
	ast.ExprAssign:      "assign",
	ast.ExprConditional: "conditional",
	ast.ExprMember:      "member",
	ast.ExprCall:        "call",
	ast.ExprNew:         "new",
	ast.ExprSequence:    "sequence",
}

func (p *Printer) expr(id ast.ExprID) {
	if !id.IsValid() {
		return
	}
	e := p.b.Exprs.Get(id)
	name := exprNames[e.Kind]

	switch e.Kind {
	case ast.ExprIdent, ast.ExprNumberLit, ast.ExprStringLit, ast.ExprBooleanLit, ast.ExprRegexLit:
		p.printf("%s %q\n", name, e.Text)
		return
	case ast.ExprNullLit, ast.ExprThis:
		p.printf("%s\n", name)
		return
	case ast.ExprUnary, ast.ExprUpdate, ast.ExprBinary, ast.ExprLogical, ast.ExprAssign:
		p.printf("%s %s\n", name, e.Op)
	default:
		p.printf("%s\n", name)
	}

	p.indent++
	switch e.Kind {
	case ast.ExprArray:
		for _, el := range e.Elements {
			p.expr(el)
		}
	case ast.ExprObject:
		for _, prop := range e.Props {
			if prop.Computed {
				p.printf("prop (computed)\n")
				p.indent++
				p.expr(prop.KeyExpr)
				p.indent--
			} else {
				p.printf("prop %s\n", prop.Key)
			}
			p.indent++
			p.expr(prop.Value)
			p.indent--
		}
	case ast.ExprFunction:
		for _, param := range e.Fn.Params {
			p.printf("param %s\n", param)
		}
		p.stmt(e.Fn.Body)
	case ast.ExprUnary, ast.ExprUpdate:
		p.expr(e.Operand)
	case ast.ExprBinary, ast.ExprLogical, ast.ExprAssign:
		p.expr(e.Left)
		p.expr(e.Right)
	case ast.ExprConditional:
		p.expr(e.Test)
		p.expr(e.Cons)
		p.expr(e.Alt)
	case ast.ExprMember:
		p.expr(e.Object)
		if e.Computed {
			p.expr(e.PropertyExpr)
		} else {
			p.printf("%s\n", e.PropertyName)
		}
	case ast.ExprCall, ast.ExprNew:
		p.expr(e.Callee)
		for _, a := range e.Args {
			p.expr(a)
		}
	case ast.ExprSequence:
		for _, sub := range e.Exprs {
			p.expr(sub)
		}
	}
	p.indent--
}
