package parser

import (
	"github.com/lineCode/mjs-1/internal/ast"
	"github.com/lineCode/mjs-1/internal/diag"
	"github.com/lineCode/mjs-1/internal/lexer"
	"github.com/lineCode/mjs-1/internal/source"
	"github.com/lineCode/mjs-1/internal/token"
)

// Options configures a parse. Per the core's failure semantics a syntax
// error is fatal to the whole parse — there is no error cap here. A cap
// on how many *files* a multi-file run accepts lives one layer up, in
// the CLI driver's own options, not here.
type Options struct {
	Reporter diag.Reporter
}

// Result is the outcome of parsing one file.
type Result struct {
	File ast.FileID
	Errs uint
}

// Parser holds the state of a single-file parse: a one-token lookahead
// over the lexer's stream (plus a one-token peek buffer for label
// disambiguation), the AST arenas new nodes are allocated into, and an
// error counter that, once nonzero, makes every remaining parse step a
// no-op unwind back to ParseFile — syntax errors are fatal, not resynced.
type Parser struct {
	lx   *lexer.Lexer
	fs   *source.FileSet
	b    *ast.Builder
	opts Options

	cur    token.Token
	peeked *token.Token
	errs   uint
}

// ParseFile is the entry point: it drives lx to completion, allocating
// nodes into b, and returns the resulting ast.FileID.
func ParseFile(fs *source.FileSet, lx *lexer.Lexer, b *ast.Builder, opts Options) Result {
	p := &Parser{lx: lx, fs: fs, b: b, opts: opts}
	p.cur = lx.Next()

	start := p.cur.Span
	body := p.parseStmtList(token.EOF)
	file := b.NewFile(start.Cover(p.cur.Span))
	b.SetBody(file, body)

	return Result{File: file, Errs: p.errs}
}

func (p *Parser) at(k token.Kind) bool { return p.cur.Kind == k }

func (p *Parser) atAny(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.cur.Kind == k {
			return true
		}
	}
	return false
}

// advance returns the current token and fetches the next one.
func (p *Parser) advance() token.Token {
	t := p.cur
	if p.peeked != nil {
		p.cur = *p.peeked
		p.peeked = nil
	} else {
		p.cur = p.lx.Next()
	}
	return t
}

// peekNext looks one token past cur without consuming cur, caching the
// result so the next advance reuses it instead of re-lexing.
func (p *Parser) peekNext() token.Token {
	if p.peeked == nil {
		t := p.lx.Next()
		p.peeked = &t
	}
	return *p.peeked
}

// expect consumes the current token if it has kind k, else reports code
// and returns the zero Token with ok = false.
func (p *Parser) expect(k token.Kind, code diag.Code, msg string) (token.Token, bool) {
	if !p.at(k) {
		p.errorHere(code, msg)
		return token.Token{}, false
	}
	return p.advance(), true
}

func (p *Parser) errorHere(code diag.Code, msg string) {
	p.errorAt(code, p.cur.Span, msg)
}

func (p *Parser) errorAt(code diag.Code, sp source.Span, msg string) {
	p.errs++
	if p.opts.Reporter != nil {
		diag.ReportError(p.opts.Reporter, code, sp, msg).Emit()
	}
}

// stopped reports whether a syntax error has already been raised. The
// parser does not attempt recovery: once true, callers unwind rather
// than continue consuming tokens.
func (p *Parser) stopped() bool {
	return p.errs > 0
}

// exprSpan and stmtSpan fetch a node's span back out of the arena; the
// parser builds every span by covering a start token with one of these.
func (p *Parser) exprSpan(id ast.ExprID) source.Span { return p.b.Exprs.Get(id).Span }
func (p *Parser) stmtSpan(id ast.StmtID) source.Span { return p.b.Stmts.Get(id).Span }
