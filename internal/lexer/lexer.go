package lexer

import (
	"github.com/lineCode/mjs-1/internal/diag"
	"github.com/lineCode/mjs-1/internal/source"
	"github.com/lineCode/mjs-1/internal/token"
)

// Lexer turns a source.File into a stream of token.Token values. It skips
// whitespace and comments itself, recording only whether a line
// terminator was crossed since the previous significant token — that bit
// is what the parser's automatic-semicolon-insertion rule consults.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options

	// prevSignificant is the kind of the last token returned by Next,
	// used to disambiguate '/' as division versus the start of a regex
	// literal: a regex cannot follow an identifier, literal, or a token
	// that closes a grouping.
	prevSignificant token.Kind
	havePrev        bool
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{file: file, cursor: NewCursor(file), opts: opts}
}

// Next scans and returns the next significant token, with
// PrecededByLineTerminator set if a newline was skipped to reach it.
func (lx *Lexer) Next() token.Token {
	sawNewline := lx.skipTrivia()

	if lx.cursor.EOF() {
		tok := token.Token{Kind: token.EOF, Span: lx.emptySpan(), PrecededByLineTerminator: sawNewline}
		lx.remember(tok)
		return tok
	}

	ch := lx.cursor.Peek()
	var tok token.Token
	switch {
	case isIdentStartByte(ch):
		tok = lx.scanIdentOrKeyword()
	case ch >= utf8RuneSelf:
		tok = lx.scanIdentOrKeyword()
	case isDec(ch):
		tok = lx.scanNumber()
	case ch == '.' && lx.isNumberAfterDot():
		tok = lx.scanNumber()
	case ch == '"' || ch == '\'':
		tok = lx.scanString(ch)
	case ch == '/' && lx.regexAllowed():
		tok = lx.scanRegex()
	default:
		tok = lx.scanOperatorOrPunct()
	}

	tok.PrecededByLineTerminator = sawNewline
	lx.remember(tok)
	return tok
}

func (lx *Lexer) remember(tok token.Token) {
	lx.prevSignificant = tok.Kind
	lx.havePrev = true
}

// regexAllowed implements the classic heuristic for disambiguating
// division from a regular-expression literal: a regex may start wherever
// an operand, not an operator, is expected.
func (lx *Lexer) regexAllowed() bool {
	if !lx.havePrev {
		return true
	}
	switch lx.prevSignificant {
	case token.Ident, token.NumberLit, token.StringLit, token.BooleanLit,
		token.NullLit, token.RegexLit, token.RParen, token.RBracket,
		token.KwThis, token.PlusPlus, token.MinusMinus:
		return false
	default:
		return true
	}
}

// skipTrivia consumes whitespace and comments, returning whether at
// least one line terminator was crossed.
func (lx *Lexer) skipTrivia() bool {
	sawNewline := false
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch {
		case b == ' ' || b == '\t' || b == '\r':
			lx.cursor.Bump()
		case b == '\n':
			sawNewline = true
			lx.cursor.Bump()
		case b == '/' && lx.peekIsLineComment():
			lx.cursor.Bump()
			lx.cursor.Bump()
			for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
				lx.cursor.Bump()
			}
		case b == '/' && lx.peekIsBlockComment():
			if lx.skipBlockComment() {
				sawNewline = true
			}
		default:
			return sawNewline
		}
	}
	return sawNewline
}

func (lx *Lexer) peekIsLineComment() bool {
	b0, b1, ok := lx.cursor.Peek2()
	return ok && b0 == '/' && b1 == '/'
}

func (lx *Lexer) peekIsBlockComment() bool {
	b0, b1, ok := lx.cursor.Peek2()
	return ok && b0 == '/' && b1 == '*'
}

// skipBlockComment consumes a /* ... */ run and reports whether it
// contained a newline (relevant for ASI, which treats a line comment but
// not a same-line block comment as a line break).
func (lx *Lexer) skipBlockComment() bool {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	lx.cursor.Bump()
	crossedNewline := false
	for !lx.cursor.EOF() {
		if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '*' && b1 == '/' {
			lx.cursor.Bump()
			lx.cursor.Bump()
			return crossedNewline
		}
		if lx.cursor.Peek() == '\n' {
			crossedNewline = true
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedBlockComment, sp, "unterminated block comment")
	return crossedNewline
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}
