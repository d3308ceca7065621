package lexer

import (
	"github.com/lineCode/mjs-1/internal/diag"
	"github.com/lineCode/mjs-1/internal/token"
)

// scanString scans a single- or double-quoted string literal, supporting
// the standard backslash escapes plus \xNN and \uNNNN. A bare newline
// inside the literal is an error rather than being consumed as part of
// the string.
func (lx *Lexer) scanString(quote byte) token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening quote

	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch {
		case b == quote:
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.StringLit, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		case b == '\\':
			lx.scanEscape()
		case b == '\n':
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexUnterminatedString, sp, "newline in string literal")
			return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		default:
			lx.cursor.Bump()
		}
	}

	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedString, sp, "unterminated string literal")
	return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

// scanEscape consumes a backslash escape sequence starting at the
// cursor. Malformed \x or \u escapes are reported but do not abort the
// enclosing literal scan.
func (lx *Lexer) scanEscape() {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '\'
	if lx.cursor.EOF() {
		return
	}
	switch b := lx.cursor.Bump(); b {
	case 'x':
		for i := 0; i < 2; i++ {
			if !isHex(lx.cursor.Peek()) {
				lx.errLex(diag.LexBadEscape, lx.cursor.SpanFrom(start), "invalid \\x escape")
				return
			}
			lx.cursor.Bump()
		}
	case 'u':
		for i := 0; i < 4; i++ {
			if !isHex(lx.cursor.Peek()) {
				lx.errLex(diag.LexBadEscape, lx.cursor.SpanFrom(start), "invalid \\u escape")
				return
			}
			lx.cursor.Bump()
		}
	default:
		// \n \t \r \\ \' \" \0 and any other single-char escape.
	}
}
