package token

import "github.com/lineCode/mjs-1/internal/source"

// Token is a single lexical unit with its source location and raw text.
type Token struct {
	Kind Kind
	Span source.Span
	Text string

	// PrecededByLineTerminator records whether the lexer skipped at
	// least one newline (inside whitespace or comment trivia) while
	// scanning from the previous token up to this one. The parser's
	// ASI rule and the postfix ++/-- restriction both consult this.
	PrecededByLineTerminator bool
}

func (t Token) IsLiteral() bool { return t.Kind.IsLiteral() }
func (t Token) IsKeyword() bool { return t.Kind.IsKeyword() }
func (t Token) IsIdent() bool   { return t.Kind == Ident }
