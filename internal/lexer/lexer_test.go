package lexer

import (
	"testing"

	"github.com/lineCode/mjs-1/internal/source"
	"github.com/lineCode/mjs-1/internal/token"
)

func scanAll(t *testing.T, src string) []token.Token {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.mjs", []byte(src))
	lx := New(fs.Get(id), Options{})
	var toks []token.Token
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return toks
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestLexerKeywordsAndIdents(t *testing.T) {
	toks := scanAll(t, "var x = 1;")
	want := []token.Kind{token.KwVar, token.Ident, token.Assign, token.NumberLit, token.Semicolon, token.EOF}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLexerNumbers(t *testing.T) {
	cases := []string{"0", "123", "1.5", "1.", ".5", "1e10", "1.5e-3", "0xFF"}
	for _, src := range cases {
		toks := scanAll(t, src)
		if len(toks) != 2 || toks[0].Kind != token.NumberLit || toks[0].Text != src {
			t.Errorf("scan(%q) = %+v, want single NumberLit %q", src, toks, src)
		}
	}
}

func TestLexerStrings(t *testing.T) {
	toks := scanAll(t, `"hello\nworld" 'x'`)
	if toks[0].Kind != token.StringLit || toks[1].Kind != token.StringLit {
		t.Fatalf("got %v", kinds(toks))
	}
}

func TestLexerUnterminatedString(t *testing.T) {
	toks := scanAll(t, `"unterminated`)
	if toks[0].Kind != token.Invalid {
		t.Fatalf("got %v, want Invalid", toks[0].Kind)
	}
}

func TestLexerOperators(t *testing.T) {
	toks := scanAll(t, ">>>= >>> <<= == != <= >= && || ++ -- ===")
	got := kinds(toks)
	want := []token.Kind{
		token.UShrAssign, token.UShr, token.ShlAssign, token.EqEq, token.BangEq,
		token.LtEq, token.GtEq, token.AndAnd, token.OrOr, token.PlusPlus, token.MinusMinus,
		// "===" lexes as EqEq followed by Assign: this dialect has no strict-equality operator.
		token.EqEq, token.Assign, token.EOF,
	}
	if len(got) != len(want) {
		t.Fatalf("got %v (%d), want %v (%d)", got, len(got), want, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLexerLineTerminatorTracking(t *testing.T) {
	toks := scanAll(t, "a\nb")
	if toks[0].PrecededByLineTerminator {
		t.Errorf("first token should not be marked as preceded by a line terminator")
	}
	if !toks[1].PrecededByLineTerminator {
		t.Errorf("second token should be marked as preceded by a line terminator")
	}
}

func TestLexerCommentsAreSkipped(t *testing.T) {
	toks := scanAll(t, "a // comment\n/* block */ b")
	got := kinds(toks)
	want := []token.Kind{token.Ident, token.Ident, token.EOF}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	if !toks[1].PrecededByLineTerminator {
		t.Errorf("b should be marked as preceded by a line terminator (line comment ends in newline)")
	}
}

func TestLexerRegexVsDivision(t *testing.T) {
	toks := scanAll(t, "a / b")
	if toks[1].Kind != token.Slash {
		t.Errorf("after an identifier, '/' should lex as division, got %v", toks[1].Kind)
	}

	toks = scanAll(t, "return /abc/")
	if toks[1].Kind != token.RegexLit {
		t.Errorf("after 'return', '/' should start a regex literal, got %v", toks[1].Kind)
	}
}
