package token

import "testing"

func TestKindIsLiteral(t *testing.T) {
	for _, k := range []Kind{NumberLit, StringLit, BooleanLit, NullLit, RegexLit} {
		if !k.IsLiteral() {
			t.Errorf("%v.IsLiteral() = false, want true", k)
		}
	}
	if Plus.IsLiteral() {
		t.Errorf("Plus.IsLiteral() = true, want false")
	}
}

func TestKindIsKeyword(t *testing.T) {
	if !KwReturn.IsKeyword() {
		t.Errorf("KwReturn.IsKeyword() = false, want true")
	}
	if Ident.IsKeyword() {
		t.Errorf("Ident.IsKeyword() = true, want false")
	}
}

func TestKindIsKeywordCoversControlFlowAdditions(t *testing.T) {
	for _, k := range []Kind{KwDo, KwSwitch, KwCase, KwDefault, KwThrow, KwTry, KwCatch, KwFinally} {
		if !k.IsKeyword() {
			t.Errorf("%v.IsKeyword() = false, want true", k)
		}
	}
}

func TestKindIsAssignOp(t *testing.T) {
	for _, k := range []Kind{Assign, PlusAssign, ShrAssign, UShrAssign} {
		if !k.IsAssignOp() {
			t.Errorf("%v.IsAssignOp() = false, want true", k)
		}
	}
	if EqEq.IsAssignOp() {
		t.Errorf("EqEq.IsAssignOp() = true, want false")
	}
}

func TestKindString(t *testing.T) {
	if got, want := Plus.String(), "+"; got != want {
		t.Errorf("Plus.String() = %q, want %q", got, want)
	}
	if got, want := Kind(255).String(), "unknown"; got != want {
		t.Errorf("Kind(255).String() = %q, want %q", got, want)
	}
}
