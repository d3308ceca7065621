package token

import "testing"

func TestLookupKeyword(t *testing.T) {
	cases := []struct {
		text string
		kind Kind
		ok   bool
	}{
		{"function", KwFunction, true},
		{"typeof", KwTypeof, true},
		{"true", BooleanLit, true},
		{"null", NullLit, true},
		{"do", KwDo, true},
		{"switch", KwSwitch, true},
		{"case", KwCase, true},
		{"default", KwDefault, true},
		{"throw", KwThrow, true},
		{"try", KwTry, true},
		{"catch", KwCatch, true},
		{"finally", KwFinally, true},
		{"foo", Ident, false},
	}
	for _, c := range cases {
		k, ok := LookupKeyword(c.text)
		if ok != c.ok {
			t.Errorf("LookupKeyword(%q) ok = %v, want %v", c.text, ok, c.ok)
			continue
		}
		if ok && k != c.kind {
			t.Errorf("LookupKeyword(%q) = %v, want %v", c.text, k, c.kind)
		}
	}
}
