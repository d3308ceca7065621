package source

import "slices"

// StringID is a stable handle for an interned string (identifier text,
// string-literal payload). NoStringID never holds content.
type StringID uint32

const NoStringID StringID = 0

// Interner deduplicates strings and hands out cheap 32-bit StringIDs;
// heap string objects and string Values store these ids instead of
// text. The lexer and the AST keep plain strings and do not use it.
type Interner struct {
	byID  []string
	index map[string]StringID
}

func NewInterner() *Interner {
	return &Interner{
		byID:  []string{""},
		index: map[string]StringID{"": 0},
	}
}

// Intern returns the stable ID for s, interning it on first sight.
func (in *Interner) Intern(s string) StringID {
	if id, ok := in.index[s]; ok {
		return id
	}
	cpy := string([]byte(s)) // own copy, independent of caller's buffer
	id := StringID(len(in.byID))
	in.byID = append(in.byID, cpy)
	in.index[cpy] = id
	return id
}

func (in *Interner) InternBytes(b []byte) StringID {
	return in.Intern(string(b))
}

func (in *Interner) Lookup(id StringID) (string, bool) {
	if !in.Has(id) {
		return "", false
	}
	return in.byID[id], true
}

func (in *Interner) MustLookup(id StringID) string {
	s, ok := in.Lookup(id)
	if !ok {
		panic("source: invalid string ID")
	}
	return s
}

func (in *Interner) Has(id StringID) bool {
	return int(id) >= 0 && int(id) < len(in.byID)
}

func (in *Interner) Len() int {
	return len(in.byID)
}

func (in *Interner) Snapshot() []string {
	return slices.Clone(in.byID)
}
