package token

// keywords maps reserved-word text to its Kind. Anything absent from
// this table that scans as an identifier lexes as Ident.
var keywords = map[string]Kind{
	"this":     KwThis,
	"var":      KwVar,
	"if":       KwIf,
	"else":     KwElse,
	"while":    KwWhile,
	"for":      KwFor,
	"in":       KwIn,
	"continue": KwContinue,
	"break":    KwBreak,
	"return":   KwReturn,
	"with":     KwWith,
	"function": KwFunction,
	"new":      KwNew,
	"delete":   KwDelete,
	"void":     KwVoid,
	"typeof":   KwTypeof,
	"do":       KwDo,
	"switch":   KwSwitch,
	"case":     KwCase,
	"default":  KwDefault,
	"throw":    KwThrow,
	"try":      KwTry,
	"catch":    KwCatch,
	"finally":  KwFinally,
	"true":     BooleanLit,
	"false":    BooleanLit,
	"null":     NullLit,
}

// LookupKeyword returns the Kind for a reserved word, or (Ident, false)
// if text is an ordinary identifier.
func LookupKeyword(text string) (Kind, bool) {
	k, ok := keywords[text]
	if !ok {
		return Ident, false
	}
	return k, true
}
