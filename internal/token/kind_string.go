package token

var kindNames = map[Kind]string{
	Invalid:        "invalid",
	EOF:            "eof",
	Whitespace:     "whitespace",
	LineTerminator: "line terminator",
	Comment:        "comment",
	Ident:          "identifier",
	KwThis:         "this",
	KwVar:          "var",
	KwIf:           "if",
	KwElse:         "else",
	KwWhile:        "while",
	KwFor:          "for",
	KwIn:           "in",
	KwContinue:     "continue",
	KwBreak:        "break",
	KwReturn:       "return",
	KwWith:         "with",
	KwFunction:     "function",
	KwNew:          "new",
	KwDelete:       "delete",
	KwVoid:         "void",
	KwTypeof:       "typeof",
	KwDo:           "do",
	KwSwitch:       "switch",
	KwCase:         "case",
	KwDefault:      "default",
	KwThrow:        "throw",
	KwTry:          "try",
	KwCatch:        "catch",
	KwFinally:      "finally",
	NumberLit:      "number",
	StringLit:      "string",
	BooleanLit:     "boolean",
	NullLit:        "null",
	RegexLit:       "regex",
	LParen:         "(",
	RParen:         ")",
	LBrace:         "{",
	RBrace:         "}",
	LBracket:       "[",
	RBracket:       "]",
	Dot:            ".",
	Comma:          ",",
	Colon:          ":",
	Semicolon:      ";",
	Question:       "?",
	Star:           "*",
	Slash:          "/",
	Percent:        "%",
	Plus:           "+",
	Minus:          "-",
	Shl:            "<<",
	Shr:            ">>",
	UShr:           ">>>",
	Lt:             "<",
	LtEq:           "<=",
	Gt:             ">",
	GtEq:           ">=",
	EqEq:           "==",
	BangEq:         "!=",
	Amp:            "&",
	Caret:          "^",
	Pipe:           "|",
	AndAnd:         "&&",
	OrOr:           "||",
	Assign:         "=",
	PlusAssign:     "+=",
	MinusAssign:    "-=",
	StarAssign:     "*=",
	SlashAssign:    "/=",
	PercentAssign:  "%=",
	AmpAssign:      "&=",
	PipeAssign:     "|=",
	CaretAssign:    "^=",
	ShlAssign:      "<<=",
	ShrAssign:      ">>=",
	UShrAssign:     ">>>=",
	PlusPlus:       "++",
	MinusMinus:     "--",
	Bang:           "!",
	Tilde:          "~",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}
