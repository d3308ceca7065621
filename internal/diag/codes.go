package diag

import "fmt"

// Code is a compact numeric diagnostic identifier with a stable string
// form. Codes are grouped by the phase that raises them: lexical (1xxx),
// syntactic (2xxx), heap/runtime (4xxx), internal invariants (9xxx).
type Code uint16

const (
	UnknownCode Code = 0

	// Lexical.
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004
	LexBadEscape                Code = 1005
	LexUnterminatedRegex        Code = 1006

	// Syntactic.
	SynUnexpectedToken       Code = 2001
	SynUnclosedParen         Code = 2002
	SynUnclosedBrace         Code = 2003
	SynUnclosedBracket       Code = 2004
	SynExpectSemicolon       Code = 2005
	SynExpectIdentifier      Code = 2006
	SynExpectExpression      Code = 2007
	SynExpectColon           Code = 2008
	SynForMissingIn          Code = 2009
	SynForBadHeader          Code = 2010
	SynInvalidAssignTarget   Code = 2011
	SynIllegalBreak          Code = 2012
	SynIllegalContinue       Code = 2013
	SynIllegalReturn         Code = 2014
	SynDuplicateLabel        Code = 2015
	SynNewlineBeforeArrow    Code = 2016
	SynRestrictedNewline     Code = 2017

	// Heap / runtime.
	HeapOutOfMemory    Code = 4001
	HeapHandleInvalid  Code = 4002
	HeapHandleStale    Code = 4003

	// Internal invariants (debug-build assertions surfaced as diagnostics
	// instead of panics, so callers can recover and report).
	InternalInvariant Code = 9001
)

var codeTitle = map[Code]string{
	UnknownCode: "unknown error",

	LexUnknownChar:              "unknown character",
	LexUnterminatedString:       "unterminated string literal",
	LexUnterminatedBlockComment: "unterminated block comment",
	LexBadNumber:                "malformed numeric literal",
	LexBadEscape:                "invalid escape sequence",
	LexUnterminatedRegex:        "unterminated regular expression literal",

	SynUnexpectedToken:     "unexpected token",
	SynUnclosedParen:       "unclosed '('",
	SynUnclosedBrace:       "unclosed '{'",
	SynUnclosedBracket:     "unclosed '['",
	SynExpectSemicolon:     "expected ';'",
	SynExpectIdentifier:    "expected an identifier",
	SynExpectExpression:    "expected an expression",
	SynExpectColon:         "expected ':'",
	SynForMissingIn:        "expected 'in' in for-in header",
	SynForBadHeader:        "malformed for-loop header",
	SynInvalidAssignTarget: "invalid assignment target",
	SynIllegalBreak:        "'break' outside a loop or switch",
	SynIllegalContinue:     "'continue' outside a loop",
	SynIllegalReturn:       "'return' outside a function",
	SynDuplicateLabel:      "duplicate label",
	SynNewlineBeforeArrow:  "no line terminator allowed before '=>'",
	SynRestrictedNewline:   "no line terminator allowed here",

	HeapOutOfMemory:   "heap exhausted after collection",
	HeapHandleInvalid: "handle does not refer to a live object",
	HeapHandleStale:   "handle was not fixed up after a collection",

	InternalInvariant: "internal invariant violated",
}

// ID returns the stable textual form used in CLI output and golden files,
// e.g. "SYN2001".
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("HEAP%04d", ic)
	case ic >= 9000 && ic < 10000:
		return fmt.Sprintf("INT%04d", ic)
	}
	return "E0000"
}

// Title returns the short human-readable description of the code.
func (c Code) Title() string {
	if t, ok := codeTitle[c]; ok {
		return t
	}
	return codeTitle[UnknownCode]
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
