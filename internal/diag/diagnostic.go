package diag

import "github.com/lineCode/mjs-1/internal/source"

// Note is a secondary span attached to a Diagnostic for extra context.
type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic is one reported problem: a syntax error, an allocation
// failure surfaced to a caller, or (in debug builds) an internal
// invariant violation.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
}
