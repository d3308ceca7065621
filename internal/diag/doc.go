// Package diag defines the diagnostic model shared by the lexer, parser,
// and heap: a Diagnostic carries a severity, a stable Code, a message, a
// primary source.Span, and optional notes.
//
// Producers emit through a Reporter rather than writing to a Bag
// directly. BagReporter accumulates diagnostics into a Bag, which
// supports sorting and deduplication; DedupReporter wraps another
// Reporter to suppress repeats before they reach it. Format renders a
// slice of diagnostics into a stable, single-line-per-entry form for
// CLI output and golden test fixtures.
package diag
