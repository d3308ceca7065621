// Package driver wires the lexer, parser, and heap together for the
// CLI: one FileSet/Builder/Heap triple per source file, never shared
// across goroutines.
package driver

import (
	"github.com/lineCode/mjs-1/internal/ast"
	"github.com/lineCode/mjs-1/internal/diag"
	"github.com/lineCode/mjs-1/internal/heap"
	"github.com/lineCode/mjs-1/internal/lexer"
	"github.com/lineCode/mjs-1/internal/parser"
	"github.com/lineCode/mjs-1/internal/source"
	"github.com/lineCode/mjs-1/internal/token"
)

// TokenizeResult holds every token scanned from one file, plus whatever
// lexical diagnostics fired along the way.
type TokenizeResult struct {
	FileSet *source.FileSet
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize lexes path to completion without parsing it.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	bag := diag.NewBag(maxDiagnostics)
	reporter := diag.NewDedupReporter(diag.BagReporter{Bag: bag})
	lx := lexer.New(fs.Get(id), lexer.Options{Reporter: reporter})

	var toks []token.Token
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return &TokenizeResult{FileSet: fs, Tokens: toks, Bag: bag}, nil
}

// ParseResult holds one file's parse: its FileSet and Builder (both
// needed to resolve the node IDs in File), plus the diagnostics raised.
type ParseResult struct {
	FileSet *source.FileSet
	Builder *ast.Builder
	File    ast.FileID
	Bag     *diag.Bag
}

// ParseFile lexes and parses path, per spec.md's fatal-on-first-error
// contract: the parser reports at most one syntax error, and File's body
// is whatever was parsed before that error (possibly empty). Bag also
// holds any lexical errors raised for the tokens scanned before the
// parse stopped.
func ParseFile(path string, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	bag := diag.NewBag(maxDiagnostics)
	reporter := diag.Reporter(diag.NewDedupReporter(diag.BagReporter{Bag: bag}))

	lx := lexer.New(fs.Get(id), lexer.Options{Reporter: reporter})
	b := ast.NewBuilder(ast.Hints{})
	res := parser.ParseFile(fs, lx, b, parser.Options{Reporter: reporter})

	return &ParseResult{FileSet: fs, Builder: b, File: res.File, Bag: bag}, nil
}

// NewScratchHeap constructs a heap sized for ad-hoc CLI use (inspect,
// REPL-style experiments) rather than a real program's working set.
func NewScratchHeap(capacitySlots uint32) *heap.Heap {
	return heap.NewHeap(capacitySlots)
}
