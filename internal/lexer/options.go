package lexer

import (
	"github.com/lineCode/mjs-1/internal/diag"
	"github.com/lineCode/mjs-1/internal/source"
)

// Options configures a Lexer. Reporter may be nil, in which case lexical
// errors are silently skipped and scanning continues on a best-effort basis.
type Options struct {
	Reporter diag.Reporter
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}
