package parser

import (
	"github.com/lineCode/mjs-1/internal/diag"
	"github.com/lineCode/mjs-1/internal/token"
)

// consumeSemicolon implements automatic semicolon insertion: a statement
// terminator is satisfied by an explicit ';', by the current token being
// '}' or EOF, or by a line terminator having been skipped to reach the
// current token. Only when none of those hold is a missing ';' an error.
func (p *Parser) consumeSemicolon() bool {
	if p.at(token.Semicolon) {
		p.advance()
		return true
	}
	if p.at(token.RBrace) || p.at(token.EOF) || p.cur.PrecededByLineTerminator {
		return true
	}
	p.errorHere(diag.SynExpectSemicolon, "expected ';'")
	return false
}

// restrictedProductionBlocked reports whether a line terminator was
// skipped before the current token. 'return', 'continue' and 'break'
// then treat their optional trailing operand as absent; 'throw' reports
// a line terminator before its argument as an error.
func (p *Parser) restrictedProductionBlocked() bool {
	return p.cur.PrecededByLineTerminator
}
