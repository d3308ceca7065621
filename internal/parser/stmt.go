package parser

import (
	"github.com/lineCode/mjs-1/internal/ast"
	"github.com/lineCode/mjs-1/internal/diag"
	"github.com/lineCode/mjs-1/internal/source"
	"github.com/lineCode/mjs-1/internal/token"
)

// parseStmtList parses statements until the current token is stop or
// EOF. A syntax error in any statement is fatal to the whole parse: the
// list returned so far is handed back unfinished and the caller unwinds.
func (p *Parser) parseStmtList(stop token.Kind) []ast.StmtID {
	var body []ast.StmtID
	for !p.at(stop) && !p.at(token.EOF) && !p.stopped() {
		stmt, ok := p.parseStmt()
		if !ok {
			break
		}
		body = append(body, stmt)
	}
	return body
}

func (p *Parser) parseStmt() (ast.StmtID, bool) {
	switch p.cur.Kind {
	case token.LBrace:
		return p.parseBlock()
	case token.KwVar:
		return p.parseVarDeclStmt()
	case token.Semicolon:
		tok := p.advance()
		return p.b.NewStmt(ast.Stmt{Kind: ast.StmtEmpty, Span: tok.Span}), true
	case token.KwIf:
		return p.parseIf()
	case token.KwDo:
		return p.parseDoWhile()
	case token.KwWhile:
		return p.parseWhile()
	case token.KwFor:
		return p.parseFor()
	case token.KwContinue:
		return p.parseContinueOrBreak(ast.StmtContinue)
	case token.KwBreak:
		return p.parseContinueOrBreak(ast.StmtBreak)
	case token.KwReturn:
		return p.parseReturn()
	case token.KwWith:
		return p.parseWith()
	case token.KwSwitch:
		return p.parseSwitch()
	case token.KwThrow:
		return p.parseThrow()
	case token.KwTry:
		return p.parseTry()
	case token.KwFunction:
		return p.parseFunctionDecl()
	case token.Ident:
		if p.peekNext().Kind == token.Colon {
			return p.parseLabeled()
		}
		return p.parseExprStmt()
	default:
		return p.parseExprStmt()
	}
}

func (p *Parser) parseBlock() (ast.StmtID, bool) {
	open, ok := p.expect(token.LBrace, diag.SynUnclosedBrace, "expected '{'")
	if !ok {
		return ast.NoStmtID, false
	}
	body := p.parseStmtList(token.RBrace)
	closeTok, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close block")
	if !ok {
		return ast.NoStmtID, false
	}
	sp := open.Span.Cover(closeTok.Span)
	return p.b.NewStmt(ast.Stmt{Kind: ast.StmtBlock, Span: sp, Body: body}), true
}

// parseVarDeclarators parses a comma-separated "name (= init)?" list
// without consuming a trailing terminator, shared by var statements and
// the init clause of a classic for-loop. The returned span covers the
// last declarator only (its name, or its initializer if present), not
// any terminator — callers that need the terminator folded in (a ';'
// or the ASI-skipped token before it) cover it themselves.
func (p *Parser) parseVarDeclarators(allowIn bool) ([]ast.VarDeclarator, source.Span, bool) {
	var decls []ast.VarDeclarator
	var last source.Span
	for {
		name, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected variable name")
		if !ok {
			return nil, source.Span{}, false
		}
		init := ast.NoExprID
		last = name.Span
		if p.at(token.Assign) {
			p.advance()
			e, ok := p.parseAssign(allowIn)
			if !ok {
				return nil, source.Span{}, false
			}
			init = e
			last = p.exprSpan(e)
		}
		decls = append(decls, ast.VarDeclarator{Name: name.Text, Init: init})
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	return decls, last, true
}

func (p *Parser) parseVarDeclStmt() (ast.StmtID, bool) {
	kwTok := p.advance() // 'var'
	decls, last, ok := p.parseVarDeclarators(true)
	if !ok {
		return ast.NoStmtID, false
	}
	if !p.consumeSemicolon() {
		return ast.NoStmtID, false
	}
	return p.b.NewStmt(ast.Stmt{Kind: ast.StmtVarDecl, Span: kwTok.Span.Cover(last), Decls: decls}), true
}

func (p *Parser) parseExprStmt() (ast.StmtID, bool) {
	expr, ok := p.parseExpr(true)
	if !ok {
		return ast.NoStmtID, false
	}
	if !p.consumeSemicolon() {
		return ast.NoStmtID, false
	}
	return p.b.NewStmt(ast.Stmt{Kind: ast.StmtExpr, Span: p.exprSpan(expr), Expr: expr}), true
}

func (p *Parser) parseLabeled() (ast.StmtID, bool) {
	labelTok := p.advance()
	p.advance() // ':'
	body, ok := p.parseStmt()
	if !ok {
		return ast.NoStmtID, false
	}
	sp := labelTok.Span.Cover(p.stmtSpan(body))
	return p.b.NewStmt(ast.Stmt{Kind: ast.StmtLabeled, Span: sp, Label: labelTok.Text, Cons: body}), true
}

func (p *Parser) parseIf() (ast.StmtID, bool) {
	ifTok := p.advance()
	if _, ok := p.expect(token.LParen, diag.SynUnclosedParen, "expected '(' after 'if'"); !ok {
		return ast.NoStmtID, false
	}
	test, ok := p.parseExpr(true)
	if !ok {
		return ast.NoStmtID, false
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after if condition"); !ok {
		return ast.NoStmtID, false
	}
	cons, ok := p.parseStmt()
	if !ok {
		return ast.NoStmtID, false
	}
	alt := ast.NoStmtID
	endSpan := p.stmtSpan(cons)
	if p.at(token.KwElse) {
		p.advance()
		a, ok := p.parseStmt()
		if !ok {
			return ast.NoStmtID, false
		}
		alt = a
		endSpan = p.stmtSpan(alt)
	}
	sp := ifTok.Span.Cover(endSpan)
	return p.b.NewStmt(ast.Stmt{Kind: ast.StmtIf, Span: sp, Test: test, Cons: cons, Alt: alt}), true
}

func (p *Parser) parseWhile() (ast.StmtID, bool) {
	kwTok := p.advance()
	if _, ok := p.expect(token.LParen, diag.SynUnclosedParen, "expected '(' after 'while'"); !ok {
		return ast.NoStmtID, false
	}
	test, ok := p.parseExpr(true)
	if !ok {
		return ast.NoStmtID, false
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after while condition"); !ok {
		return ast.NoStmtID, false
	}
	body, ok := p.parseStmt()
	if !ok {
		return ast.NoStmtID, false
	}
	sp := kwTok.Span.Cover(p.stmtSpan(body))
	return p.b.NewStmt(ast.Stmt{Kind: ast.StmtWhile, Span: sp, Test: test, Cons: body}), true
}

func (p *Parser) parseDoWhile() (ast.StmtID, bool) {
	kwTok := p.advance() // 'do'
	body, ok := p.parseStmt()
	if !ok {
		return ast.NoStmtID, false
	}
	if _, ok := p.expect(token.KwWhile, diag.SynUnexpectedToken, "expected 'while' after 'do' body"); !ok {
		return ast.NoStmtID, false
	}
	if _, ok := p.expect(token.LParen, diag.SynUnclosedParen, "expected '(' after 'while'"); !ok {
		return ast.NoStmtID, false
	}
	test, ok := p.parseExpr(true)
	if !ok {
		return ast.NoStmtID, false
	}
	closeTok, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after do-while condition")
	if !ok {
		return ast.NoStmtID, false
	}
	// The trailing ';' after do-while is subject to ASI like any other.
	p.consumeSemicolon()
	sp := kwTok.Span.Cover(closeTok.Span)
	return p.b.NewStmt(ast.Stmt{Kind: ast.StmtDoWhile, Span: sp, Test: test, Cons: body}), true
}

// parseFor disambiguates a classic for(init;test;update) loop from a
// for-in loop by parsing the init/left clause with 'in' excluded from
// the expression grammar, then checking for KwIn.
func (p *Parser) parseFor() (ast.StmtID, bool) {
	kwTok := p.advance()
	if _, ok := p.expect(token.LParen, diag.SynUnclosedParen, "expected '(' after 'for'"); !ok {
		return ast.NoStmtID, false
	}

	if p.at(token.KwVar) {
		p.advance()
		first, _, ok := p.parseVarDeclarators(false)
		if !ok {
			return ast.NoStmtID, false
		}
		if p.at(token.KwIn) {
			if len(first) != 1 {
				p.errorHere(diag.SynForBadHeader, "for-in loop must declare exactly one variable")
				return ast.NoStmtID, false
			}
			return p.finishForIn(kwTok, nil, &first[0])
		}
		return p.finishClassicFor(kwTok, first, ast.NoExprID)
	}

	if p.at(token.Semicolon) {
		return p.finishClassicFor(kwTok, nil, ast.NoExprID)
	}

	left, ok := p.parseExpr(false)
	if !ok {
		return ast.NoStmtID, false
	}
	if p.at(token.KwIn) {
		return p.finishForIn(kwTok, &left, nil)
	}
	return p.finishClassicFor(kwTok, nil, left)
}

func (p *Parser) finishForIn(kwTok token.Token, left *ast.ExprID, leftDecl *ast.VarDeclarator) (ast.StmtID, bool) {
	p.advance() // 'in'
	right, ok := p.parseExpr(true)
	if !ok {
		return ast.NoStmtID, false
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after for-in header"); !ok {
		return ast.NoStmtID, false
	}
	body, ok := p.parseStmt()
	if !ok {
		return ast.NoStmtID, false
	}
	stmt := ast.Stmt{Kind: ast.StmtForIn, Span: kwTok.Span.Cover(p.stmtSpan(body)), Right: right, Cons: body, LeftDecl: leftDecl}
	if left != nil {
		stmt.Left = *left
	} else {
		stmt.Left = ast.NoExprID
	}
	return p.b.NewStmt(stmt), true
}

func (p *Parser) finishClassicFor(kwTok token.Token, decls []ast.VarDeclarator, initExpr ast.ExprID) (ast.StmtID, bool) {
	if _, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after for-loop initializer"); !ok {
		return ast.NoStmtID, false
	}
	test := ast.NoExprID
	if !p.at(token.Semicolon) {
		t, ok := p.parseExpr(true)
		if !ok {
			return ast.NoStmtID, false
		}
		test = t
	}
	if _, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after for-loop condition"); !ok {
		return ast.NoStmtID, false
	}
	update := ast.NoExprID
	if !p.at(token.RParen) {
		u, ok := p.parseExpr(true)
		if !ok {
			return ast.NoStmtID, false
		}
		update = u
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after for-loop header"); !ok {
		return ast.NoStmtID, false
	}
	body, ok := p.parseStmt()
	if !ok {
		return ast.NoStmtID, false
	}
	sp := kwTok.Span.Cover(p.stmtSpan(body))
	return p.b.NewStmt(ast.Stmt{
		Kind: ast.StmtFor, Span: sp, Decls: decls, Init: initExpr, Test: test, Update: update, Cons: body,
	}), true
}

func (p *Parser) parseContinueOrBreak(kind ast.StmtKind) (ast.StmtID, bool) {
	kwTok := p.advance()
	label := ""
	endSpan := kwTok.Span
	if p.at(token.Ident) && !p.restrictedProductionBlocked() {
		labelTok := p.advance()
		label = labelTok.Text
		endSpan = labelTok.Span
	}
	if !p.consumeSemicolon() {
		return ast.NoStmtID, false
	}
	return p.b.NewStmt(ast.Stmt{Kind: kind, Span: kwTok.Span.Cover(endSpan), Label: label}), true
}

func (p *Parser) parseReturn() (ast.StmtID, bool) {
	kwTok := p.advance()
	expr := ast.NoExprID
	endSpan := kwTok.Span
	if !p.at(token.Semicolon) && !p.at(token.RBrace) && !p.at(token.EOF) && !p.restrictedProductionBlocked() {
		e, ok := p.parseExpr(true)
		if !ok {
			return ast.NoStmtID, false
		}
		expr = e
		endSpan = p.exprSpan(e)
	}
	if !p.consumeSemicolon() {
		return ast.NoStmtID, false
	}
	return p.b.NewStmt(ast.Stmt{Kind: ast.StmtReturn, Span: kwTok.Span.Cover(endSpan), Expr: expr}), true
}

func (p *Parser) parseThrow() (ast.StmtID, bool) {
	kwTok := p.advance()
	if p.restrictedProductionBlocked() {
		p.errorHere(diag.SynExpectExpression, "line terminator not allowed after 'throw'")
		return ast.NoStmtID, false
	}
	expr, ok := p.parseExpr(true)
	if !ok {
		return ast.NoStmtID, false
	}
	if !p.consumeSemicolon() {
		return ast.NoStmtID, false
	}
	return p.b.NewStmt(ast.Stmt{Kind: ast.StmtThrow, Span: kwTok.Span.Cover(p.exprSpan(expr)), Expr: expr}), true
}

func (p *Parser) parseWith() (ast.StmtID, bool) {
	kwTok := p.advance()
	if _, ok := p.expect(token.LParen, diag.SynUnclosedParen, "expected '(' after 'with'"); !ok {
		return ast.NoStmtID, false
	}
	obj, ok := p.parseExpr(true)
	if !ok {
		return ast.NoStmtID, false
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after with object"); !ok {
		return ast.NoStmtID, false
	}
	body, ok := p.parseStmt()
	if !ok {
		return ast.NoStmtID, false
	}
	return p.b.NewStmt(ast.Stmt{Kind: ast.StmtWith, Span: kwTok.Span.Cover(p.stmtSpan(body)), Right: obj, Cons: body}), true
}

func (p *Parser) parseSwitch() (ast.StmtID, bool) {
	kwTok := p.advance()
	if _, ok := p.expect(token.LParen, diag.SynUnclosedParen, "expected '(' after 'switch'"); !ok {
		return ast.NoStmtID, false
	}
	disc, ok := p.parseExpr(true)
	if !ok {
		return ast.NoStmtID, false
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after switch discriminant"); !ok {
		return ast.NoStmtID, false
	}
	if _, ok := p.expect(token.LBrace, diag.SynUnclosedBrace, "expected '{' to start switch body"); !ok {
		return ast.NoStmtID, false
	}

	var cases []ast.SwitchCase
	sawDefault := false
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		c, ok := p.parseSwitchCase(&sawDefault)
		if !ok {
			return ast.NoStmtID, false
		}
		cases = append(cases, c)
	}
	closeTok, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close switch body")
	if !ok {
		return ast.NoStmtID, false
	}
	return p.b.NewStmt(ast.Stmt{Kind: ast.StmtSwitch, Span: kwTok.Span.Cover(closeTok.Span), Test: disc, Cases: cases}), true
}

func (p *Parser) parseSwitchCase(sawDefault *bool) (ast.SwitchCase, bool) {
	test := ast.NoExprID
	if p.at(token.KwCase) {
		p.advance()
		e, ok := p.parseExpr(true)
		if !ok {
			return ast.SwitchCase{}, false
		}
		test = e
	} else if p.at(token.KwDefault) {
		if *sawDefault {
			p.errorHere(diag.SynUnexpectedToken, "a switch statement may have only one 'default' clause")
			return ast.SwitchCase{}, false
		}
		*sawDefault = true
		p.advance()
	} else {
		p.errorHere(diag.SynUnexpectedToken, "expected 'case' or 'default'")
		return ast.SwitchCase{}, false
	}
	if _, ok := p.expect(token.Colon, diag.SynExpectColon, "expected ':' after case label"); !ok {
		return ast.SwitchCase{}, false
	}
	var body []ast.StmtID
	for !p.atAny(token.KwCase, token.KwDefault, token.RBrace, token.EOF) {
		s, ok := p.parseStmt()
		if !ok {
			return ast.SwitchCase{}, false
		}
		body = append(body, s)
	}
	return ast.SwitchCase{Test: test, Body: body}, true
}

func (p *Parser) parseTry() (ast.StmtID, bool) {
	kwTok := p.advance()
	block, ok := p.parseBlock()
	if !ok {
		return ast.NoStmtID, false
	}

	catchParam := ""
	catchBlock := ast.NoStmtID
	finallyBlock := ast.NoStmtID
	endSpan := p.stmtSpan(block)

	if p.at(token.KwCatch) {
		p.advance()
		if _, ok := p.expect(token.LParen, diag.SynUnclosedParen, "expected '(' after 'catch'"); !ok {
			return ast.NoStmtID, false
		}
		name, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected catch parameter name")
		if !ok {
			return ast.NoStmtID, false
		}
		catchParam = name.Text
		if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after catch parameter"); !ok {
			return ast.NoStmtID, false
		}
		cb, ok := p.parseBlock()
		if !ok {
			return ast.NoStmtID, false
		}
		catchBlock = cb
		endSpan = p.stmtSpan(catchBlock)
	}
	if p.at(token.KwFinally) {
		p.advance()
		fb, ok := p.parseBlock()
		if !ok {
			return ast.NoStmtID, false
		}
		finallyBlock = fb
		endSpan = p.stmtSpan(finallyBlock)
	}
	if !catchBlock.IsValid() && !finallyBlock.IsValid() {
		p.errorAt(diag.SynUnexpectedToken, kwTok.Span, "'try' must be followed by a 'catch' or 'finally' clause")
		return ast.NoStmtID, false
	}
	return p.b.NewStmt(ast.Stmt{
		Kind: ast.StmtTry, Span: kwTok.Span.Cover(endSpan),
		Cons: block, CatchParam: catchParam, Catch: catchBlock, Finally: finallyBlock,
	}), true
}

func (p *Parser) parseFunctionDecl() (ast.StmtID, bool) {
	kwTok := p.advance()
	name, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected function name")
	if !ok {
		return ast.NoStmtID, false
	}
	params, ok := p.parseParamList()
	if !ok {
		return ast.NoStmtID, false
	}
	body, ok := p.parseBlock()
	if !ok {
		return ast.NoStmtID, false
	}
	sp := kwTok.Span.Cover(p.stmtSpan(body))
	return p.b.NewStmt(ast.Stmt{
		Kind: ast.StmtFunctionDecl, Span: sp,
		Fn: &ast.FunctionLiteral{Name: name.Text, Params: params, Body: body},
	}), true
}
