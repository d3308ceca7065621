package parser

import (
	"github.com/lineCode/mjs-1/internal/ast"
	"github.com/lineCode/mjs-1/internal/diag"
	"github.com/lineCode/mjs-1/internal/source"
	"github.com/lineCode/mjs-1/internal/token"
)

// parseExpr parses the comma (sequence) operator, the loosest-binding
// construct: AssignmentExpression (',' AssignmentExpression)*.
func (p *Parser) parseExpr(allowIn bool) (ast.ExprID, bool) {
	first, ok := p.parseAssign(allowIn)
	if !ok {
		return ast.NoExprID, false
	}
	if !p.at(token.Comma) {
		return first, true
	}

	exprs := []ast.ExprID{first}
	for p.at(token.Comma) {
		p.advance()
		next, ok := p.parseAssign(allowIn)
		if !ok {
			return ast.NoExprID, false
		}
		exprs = append(exprs, next)
	}
	sp := p.exprSpan(first).Cover(p.exprSpan(exprs[len(exprs)-1]))
	return p.b.NewExpr(ast.Expr{Kind: ast.ExprSequence, Span: sp, Exprs: exprs}), true
}

// parseAssign parses ConditionalExpression, or LeftHandSideExpression
// AssignmentOperator AssignmentExpression. Right-associative.
func (p *Parser) parseAssign(allowIn bool) (ast.ExprID, bool) {
	left, ok := p.parseConditional(allowIn)
	if !ok {
		return ast.NoExprID, false
	}
	if !p.cur.Kind.IsAssignOp() {
		return left, true
	}

	op := p.advance()
	right, ok := p.parseAssign(allowIn)
	if !ok {
		if p.errs == 0 {
			p.errorHere(diag.SynExpectExpression, "expected expression after assignment operator")
		}
		return ast.NoExprID, false
	}
	if !isAssignTarget(p.b.Exprs.Get(left)) {
		p.errorAt(diag.SynInvalidAssignTarget, p.exprSpan(left), "invalid assignment target")
	}
	sp := p.exprSpan(left).Cover(p.exprSpan(right))
	return p.b.NewExpr(ast.Expr{Kind: ast.ExprAssign, Span: sp, Op: op.Kind, Left: left, Right: right}), true
}

func isAssignTarget(e *ast.Expr) bool {
	return e.Kind == ast.ExprIdent || e.Kind == ast.ExprMember
}

// parseConditional parses LogicalOrExpression, or
// LogicalOrExpression '?' AssignmentExpression ':' AssignmentExpression.
// Right-associative.
func (p *Parser) parseConditional(allowIn bool) (ast.ExprID, bool) {
	test, ok := p.parseBinary(precLogical, allowIn)
	if !ok {
		return ast.NoExprID, false
	}
	if !p.at(token.Question) {
		return test, true
	}
	p.advance()

	cons, ok := p.parseAssign(true)
	if !ok {
		return ast.NoExprID, false
	}
	if _, ok := p.expect(token.Colon, diag.SynExpectColon, "expected ':' in conditional expression"); !ok {
		return ast.NoExprID, false
	}
	alt, ok := p.parseAssign(allowIn)
	if !ok {
		return ast.NoExprID, false
	}
	sp := p.exprSpan(test).Cover(p.exprSpan(alt))
	return p.b.NewExpr(ast.Expr{Kind: ast.ExprConditional, Span: sp, Test: test, Cons: cons, Alt: alt}), true
}

// parseBinary implements precedence climbing over the left-associative
// binary operator levels, bottoming out at unary expressions.
func (p *Parser) parseBinary(minPrec int, allowIn bool) (ast.ExprID, bool) {
	left, ok := p.parseUnary()
	if !ok {
		return ast.NoExprID, false
	}

	for {
		prec, isBinOp := binaryPrec(p.cur.Kind, allowIn)
		if !isBinOp || prec > minPrec {
			break
		}
		op := p.advance()
		right, ok := p.parseBinary(prec-1, allowIn)
		if !ok {
			if p.errs == 0 {
				p.errorHere(diag.SynExpectExpression, "expected expression after binary operator")
			}
			return ast.NoExprID, false
		}
		kind := ast.ExprBinary
		if op.Kind == token.AndAnd || op.Kind == token.OrOr {
			kind = ast.ExprLogical
		}
		sp := p.exprSpan(left).Cover(p.exprSpan(right))
		left = p.b.NewExpr(ast.Expr{Kind: kind, Span: sp, Op: op.Kind, Left: left, Right: right})
	}
	return left, true
}

// parseUnary parses prefix unary and update operators, then falls
// through to a postfix expression.
func (p *Parser) parseUnary() (ast.ExprID, bool) {
	if isUnaryOp(p.cur.Kind) {
		op := p.advance()
		operand, ok := p.parseUnary()
		if !ok {
			if p.errs == 0 {
				p.errorHere(diag.SynExpectExpression, "expected expression after unary operator")
			}
			return ast.NoExprID, false
		}
		sp := op.Span.Cover(p.exprSpan(operand))
		return p.b.NewExpr(ast.Expr{Kind: ast.ExprUnary, Span: sp, Op: op.Kind, Operand: operand}), true
	}
	if p.at(token.PlusPlus) || p.at(token.MinusMinus) {
		op := p.advance()
		operand, ok := p.parseUnary()
		if !ok {
			if p.errs == 0 {
				p.errorHere(diag.SynExpectExpression, "expected expression after '++'/'--'")
			}
			return ast.NoExprID, false
		}
		sp := op.Span.Cover(p.exprSpan(operand))
		return p.b.NewExpr(ast.Expr{Kind: ast.ExprUpdate, Span: sp, Op: op.Kind, Operand: operand, Prefix: true}), true
	}
	return p.parsePostfix()
}

// parsePostfix parses a LeftHandSideExpression followed by an optional
// postfix ++/--. The postfix operator cannot be preceded by a line
// terminator: if one was skipped, ASI treats it as starting a new
// statement instead.
func (p *Parser) parsePostfix() (ast.ExprID, bool) {
	expr, ok := p.parseCallOrMember()
	if !ok {
		return ast.NoExprID, false
	}
	if (p.at(token.PlusPlus) || p.at(token.MinusMinus)) && !p.cur.PrecededByLineTerminator {
		op := p.advance()
		sp := p.exprSpan(expr).Cover(op.Span)
		return p.b.NewExpr(ast.Expr{Kind: ast.ExprUpdate, Span: sp, Op: op.Kind, Operand: expr, Prefix: false}), true
	}
	return expr, true
}

// parseCallOrMember parses MemberExpression/CallExpression: a primary
// expression followed by any number of '.name', '[expr]', and '(args)'
// suffixes, plus a leading 'new' for constructor calls.
func (p *Parser) parseCallOrMember() (ast.ExprID, bool) {
	var expr ast.ExprID
	var ok bool
	if p.at(token.KwNew) {
		expr, ok = p.parseNew()
	} else {
		expr, ok = p.parsePrimary()
	}
	if !ok {
		return ast.NoExprID, false
	}

	for {
		switch p.cur.Kind {
		case token.Dot:
			p.advance()
			name, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected property name after '.'")
			if !ok {
				return ast.NoExprID, false
			}
			sp := p.exprSpan(expr).Cover(name.Span)
			expr = p.b.NewExpr(ast.Expr{Kind: ast.ExprMember, Span: sp, Object: expr, PropertyName: name.Text})

		case token.LBracket:
			p.advance()
			prop, ok := p.parseExpr(true)
			if !ok {
				return ast.NoExprID, false
			}
			closeTok, ok := p.expect(token.RBracket, diag.SynUnclosedBracket, "expected ']' after computed member expression")
			if !ok {
				return ast.NoExprID, false
			}
			sp := p.exprSpan(expr).Cover(closeTok.Span)
			expr = p.b.NewExpr(ast.Expr{Kind: ast.ExprMember, Span: sp, Object: expr, Computed: true, PropertyExpr: prop})

		case token.LParen:
			args, closeSpan, ok := p.parseArgs()
			if !ok {
				return ast.NoExprID, false
			}
			sp := p.exprSpan(expr).Cover(closeSpan)
			expr = p.b.NewExpr(ast.Expr{Kind: ast.ExprCall, Span: sp, Callee: expr, Args: args})

		default:
			return expr, true
		}
	}
}

// parseNew parses 'new' MemberExpression Arguments?, matching the call
// target tightly enough to not swallow a trailing, unrelated call.
func (p *Parser) parseNew() (ast.ExprID, bool) {
	newTok := p.advance()
	var callee ast.ExprID
	var ok bool
	if p.at(token.KwNew) {
		callee, ok = p.parseNew()
	} else {
		callee, ok = p.parsePrimary()
	}
	if !ok {
		return ast.NoExprID, false
	}

membersLoop:
	for {
		switch p.cur.Kind {
		case token.Dot:
			p.advance()
			name, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected property name after '.'")
			if !ok {
				return ast.NoExprID, false
			}
			sp := p.exprSpan(callee).Cover(name.Span)
			callee = p.b.NewExpr(ast.Expr{Kind: ast.ExprMember, Span: sp, Object: callee, PropertyName: name.Text})
		case token.LBracket:
			p.advance()
			prop, ok := p.parseExpr(true)
			if !ok {
				return ast.NoExprID, false
			}
			closeTok, ok := p.expect(token.RBracket, diag.SynUnclosedBracket, "expected ']' after computed member expression")
			if !ok {
				return ast.NoExprID, false
			}
			sp := p.exprSpan(callee).Cover(closeTok.Span)
			callee = p.b.NewExpr(ast.Expr{Kind: ast.ExprMember, Span: sp, Object: callee, Computed: true, PropertyExpr: prop})
		default:
			break membersLoop
		}
	}

	var args []ast.ExprID
	endSpan := p.exprSpan(callee)
	if p.at(token.LParen) {
		a, closeSpan, ok := p.parseArgs()
		if !ok {
			return ast.NoExprID, false
		}
		args = a
		endSpan = closeSpan
	}
	sp := newTok.Span.Cover(endSpan)
	return p.b.NewExpr(ast.Expr{Kind: ast.ExprNew, Span: sp, Callee: callee, Args: args}), true
}

// parseArgs parses a parenthesized, comma-separated argument list.
func (p *Parser) parseArgs() ([]ast.ExprID, source.Span, bool) {
	open := p.advance() // '('
	var args []ast.ExprID
	for !p.at(token.RParen) && !p.at(token.EOF) {
		arg, ok := p.parseAssign(true)
		if !ok {
			return nil, source.Span{}, false
		}
		args = append(args, arg)
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	closeTok, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' to close argument list")
	if !ok {
		return nil, open.Span, false
	}
	return args, closeTok.Span, true
}

// parsePrimary parses the atomic expression forms.
func (p *Parser) parsePrimary() (ast.ExprID, bool) {
	switch p.cur.Kind {
	case token.Ident:
		tok := p.advance()
		return p.b.NewExpr(ast.Expr{Kind: ast.ExprIdent, Span: tok.Span, Text: tok.Text}), true

	case token.NumberLit:
		tok := p.advance()
		return p.b.NewExpr(ast.Expr{Kind: ast.ExprNumberLit, Span: tok.Span, Text: tok.Text}), true

	case token.StringLit:
		tok := p.advance()
		return p.b.NewExpr(ast.Expr{Kind: ast.ExprStringLit, Span: tok.Span, Text: tok.Text}), true

	case token.RegexLit:
		tok := p.advance()
		return p.b.NewExpr(ast.Expr{Kind: ast.ExprRegexLit, Span: tok.Span, Text: tok.Text}), true

	case token.BooleanLit:
		tok := p.advance()
		return p.b.NewExpr(ast.Expr{Kind: ast.ExprBooleanLit, Span: tok.Span, Text: tok.Text}), true

	case token.NullLit:
		tok := p.advance()
		return p.b.NewExpr(ast.Expr{Kind: ast.ExprNullLit, Span: tok.Span, Text: tok.Text}), true

	case token.KwThis:
		tok := p.advance()
		return p.b.NewExpr(ast.Expr{Kind: ast.ExprThis, Span: tok.Span}), true

	case token.KwFunction:
		return p.parseFunctionExpr()

	case token.LParen:
		p.advance()
		inner, ok := p.parseExpr(true)
		if !ok {
			return ast.NoExprID, false
		}
		if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' to close parenthesized expression"); !ok {
			return ast.NoExprID, false
		}
		return inner, true

	case token.LBracket:
		return p.parseArrayLit()

	case token.LBrace:
		return p.parseObjectLit()

	default:
		p.errorHere(diag.SynExpectExpression, "expected an expression")
		return ast.NoExprID, false
	}
}

// parseArrayLit parses '[' (Elision | AssignmentExpression)* ']',
// leaving a NoExprID element for each elision (e.g. the middle of [1,,3]).
func (p *Parser) parseArrayLit() (ast.ExprID, bool) {
	open := p.advance() // '['
	var elems []ast.ExprID
	for !p.at(token.RBracket) && !p.at(token.EOF) {
		if p.at(token.Comma) {
			elems = append(elems, ast.NoExprID)
			p.advance()
			continue
		}
		el, ok := p.parseAssign(true)
		if !ok {
			return ast.NoExprID, false
		}
		elems = append(elems, el)
		if p.at(token.Comma) {
			p.advance()
		} else {
			break
		}
	}
	closeTok, ok := p.expect(token.RBracket, diag.SynUnclosedBracket, "expected ']' to close array literal")
	if !ok {
		return ast.NoExprID, false
	}
	sp := open.Span.Cover(closeTok.Span)
	return p.b.NewExpr(ast.Expr{Kind: ast.ExprArray, Span: sp, Elements: elems}), true
}

// parseObjectLit parses '{' (PropertyName ':' AssignmentExpression)','* '}'.
func (p *Parser) parseObjectLit() (ast.ExprID, bool) {
	open := p.advance() // '{'
	var props []ast.ObjectProp
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		prop, ok := p.parseObjectProp()
		if !ok {
			return ast.NoExprID, false
		}
		props = append(props, prop)
		if p.at(token.Comma) {
			p.advance()
		} else {
			break
		}
	}
	closeTok, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close object literal")
	if !ok {
		return ast.NoExprID, false
	}
	sp := open.Span.Cover(closeTok.Span)
	return p.b.NewExpr(ast.Expr{Kind: ast.ExprObject, Span: sp, Props: props}), true
}

func (p *Parser) parseObjectProp() (ast.ObjectProp, bool) {
	if p.at(token.LBracket) {
		p.advance()
		keyExpr, ok := p.parseAssign(true)
		if !ok {
			return ast.ObjectProp{}, false
		}
		if _, ok := p.expect(token.RBracket, diag.SynUnclosedBracket, "expected ']' after computed property name"); !ok {
			return ast.ObjectProp{}, false
		}
		if _, ok := p.expect(token.Colon, diag.SynExpectColon, "expected ':' after property name"); !ok {
			return ast.ObjectProp{}, false
		}
		val, ok := p.parseAssign(true)
		if !ok {
			return ast.ObjectProp{}, false
		}
		return ast.ObjectProp{Computed: true, KeyExpr: keyExpr, Value: val}, true
	}

	var key string
	switch {
	case p.at(token.Ident) || p.cur.Kind.IsKeyword():
		key = p.advance().Text
	case p.at(token.StringLit):
		key = p.advance().Text
	case p.at(token.NumberLit):
		key = p.advance().Text
	default:
		p.errorHere(diag.SynExpectIdentifier, "expected property name")
		return ast.ObjectProp{}, false
	}
	if _, ok := p.expect(token.Colon, diag.SynExpectColon, "expected ':' after property name"); !ok {
		return ast.ObjectProp{}, false
	}
	val, ok := p.parseAssign(true)
	if !ok {
		return ast.ObjectProp{}, false
	}
	return ast.ObjectProp{Key: key, Value: val}, true
}

// parseFunctionExpr parses a function expression; the name is optional.
func (p *Parser) parseFunctionExpr() (ast.ExprID, bool) {
	kwTok := p.advance() // 'function'
	name := ""
	if p.at(token.Ident) {
		name = p.advance().Text
	}
	params, ok := p.parseParamList()
	if !ok {
		return ast.NoExprID, false
	}
	body, ok := p.parseBlock()
	if !ok {
		return ast.NoExprID, false
	}
	sp := kwTok.Span.Cover(p.stmtSpan(body))
	return p.b.NewExpr(ast.Expr{
		Kind: ast.ExprFunction,
		Span: sp,
		Fn:   &ast.FunctionLiteral{Name: name, Params: params, Body: body},
	}), true
}

func (p *Parser) parseParamList() ([]string, bool) {
	if _, ok := p.expect(token.LParen, diag.SynUnclosedParen, "expected '(' to start parameter list"); !ok {
		return nil, false
	}
	var params []string
	for !p.at(token.RParen) && !p.at(token.EOF) {
		name, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected parameter name")
		if !ok {
			return nil, false
		}
		params = append(params, name.Text)
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' to close parameter list"); !ok {
		return nil, false
	}
	return params, true
}
