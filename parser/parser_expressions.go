/*
File    : masala/parser/parser_expressions.go
Package : parser
*/

package parser

import (
	"github.com/masala-lang/masala/ast"
	"github.com/masala-lang/masala/lexer"
)

// parseExpression enters the precedence ladder at its lowest rung.
func (p *Parser) parseExpression() ast.Expr {
	return p.parseAssignment()
}

// parseAssignment implements rung 1: `Identifier = assignment | logicOr`.
// Assignment is right-associative (via right recursion on the call to
// itself) and is an expression in its own right; a non-identifier
// target is a parse error.
func (p *Parser) parseAssignment() ast.Expr {
	left := p.parseOr()
	if !p.check(lexer.ASSIGN) {
		return left
	}
	ident, ok := left.(*ast.Identifier)
	if !ok {
		p.fail("invalid assignment target")
		return left
	}
	p.advance() // consume '='
	value := p.parseAssignment()
	return &ast.AssignExpr{Name: ident.Name, Value: value, Line: ident.Line}
}

func (p *Parser) parseOr() ast.Expr {
	left := p.parseAnd()
	for p.check(lexer.OR) {
		line := p.advance().Line
		right := p.parseAnd()
		left = &ast.Binary{Operator: "||", Left: left, Right: right, Line: line}
	}
	return left
}

func (p *Parser) parseAnd() ast.Expr {
	left := p.parseEquality()
	for p.check(lexer.AND) {
		line := p.advance().Line
		right := p.parseEquality()
		left = &ast.Binary{Operator: "&&", Left: left, Right: right, Line: line}
	}
	return left
}

func (p *Parser) parseEquality() ast.Expr {
	left := p.parseComparison()
	for p.check(lexer.EQ) || p.check(lexer.NE) {
		op := p.advance()
		right := p.parseComparison()
		left = &ast.Binary{Operator: string(op.Kind), Left: left, Right: right, Line: op.Line}
	}
	return left
}

func (p *Parser) parseComparison() ast.Expr {
	left := p.parseAdditive()
	for p.check(lexer.LT) || p.check(lexer.GT) || p.check(lexer.LE) || p.check(lexer.GE) {
		op := p.advance()
		right := p.parseAdditive()
		left = &ast.Binary{Operator: string(op.Kind), Left: left, Right: right, Line: op.Line}
	}
	return left
}

func (p *Parser) parseAdditive() ast.Expr {
	left := p.parseMultiplicative()
	for p.check(lexer.PLUS) || p.check(lexer.MINUS) {
		op := p.advance()
		right := p.parseMultiplicative()
		left = &ast.Binary{Operator: string(op.Kind), Left: left, Right: right, Line: op.Line}
	}
	return left
}

func (p *Parser) parseMultiplicative() ast.Expr {
	left := p.parseUnary()
	for p.check(lexer.STAR) || p.check(lexer.SLASH) || p.check(lexer.PERCENT) {
		op := p.advance()
		right := p.parseUnary()
		left = &ast.Binary{Operator: string(op.Kind), Left: left, Right: right, Line: op.Line}
	}
	return left
}

// parseUnary implements rung 8 (`!`, unary `-`; right-associative via
// recursing into itself for the operand).
func (p *Parser) parseUnary() ast.Expr {
	if p.check(lexer.NOT) || p.check(lexer.MINUS) {
		op := p.advance()
		operand := p.parseUnary()
		return &ast.Unary{Operator: string(op.Kind), Operand: operand, Line: op.Line}
	}
	return p.parseCall()
}

// parseCall implements rung 9: a primary optionally followed by a call
// suffix. Only a bare identifier may be called; since the result of a
// call is never itself an identifier, a second consecutive call suffix
// always fails here rather than chaining.
func (p *Parser) parseCall() ast.Expr {
	expr := p.parsePrimary()
	for p.check(lexer.LPAREN) {
		ident, ok := expr.(*ast.Identifier)
		if !ok {
			p.fail("can only call a function by name")
			return expr
		}
		p.advance() // consume '('
		args := p.parseArguments()
		p.expect(lexer.RPAREN, "')' after arguments")
		if p.firstErr != nil {
			return expr
		}
		expr = &ast.Call{Callee: ident.Name, Arguments: args, Line: ident.Line}
	}
	return expr
}

func (p *Parser) parseArguments() []ast.Expr {
	if p.check(lexer.RPAREN) {
		return nil
	}
	args := []ast.Expr{p.parseExpression()}
	for p.match(lexer.COMMA) {
		args = append(args, p.parseExpression())
	}
	return args
}

// parsePrimary implements rung 10: the leaves of the expression tree.
func (p *Parser) parsePrimary() ast.Expr {
	tok := p.cur()
	switch tok.Kind {
	case lexer.TRUE:
		p.advance()
		return &ast.Literal{Kind: ast.LiteralBool, Bool: true, Line: tok.Line}
	case lexer.FALSE:
		p.advance()
		return &ast.Literal{Kind: ast.LiteralBool, Bool: false, Line: tok.Line}
	case lexer.NULL:
		p.advance()
		return &ast.Literal{Kind: ast.LiteralUnit, Line: tok.Line}
	case lexer.NUMBER:
		p.advance()
		return &ast.Literal{Kind: ast.LiteralNumber, Number: tok.Literal.(float64), Line: tok.Line}
	case lexer.STRING:
		p.advance()
		return &ast.Literal{Kind: ast.LiteralString, String: tok.Literal.(string), Line: tok.Line}
	case lexer.IDENT:
		p.advance()
		return &ast.Identifier{Name: tok.Lexeme, Line: tok.Line}
	case lexer.LPAREN:
		p.advance()
		inner := p.parseExpression()
		p.expect(lexer.RPAREN, "')' after expression")
		return &ast.Grouping{Expr: inner, Line: tok.Line}
	default:
		p.fail("expected expression, found %s", tok.Kind)
		return &ast.Literal{Kind: ast.LiteralUnit, Line: tok.Line}
	}
}
