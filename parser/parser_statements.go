/*
File    : masala/parser/parser_statements.go
Package : parser
*/

package parser

import (
	"github.com/masala-lang/masala/ast"
	"github.com/masala-lang/masala/lexer"
)

// parseDeclaration is the entry point used both at program level and
// inside every block: a function or variable declaration keyword at
// this position starts a declaration, anything else falls through to
// an ordinary statement.
func (p *Parser) parseDeclaration() ast.Stmt {
	switch p.cur().Kind {
	case lexer.FUNC:
		return p.parseFuncDecl()
	case lexer.VAR_DECL:
		return p.parseVarDecl()
	default:
		return p.parseStatement()
	}
}

func (p *Parser) parseStatement() ast.Stmt {
	switch p.cur().Kind {
	case lexer.IF:
		return p.parseIfStatement()
	case lexer.WHILE:
		return p.parseWhileStatement()
	case lexer.RETURN:
		return p.parseReturnStatement()
	case lexer.PRINT:
		return p.parsePrintStatement()
	case lexer.BREAK:
		return p.parseBreakStatement()
	case lexer.LBRACE:
		return p.parseBlock()
	default:
		return p.parseExprStatement()
	}
}

func (p *Parser) parseVarDecl() ast.Stmt {
	line := p.advance().Line // consume VAR_DECL
	nameTok := p.expect(lexer.IDENT, "variable name")
	if p.firstErr != nil {
		return nil
	}
	p.expect(lexer.ASSIGN, "'=' after variable name")
	if p.firstErr != nil {
		return nil
	}
	init := p.parseExpression()
	return &ast.VarDecl{Name: nameTok.Lexeme, Initializer: init, Line: line}
}

func (p *Parser) parseFuncDecl() ast.Stmt {
	line := p.advance().Line // consume FUNC
	nameTok := p.expect(lexer.IDENT, "function name")
	if p.firstErr != nil {
		return nil
	}
	p.expect(lexer.LPAREN, "'(' after function name")
	if p.firstErr != nil {
		return nil
	}
	var params []string
	if !p.check(lexer.RPAREN) {
		for {
			paramTok := p.expect(lexer.IDENT, "parameter name")
			if p.firstErr != nil {
				return nil
			}
			params = append(params, paramTok.Lexeme)
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	p.expect(lexer.RPAREN, "')' after parameters")
	if p.firstErr != nil {
		return nil
	}
	body := p.parseBlock()
	if p.firstErr != nil {
		return nil
	}
	return &ast.FuncDecl{Name: nameTok.Lexeme, Parameters: params, Body: body, Line: line}
}

func (p *Parser) parseIfStatement() ast.Stmt {
	line := p.advance().Line // consume IF
	var conditions []ast.Expr
	var consequents []*ast.Block

	cond, block := p.parseCondAndBlock()
	if p.firstErr != nil {
		return nil
	}
	conditions = append(conditions, cond)
	consequents = append(consequents, block)

	for p.check(lexer.ELSEIF) {
		p.advance()
		cond, block := p.parseCondAndBlock()
		if p.firstErr != nil {
			return nil
		}
		conditions = append(conditions, cond)
		consequents = append(consequents, block)
	}

	var alternate *ast.Block
	if p.match(lexer.ELSE) {
		alternate = p.parseBlock()
		if p.firstErr != nil {
			return nil
		}
	}

	return &ast.If{Conditions: conditions, Consequents: consequents, Alternate: alternate, Line: line}
}

// parseCondAndBlock parses the common `( Expr ) Block` shape shared by
// `if` and each `else-if` arm.
func (p *Parser) parseCondAndBlock() (ast.Expr, *ast.Block) {
	p.expect(lexer.LPAREN, "'(' after condition keyword")
	if p.firstErr != nil {
		return nil, nil
	}
	cond := p.parseExpression()
	p.expect(lexer.RPAREN, "')' after condition")
	if p.firstErr != nil {
		return nil, nil
	}
	block := p.parseBlock()
	return cond, block
}

func (p *Parser) parseWhileStatement() ast.Stmt {
	line := p.advance().Line // consume WHILE
	p.expect(lexer.LPAREN, "'(' after while keyword")
	if p.firstErr != nil {
		return nil
	}
	cond := p.parseExpression()
	p.expect(lexer.RPAREN, "')' after while condition")
	if p.firstErr != nil {
		return nil
	}
	body := p.parseBlock()
	if p.firstErr != nil {
		return nil
	}
	return &ast.While{Condition: cond, Body: body, Line: line}
}

func (p *Parser) parseReturnStatement() ast.Stmt {
	line := p.advance().Line // consume RETURN
	var value ast.Expr
	switch p.cur().Kind {
	case lexer.RBRACE, lexer.PROGRAM_END, lexer.EOF:
		// no expression follows
	default:
		value = p.parseExpression()
	}
	return &ast.Return{Value: value, Line: line}
}

func (p *Parser) parsePrintStatement() ast.Stmt {
	line := p.advance().Line // consume PRINT
	args := []ast.Expr{p.parseExpression()}
	for p.match(lexer.COMMA) {
		args = append(args, p.parseExpression())
	}
	return &ast.Print{Args: args, Line: line}
}

func (p *Parser) parseBreakStatement() ast.Stmt {
	line := p.advance().Line // consume BREAK
	return &ast.Break{Line: line}
}

// parseBlock parses a `{ declaration* }` sequence. It is used both for
// a standalone brace-delimited statement and for the bodies of if/
// else-if/else/while/function constructs alike; the evaluator is
// responsible for not double-pushing a scope in the latter cases.
func (p *Parser) parseBlock() *ast.Block {
	openTok := p.expect(lexer.LBRACE, "'{' to start a block")
	if p.firstErr != nil {
		return nil
	}
	block := &ast.Block{Line: openTok.Line}
	for !p.check(lexer.RBRACE) && !p.check(lexer.EOF) {
		stmt := p.parseDeclaration()
		if p.firstErr != nil {
			return nil
		}
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
	}
	p.expect(lexer.RBRACE, "'}' to close a block")
	if p.firstErr != nil {
		return nil
	}
	return block
}

// parseExprStatement parses a bare expression statement. An
// assignment expression at statement level is re-wrapped as an Assign
// statement node so the evaluator's statement dispatch has a direct
// case for it instead of unwrapping an AssignExpr every time.
func (p *Parser) parseExprStatement() ast.Stmt {
	line := p.cur().Line
	expr := p.parseExpression()
	if p.firstErr != nil {
		return nil
	}
	if assign, ok := expr.(*ast.AssignExpr); ok {
		return &ast.Assign{Name: assign.Name, Value: assign.Value, Line: assign.Line}
	}
	return &ast.ExprStmt{Expr: expr, Line: line}
}
