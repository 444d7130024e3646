/*
File    : masala/parser/parser.go
Package : parser
*/

// Package parser implements Masala's recursive-descent parser: it
// consumes the lexer's token sequence and builds a single ast.Program,
// halting on the first syntactic error. It keeps a two-token lookahead
// (cur/peek) and advance/expect helpers, but unlike a parser that
// accumulates every error into a slice for batch reporting, Masala
// surfaces only the first error, as the language contract requires. A
// best-effort synchronize step still exists so a single bad token
// doesn't cause an unbounded loop while the parser finishes scanning
// for EOF/program-end.
package parser

import (
	"github.com/masala-lang/masala/ast"
	"github.com/masala-lang/masala/lexer"
)

// Parser holds the token stream and the first error encountered, if
// any. Once firstErr is set, later failures are no longer recorded
// (see fail), and Parse returns firstErr instead of a program,
// preserving "the first error halts the pipeline".
type Parser struct {
	tokens   []lexer.Token
	pos      int
	firstErr error
}

// New creates a Parser over an already-tokenized source.
func New(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse builds the program AST, or returns the first syntax error.
func (p *Parser) Parse() (*ast.Program, error) {
	start := p.cur()
	if !p.check(lexer.ACTION) {
		return nil, newError(start.Line, start.Column, "expected program start keyword")
	}
	p.advance()

	program := &ast.Program{}
	for !p.check(lexer.PROGRAM_END) && !p.check(lexer.EOF) {
		stmt := p.parseDeclaration()
		if p.firstErr != nil {
			p.synchronize()
			continue
		}
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
	}

	if !p.check(lexer.PROGRAM_END) {
		if p.firstErr == nil {
			tok := p.cur()
			p.firstErr = newError(tok.Line, tok.Column, "expected program end keyword")
		}
		return nil, p.firstErr
	}
	p.advance()

	if p.firstErr != nil {
		return nil, p.firstErr
	}
	return program, nil
}

// cur returns the current token.
func (p *Parser) cur() lexer.Token {
	return p.tokens[p.pos]
}

// peek returns the token after the current one.
func (p *Parser) peek() lexer.Token {
	if p.pos+1 >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.pos+1]
}

// advance consumes the current token and moves to the next, unless
// already at EOF.
func (p *Parser) advance() lexer.Token {
	tok := p.cur()
	if tok.Kind != lexer.EOF {
		p.pos++
	}
	return tok
}

// check reports whether the current token has the given kind.
func (p *Parser) check(kind lexer.Kind) bool {
	return p.cur().Kind == kind
}

// match consumes the current token and returns true if it has the
// given kind; otherwise it leaves the position untouched.
func (p *Parser) match(kind lexer.Kind) bool {
	if p.check(kind) {
		p.advance()
		return true
	}
	return false
}

// expect consumes the current token if it has the given kind,
// otherwise records the first parse error (if none is recorded yet)
// and returns the zero token.
func (p *Parser) expect(kind lexer.Kind, what string) lexer.Token {
	if p.check(kind) {
		return p.advance()
	}
	p.fail(what)
	return lexer.Token{}
}

// fail records the first parse error encountered, pointing at the
// current token. Later calls are no-ops, preserving first-error-wins.
func (p *Parser) fail(format string, args ...interface{}) {
	if p.firstErr != nil {
		return
	}
	tok := p.cur()
	p.firstErr = newError(tok.Line, tok.Column, format, args...)
}

// synchronize advances past tokens until it reaches a plausible
// statement-boundary keyword or EOF, or has consumed a closing '}', so
// a single malformed statement doesn't spin the main parse loop
// forever. It never clears firstErr: only the first error that was
// recorded is ever surfaced.
func (p *Parser) synchronize() {
	for !p.check(lexer.EOF) {
		switch p.cur().Kind {
		case lexer.VAR_DECL, lexer.IF, lexer.WHILE, lexer.FUNC,
			lexer.PRINT, lexer.BREAK, lexer.RETURN, lexer.PROGRAM_END:
			return
		case lexer.RBRACE:
			// No declaration starts with '}', so stopping on it would
			// leave the main loop re-parsing the same token.
			p.advance()
			return
		}
		p.advance()
	}
}
