/*
File    : masala/debug/dump.go
Package : debug
*/

// Package debug renders tokens and AST nodes as indented text, for the
// `--dump-tokens`/`--dump-ast` CLI flags: an indent counter plus a
// bytes.Buffer, one formatted line per node, as a plain recursive type
// switch since Masala's AST has no Accept methods of its own.
package debug

import (
	"bytes"
	"fmt"

	"github.com/masala-lang/masala/ast"
	"github.com/masala-lang/masala/lexer"
	"github.com/masala-lang/masala/runtime"
)

const indentSize = 2

// FormatValue renders a runtime value the way `ek baat bataun:` prints
// it (runtime.Stringify), rendering a nil value as khaali. DumpAST does
// not use it: literal payloads are rendered by literalValue below.
func FormatValue(v runtime.Value) string {
	if v == nil {
		return runtime.TheUnit.Inspect()
	}
	return runtime.Stringify(v)
}

// DumpTokens renders one line per token, in source order.
func DumpTokens(tokens []lexer.Token) string {
	var buf bytes.Buffer
	for _, tok := range tokens {
		fmt.Fprintln(&buf, tok.String())
	}
	return buf.String()
}

// DumpAST renders prog as an indented tree of its statements.
func DumpAST(prog *ast.Program) string {
	p := &printer{}
	p.line("Program")
	p.indent++
	for _, stmt := range prog.Statements {
		p.stmt(stmt)
	}
	p.indent--
	return p.buf.String()
}

type printer struct {
	buf    bytes.Buffer
	indent int
}

func (p *printer) line(format string, args ...interface{}) {
	for i := 0; i < p.indent*indentSize; i++ {
		p.buf.WriteByte(' ')
	}
	fmt.Fprintf(&p.buf, format, args...)
	p.buf.WriteByte('\n')
}

func (p *printer) block(b *ast.Block) {
	if b == nil {
		return
	}
	p.line("Block")
	p.indent++
	for _, stmt := range b.Statements {
		p.stmt(stmt)
	}
	p.indent--
}

func (p *printer) stmt(stmt ast.Stmt) {
	switch n := stmt.(type) {
	case *ast.VarDecl:
		p.line("VarDecl %s (line %d)", n.Name, n.Line)
		p.indent++
		p.expr(n.Initializer)
		p.indent--
	case *ast.Assign:
		p.line("Assign %s (line %d)", n.Name, n.Line)
		p.indent++
		p.expr(n.Value)
		p.indent--
	case *ast.Print:
		p.line("Print (line %d)", n.Line)
		p.indent++
		for _, arg := range n.Args {
			p.expr(arg)
		}
		p.indent--
	case *ast.If:
		p.line("If (line %d)", n.Line)
		p.indent++
		for i, cond := range n.Conditions {
			p.line("Condition %d", i)
			p.indent++
			p.expr(cond)
			p.indent--
			p.block(n.Consequents[i])
		}
		if n.Alternate != nil {
			p.line("Else")
			p.indent++
			p.block(n.Alternate)
			p.indent--
		}
		p.indent--
	case *ast.While:
		p.line("While (line %d)", n.Line)
		p.indent++
		p.expr(n.Condition)
		p.block(n.Body)
		p.indent--
	case *ast.Break:
		p.line("Break (line %d)", n.Line)
	case *ast.FuncDecl:
		p.line("FuncDecl %s(%v) (line %d)", n.Name, n.Parameters, n.Line)
		p.indent++
		p.block(n.Body)
		p.indent--
	case *ast.Return:
		p.line("Return (line %d)", n.Line)
		if n.Value != nil {
			p.indent++
			p.expr(n.Value)
			p.indent--
		}
	case *ast.ExprStmt:
		p.line("ExprStmt (line %d)", n.Line)
		p.indent++
		p.expr(n.Expr)
		p.indent--
	case *ast.Block:
		p.block(n)
	default:
		p.line("<unknown statement %T>", stmt)
	}
}

func (p *printer) expr(expr ast.Expr) {
	switch n := expr.(type) {
	case *ast.Literal:
		p.line("Literal %v", literalValue(n))
	case *ast.Identifier:
		p.line("Identifier %s", n.Name)
	case *ast.Grouping:
		p.line("Grouping")
		p.indent++
		p.expr(n.Expr)
		p.indent--
	case *ast.Unary:
		p.line("Unary %s", n.Operator)
		p.indent++
		p.expr(n.Operand)
		p.indent--
	case *ast.Binary:
		p.line("Binary %s", n.Operator)
		p.indent++
		p.expr(n.Left)
		p.expr(n.Right)
		p.indent--
	case *ast.AssignExpr:
		p.line("AssignExpr %s", n.Name)
		p.indent++
		p.expr(n.Value)
		p.indent--
	case *ast.Call:
		p.line("Call %s", n.Callee)
		p.indent++
		for _, arg := range n.Arguments {
			p.expr(arg)
		}
		p.indent--
	default:
		p.line("<unknown expression %T>", expr)
	}
}

func literalValue(n *ast.Literal) interface{} {
	switch n.Kind {
	case ast.LiteralNumber:
		return n.Number
	case ast.LiteralString:
		return n.String
	case ast.LiteralBool:
		return n.Bool
	default:
		return "khaali"
	}
}
