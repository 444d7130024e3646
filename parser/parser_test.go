package parser

import (
	"testing"

	"github.com/masala-lang/masala/ast"
	"github.com/masala-lang/masala/lexer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseSource(t *testing.T, src string) (*ast.Program, error) {
	t.Helper()
	tokens, err := lexer.Tokenize(src)
	require.NoError(t, err)
	return New(tokens).Parse()
}

func TestParse_MissingStartKeyword(t *testing.T) {
	_, err := parseSource(t, `paisa vasool`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Parser Error")
}

func TestParse_MissingEndKeyword(t *testing.T) {
	_, err := parseSource(t, `action!`)
	require.Error(t, err)
}

func TestParse_EmptyProgram(t *testing.T) {
	prog, err := parseSource(t, "action!\npaisa vasool")
	require.NoError(t, err)
	assert.Empty(t, prog.Statements)
}

func TestParse_VarDeclAndPrint(t *testing.T) {
	prog, err := parseSource(t, `action!
maan lo x = 1 + 2
ek baat bataun: x
paisa vasool`)
	require.NoError(t, err)
	require.Len(t, prog.Statements, 2)

	decl, ok := prog.Statements[0].(*ast.VarDecl)
	require.True(t, ok)
	assert.Equal(t, "x", decl.Name)
	bin, ok := decl.Initializer.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, "+", bin.Operator)

	print, ok := prog.Statements[1].(*ast.Print)
	require.True(t, ok)
	require.Len(t, print.Args, 1)
}

func TestParse_OperatorPrecedence(t *testing.T) {
	prog, err := parseSource(t, `action!
ek baat bataun: a + b * c
paisa vasool`)
	require.NoError(t, err)
	print := prog.Statements[0].(*ast.Print)
	top, ok := print.Args[0].(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, "+", top.Operator)
	right, ok := top.Right.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, "*", right.Operator)
}

func TestParse_AssignmentIsRightAssociativeExpression(t *testing.T) {
	prog, err := parseSource(t, `action!
maan lo a = 0
maan lo b = 0
a = b = 5
paisa vasool`)
	require.NoError(t, err)
	assign, ok := prog.Statements[2].(*ast.Assign)
	require.True(t, ok)
	assert.Equal(t, "a", assign.Name)
	inner, ok := assign.Value.(*ast.AssignExpr)
	require.True(t, ok)
	assert.Equal(t, "b", inner.Name)
}

func TestParse_InvalidAssignmentTarget(t *testing.T) {
	_, err := parseSource(t, `action!
1 = 2
paisa vasool`)
	require.Error(t, err)
}

func TestParse_IfElseIfElseChain(t *testing.T) {
	prog, err := parseSource(t, `action!
agar kismat rahi (score >= 90) {
  ek baat bataun: "A"
} nahi to (score >= 80) {
  ek baat bataun: "B"
} warna {
  ek baat bataun: "C"
}
paisa vasool`)
	require.NoError(t, err)
	ifStmt, ok := prog.Statements[0].(*ast.If)
	require.True(t, ok)
	assert.Len(t, ifStmt.Conditions, 2)
	assert.Len(t, ifStmt.Consequents, 2)
	assert.NotNil(t, ifStmt.Alternate)
}

func TestParse_WhileLoop(t *testing.T) {
	prog, err := parseSource(t, `action!
maan lo i = 1
jab tak hai jaan (i <= 3) {
  ek baat bataun: i
  i = i + 1
}
paisa vasool`)
	require.NoError(t, err)
	whileStmt, ok := prog.Statements[1].(*ast.While)
	require.True(t, ok)
	assert.Len(t, whileStmt.Body.Statements, 2)
}

func TestParse_FunctionDeclAndCall(t *testing.T) {
	prog, err := parseSource(t, `action!
climax f(n) {
  agar kismat rahi (n <= 1) {
    dialogue wapas do 1
  }
  dialogue wapas do n * f(n - 1)
}
ek baat bataun: f(5)
paisa vasool`)
	require.NoError(t, err)
	fn, ok := prog.Statements[0].(*ast.FuncDecl)
	require.True(t, ok)
	assert.Equal(t, []string{"n"}, fn.Parameters)

	print := prog.Statements[1].(*ast.Print)
	call, ok := print.Args[0].(*ast.Call)
	require.True(t, ok)
	assert.Equal(t, "f", call.Callee)
	assert.Len(t, call.Arguments, 1)
}

func TestParse_ReturnWithoutValue(t *testing.T) {
	prog, err := parseSource(t, `action!
climax f() {
  dialogue wapas do
}
paisa vasool`)
	require.NoError(t, err)
	fn := prog.Statements[0].(*ast.FuncDecl)
	ret := fn.Body.Statements[0].(*ast.Return)
	assert.Nil(t, ret.Value)
}

func TestParse_BreakInsideBlock(t *testing.T) {
	prog, err := parseSource(t, `action!
jab tak hai jaan (sach) {
  me bahar ja raha hu
}
paisa vasool`)
	require.NoError(t, err)
	whileStmt := prog.Statements[0].(*ast.While)
	_, ok := whileStmt.Body.Statements[0].(*ast.Break)
	assert.True(t, ok)
}
