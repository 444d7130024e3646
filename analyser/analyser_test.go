package analyser

import (
	"testing"

	"github.com/masala-lang/masala/lexer"
	"github.com/masala-lang/masala/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func analyzeSource(t *testing.T, src string) error {
	t.Helper()
	tokens, err := lexer.Tokenize(src)
	require.NoError(t, err)
	prog, err := parser.New(tokens).Parse()
	require.NoError(t, err)
	return New().Analyze(prog)
}

func TestAnalyze_ValidProgram(t *testing.T) {
	err := analyzeSource(t, `action!
maan lo x = 1
ek baat bataun: x
paisa vasool`)
	assert.NoError(t, err)
}

func TestAnalyze_UndefinedVariable(t *testing.T) {
	err := analyzeSource(t, `action!
ek baat bataun: x
paisa vasool`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "undefined")
}

func TestAnalyze_RedeclarationInSameScope(t *testing.T) {
	err := analyzeSource(t, `action!
maan lo x = 1
maan lo x = 2
paisa vasool`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already declared")
}

func TestAnalyze_ShadowingAcrossScopesIsFine(t *testing.T) {
	err := analyzeSource(t, `action!
maan lo x = 1
agar kismat rahi (sach) {
  maan lo x = 2
  ek baat bataun: x
}
paisa vasool`)
	assert.NoError(t, err)
}

func TestAnalyze_ReturnOutsideFunction(t *testing.T) {
	err := analyzeSource(t, `action!
dialogue wapas do 1
paisa vasool`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "return")
}

func TestAnalyze_BreakOutsideLoop(t *testing.T) {
	err := analyzeSource(t, `action!
me bahar ja raha hu
paisa vasool`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "break")
}

func TestAnalyze_BreakInsideFunctionInsideLoopStillFails(t *testing.T) {
	err := analyzeSource(t, `action!
climax f() {
  me bahar ja raha hu
}
jab tak hai jaan (sach) {
  f()
}
paisa vasool`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "break")
}

func TestAnalyze_ArityMismatchOnNamedFunction(t *testing.T) {
	err := analyzeSource(t, `action!
climax add(a, b) {
  dialogue wapas do a + b
}
ek baat bataun: add(1)
paisa vasool`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "argument")
}

func TestAnalyze_RecursiveTopLevelFunctionResolves(t *testing.T) {
	err := analyzeSource(t, `action!
climax f(n) {
  agar kismat rahi (n <= 1) {
    dialogue wapas do 1
  }
  dialogue wapas do n * f(n - 1)
}
ek baat bataun: f(5)
paisa vasool`)
	assert.NoError(t, err)
}

func TestAnalyze_DuplicateTopLevelFunction(t *testing.T) {
	err := analyzeSource(t, `action!
climax f() { dialogue wapas do 1 }
climax f() { dialogue wapas do 2 }
paisa vasool`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already declared")
}

func TestAnalyze_CallThroughVariableSkipsStaticArity(t *testing.T) {
	err := analyzeSource(t, `action!
climax add(a, b) {
  dialogue wapas do a + b
}
maan lo op = add
ek baat bataun: op(1)
paisa vasool`)
	assert.NoError(t, err)
}
