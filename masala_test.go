package masala

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_MissingStartKeywordIsParserError(t *testing.T) {
	_, err := Run(`ek baat bataun: 1`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Parser Error")
	assert.Contains(t, err.Error(), "start")
}

func TestRun_MissingEndKeywordIsParserError(t *testing.T) {
	_, err := Run(`action!
ek baat bataun: 1`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Parser Error")
	assert.Contains(t, err.Error(), "end")
}

func TestRun_KeywordBoundary(t *testing.T) {
	result, err := Run(`action!
maan lo maanager = 1
ek baat bataun: maanager
paisa vasool`)
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, result.Output)
}

func TestRun_DivisionByZero(t *testing.T) {
	_, err := Run("action!\nek baat bataun: 10 / 0\npaisa vasool")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Runtime Error")
	assert.Contains(t, err.Error(), "Division by zero")
}

func TestRun_ModuloByZero(t *testing.T) {
	_, err := Run("action!\nek baat bataun: 10 % 0\npaisa vasool")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Division by zero")
}

func TestRun_WhileCountingOneToThree(t *testing.T) {
	result, err := Run(`action!
maan lo i = 1
jab tak hai jaan (i <= 3) {
  ek baat bataun: i
  i = i + 1
}
paisa vasool`)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, result.Output)
}

func TestRun_Factorial(t *testing.T) {
	result, err := Run(`action!
climax f(n) {
  agar kismat rahi (n<=1) {
    dialogue wapas do 1
  }
  dialogue wapas do n*f(n-1)
}
ek baat bataun: f(5)
paisa vasool`)
	require.NoError(t, err)
	assert.Equal(t, []string{"120"}, result.Output)
}

func TestRun_IfElseIfBanding(t *testing.T) {
	result, err := Run(`action!
maan lo score = 75
agar kismat rahi (score >= 90) {
  ek baat bataun: "A"
} nahi to (score >= 80) {
  ek baat bataun: "B"
} nahi to (score >= 70) {
  ek baat bataun: "C"
} warna {
  ek baat bataun: "D"
}
paisa vasool`)
	require.NoError(t, err)
	assert.Equal(t, []string{"C"}, result.Output)
}

func TestRun_StringPlusNumberConcatenation(t *testing.T) {
	result, err := Run(`action!
ek baat bataun: "Count: " + 42
paisa vasool`)
	require.NoError(t, err)
	assert.Equal(t, []string{"Count: 42"}, result.Output)
}

func TestRun_FibonacciEightTerms(t *testing.T) {
	result, err := Run(`action!
maan lo a = 0
maan lo b = 1
maan lo i = 0
jab tak hai jaan (i < 8) {
  ek baat bataun: a
  maan lo next = a + b
  a = b
  b = next
  i = i + 1
}
paisa vasool`)
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "1", "2", "3", "5", "8", "13"}, result.Output)
}

func TestRun_ArityMismatchFailsBeforeExecution(t *testing.T) {
	_, err := Run(`action!
climax add(a, b) {
  dialogue wapas do a + b
}
ek baat bataun: add(1)
paisa vasool`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Semantic Error")
}

func TestRun_LongestMatchOnAlternateSpellings(t *testing.T) {
	result, err := Run(`Chal bhai suru kar
ek baat bataun: "hi"
bas khatam karo`)
	require.NoError(t, err)
	assert.Equal(t, []string{"hi"}, result.Output)
}
