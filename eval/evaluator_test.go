package eval

import (
	"bytes"
	"strings"
	"testing"

	"github.com/masala-lang/masala/analyser"
	"github.com/masala-lang/masala/lexer"
	"github.com/masala-lang/masala/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runAndCapture lexes, parses, analyses and evaluates src, returning
// the printed output lines (or the first error from any stage).
func runAndCapture(t *testing.T, src string) ([]string, error) {
	t.Helper()
	tokens, err := lexer.Tokenize(src)
	require.NoError(t, err)
	prog, err := parser.New(tokens).Parse()
	require.NoError(t, err)
	require.NoError(t, analyser.New().Analyze(prog))

	var buf bytes.Buffer
	ev := New()
	ev.SetWriter(&buf)
	if err := ev.Run(prog); err != nil {
		return nil, err
	}
	out := strings.TrimSuffix(buf.String(), "\n")
	if out == "" {
		return nil, nil
	}
	return strings.Split(out, "\n"), nil
}

func TestEval_DivisionByZero(t *testing.T) {
	_, err := runAndCapture(t, "action!\nek baat bataun: 10 / 0\npaisa vasool")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Division by zero")
}

func TestEval_WhileLoopCounting(t *testing.T) {
	lines, err := runAndCapture(t, `action!
maan lo i = 1
jab tak hai jaan (i <= 3) {
  ek baat bataun: i
  i = i + 1
}
paisa vasool`)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, lines)
}

func TestEval_Factorial(t *testing.T) {
	lines, err := runAndCapture(t, `action!
climax f(n) {
  agar kismat rahi (n <= 1) {
    dialogue wapas do 1
  }
  dialogue wapas do n * f(n - 1)
}
ek baat bataun: f(5)
paisa vasool`)
	require.NoError(t, err)
	assert.Equal(t, []string{"120"}, lines)
}

func TestEval_IfElseIfBand(t *testing.T) {
	lines, err := runAndCapture(t, `action!
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
	assert.Equal(t, []string{"C"}, lines)
}

func TestEval_StringNumberConcat(t *testing.T) {
	lines, err := runAndCapture(t, `action!
ek baat bataun: "Count: " + 42
paisa vasool`)
	require.NoError(t, err)
	assert.Equal(t, []string{"Count: 42"}, lines)
}

func TestEval_FibonacciToEightTerms(t *testing.T) {
	lines, err := runAndCapture(t, `action!
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
	assert.Equal(t, []string{"0", "1", "1", "2", "3", "5", "8", "13"}, lines)
}

func TestEval_ClosureCapturesLiveNotSnapshot(t *testing.T) {
	lines, err := runAndCapture(t, `action!
climax makeCounter() {
  maan lo count = 0
  climax increment() {
    count = count + 1
    dialogue wapas do count
  }
  dialogue wapas do increment
}
maan lo counter = makeCounter()
ek baat bataun: counter()
ek baat bataun: counter()
ek baat bataun: counter()
paisa vasool`)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, lines)
}

func TestEval_ScopeIsolation(t *testing.T) {
	lines, err := runAndCapture(t, `action!
maan lo x = 1
climax setLocal() {
  maan lo x = 99
}
setLocal()
ek baat bataun: x
paisa vasool`)
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, lines)
}

func TestEval_Truthiness(t *testing.T) {
	lines, err := runAndCapture(t, `action!
agar kismat rahi (0) {
  ek baat bataun: "truthy"
} warna {
  ek baat bataun: "falsy"
}
agar kismat rahi ("") {
  ek baat bataun: "truthy"
} warna {
  ek baat bataun: "falsy"
}
agar kismat rahi (khaali) {
  ek baat bataun: "truthy"
} warna {
  ek baat bataun: "falsy"
}
paisa vasool`)
	require.NoError(t, err)
	assert.Equal(t, []string{"truthy", "truthy", "falsy"}, lines)
}

func TestEval_ShortCircuitAnd(t *testing.T) {
	lines, err := runAndCapture(t, `action!
climax boom() {
  ek baat bataun: "called"
  dialogue wapas do sach
}
agar kismat rahi (galat && boom()) {
  ek baat bataun: "unreachable"
}
paisa vasool`)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestEval_FunctionPrintsWithName(t *testing.T) {
	lines, err := runAndCapture(t, `action!
climax greet() {
  dialogue wapas do khaali
}
ek baat bataun: greet
paisa vasool`)
	require.NoError(t, err)
	assert.Equal(t, []string{"<function greet>"}, lines)
}
