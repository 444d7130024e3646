/*
File    : masala/eval/evaluator.go
Package : eval
*/

// Package eval implements Masala's tree-walking evaluator: it walks a
// validated AST, maintains the environment chain, and produces the
// ordered list of printed lines. The Evaluator struct carries just an
// output writer plus the mutable state that changes per call — no
// builtin registry, no struct-type table, no input reader, since the
// language has nothing to read and only one builtin (`ek baat
// bataun:`, folded directly into the Print statement below rather than
// kept as a registrable builtin).
package eval

import (
	"fmt"
	"io"
	"os"

	"github.com/masala-lang/masala/ast"
	"github.com/masala-lang/masala/env"
	"github.com/masala-lang/masala/function"
	"github.com/masala-lang/masala/runtime"
)

// defaultMaxLoopIterations is the while-loop safety rail's default
// value: a count, not a timer, so it behaves identically under any
// clock.
const defaultMaxLoopIterations = 100000

// Evaluator walks a program's AST. Writer receives one line per
// `ek baat bataun:` statement, newline-terminated; MaxLoopIterations
// bounds every `while` loop the evaluator executes.
type Evaluator struct {
	Writer            io.Writer
	MaxLoopIterations int
}

// New creates an Evaluator that writes to stdout with the default
// loop-iteration cap.
func New() *Evaluator {
	return &Evaluator{Writer: os.Stdout, MaxLoopIterations: defaultMaxLoopIterations}
}

// SetWriter redirects where Print statements write their output, used
// by the REPL and by tests to capture output into a buffer instead of
// stdout.
func (e *Evaluator) SetWriter(w io.Writer) {
	e.Writer = w
}

// Run executes prog from a fresh global environment. A control-flow
// signal reaching this level instead of a nil completion is a bug
// elsewhere in the evaluator — unwinds never cross the evaluator/host
// boundary — so it is reported as a runtime error rather than silently
// dropped.
func (e *Evaluator) Run(prog *ast.Program) error {
	if e.MaxLoopIterations <= 0 {
		e.MaxLoopIterations = defaultMaxLoopIterations
	}
	global := env.New()
	for _, stmt := range prog.Statements {
		sig, err := e.execStmt(stmt, global)
		if err != nil {
			return err
		}
		if sig != nil {
			return newError(stmt.Pos(), "control-flow signal escaped the program")
		}
	}
	return nil
}

func (e *Evaluator) print(line string) {
	fmt.Fprintln(e.Writer, line)
}

// callFunction invokes fn with the already-evaluated args, creating
// its call frame as a child of fn's captured environment — not of the
// caller's environment. That parent choice, not anything special about
// the frame itself, is what gives Masala lexical closures: a function
// declared inside another sees that outer function's locals as they
// stand when it is called, not as they stood when it was declared.
func (e *Evaluator) callFunction(fn *function.Function, args []runtime.Value) (runtime.Value, error) {
	frame := env.NewChild(fn.Env)
	for i, name := range fn.Params {
		var v runtime.Value = runtime.TheUnit
		if i < len(args) {
			v = args[i]
		}
		frame.Define(name, v)
	}
	sig, err := e.execBlockIn(fn.Body, frame)
	if err != nil {
		return nil, err
	}
	if ret, ok := sig.(*runtime.ReturnSignal); ok {
		return ret.Value, nil
	}
	return runtime.TheUnit, nil
}
