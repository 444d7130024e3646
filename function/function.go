/*
File    : masala/function/function.go
Package : function
*/

// Package function holds the runtime representation of a Masala
// function value: its name, parameters, body, and the environment it
// closes over directly, not a copy of it. It lives in its own package,
// rather than inside runtime alongside Number/String/Bool/Unit,
// because it needs *env.Environment and env needs runtime.Value for
// its binding table — putting Function in runtime would make runtime
// import env and env import runtime, a cycle. Function instead
// satisfies runtime.Value structurally (Go interfaces are implicit),
// closing the dependency graph as ast -> env -> function, with runtime
// underneath all three.
package function

import (
	"github.com/masala-lang/masala/ast"
	"github.com/masala-lang/masala/env"
)

// Function is a first-class Masala function value: its declared
// parameter names, its body, and a live pointer to the environment
// that was active at the point it was declared. Calling it creates a
// fresh child of Env (not of whatever environment is active at the
// call site), which is what gives Masala true lexical closures: a
// nested function sees the enclosing function's locals as they stand
// at call time, including ones assigned after the nested function was
// declared.
type Function struct {
	Name   string
	Params []string
	Body   *ast.Block
	Env    *env.Environment
}

// Truthy reports true; functions carry no falsy representation.
func (f *Function) Truthy() bool { return true }

// Inspect renders the function the way `ek baat bataun:` prints it.
func (f *Function) Inspect() string {
	if f.Name == "" {
		return "<function>"
	}
	return "<function " + f.Name + ">"
}
