/*
File    : masala/analyser/analyser.go
Package : analyser
*/

// Package analyser walks a parsed Masala program once to validate
// scoping, identifier resolution, named-function arity, and the
// placement of `return`/`me bahar ja raha hu` before any of it runs.
// The scope stack (map[name]binding + parent pointer) exists purely
// for compile-time resolution rather than runtime value storage: the
// analyser never holds a Value, only which kind of name a binding is.
package analyser

import "github.com/masala-lang/masala/ast"

type bindingKind int

const (
	bindVariable bindingKind = iota
	bindParameter
	bindFunction
)

type binding struct {
	kind  bindingKind
	arity int // only meaningful when kind == bindFunction
}

// scope is one lexical level of the compile-time scope stack.
type scope struct {
	bindings map[string]binding
	parent   *scope
}

func newScope(parent *scope) *scope {
	return &scope{bindings: make(map[string]binding), parent: parent}
}

// declare adds a binding to this scope only, reporting false if the
// name is already bound here (block-level redeclaration).
func (s *scope) declare(name string, b binding) bool {
	if _, exists := s.bindings[name]; exists {
		return false
	}
	s.bindings[name] = b
	return true
}

// resolve walks this scope and its ancestors looking for name.
func (s *scope) resolve(name string) (binding, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if b, ok := cur.bindings[name]; ok {
			return b, true
		}
	}
	return binding{}, false
}

// Analyser holds the validation state for a single Analyze call: the
// function-depth and loop-depth counters used to police return/break
// placement, and which FuncDecl nodes were already bound in the
// top-level hoisting pass (so the main walk doesn't try to redeclare
// them and trip the shadowing check against itself).
type Analyser struct {
	loopDepth int
	funcDepth int
	hoisted   map[*ast.FuncDecl]bool
}

// New creates an Analyser ready for a single Analyze call.
func New() *Analyser {
	return &Analyser{hoisted: make(map[*ast.FuncDecl]bool)}
}

// Analyze validates prog, returning the first semantic error found, if
// any: hoist every top-level function name and its arity, then walk
// every statement against the resulting global scope.
func (a *Analyser) Analyze(prog *ast.Program) error {
	global := newScope(nil)

	for _, stmt := range prog.Statements {
		fn, ok := stmt.(*ast.FuncDecl)
		if !ok {
			continue
		}
		if !global.declare(fn.Name, binding{kind: bindFunction, arity: len(fn.Parameters)}) {
			return newError(fn.Line, "function %q is already declared", fn.Name)
		}
		a.hoisted[fn] = true
	}

	for _, stmt := range prog.Statements {
		if err := a.analyzeStmt(stmt, global); err != nil {
			return err
		}
	}
	return nil
}
