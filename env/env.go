/*
File    : masala/env/env.go
Package : env
*/

// Package env implements Masala's lexical environment chain: the
// runtime counterpart of nested scopes (a binding map plus a parent
// pointer, with Define/Get/Assign). There is deliberately no Copy:
// Masala's closures capture their defining Environment by live
// pointer (see function.Function), so a variable assigned after the
// function was created, but before it is called, is visible to the
// call. Child environments only ever hold a pointer to their parent,
// never the reverse, so the chain is a DAG and ordinary garbage
// collection reclaims it once nothing references the leaf scope
// anymore.
package env

import "github.com/masala-lang/masala/runtime"

// Environment is one lexical scope: a binding table plus a pointer to
// the enclosing scope, or nil at the outermost (program) scope.
type Environment struct {
	vars   map[string]runtime.Value
	Parent *Environment
}

// New creates a fresh top-level environment with no parent.
func New() *Environment {
	return &Environment{vars: make(map[string]runtime.Value)}
}

// NewChild creates a fresh environment nested inside parent, the
// shape used for block scopes, while-loop bodies, and function-call
// frames alike.
func NewChild(parent *Environment) *Environment {
	return &Environment{vars: make(map[string]runtime.Value), Parent: parent}
}

// Define introduces a new binding in this environment, shadowing any
// binding of the same name in an enclosing scope. Used for `maan lo`
// declarations and for binding call arguments to parameters.
func (e *Environment) Define(name string, value runtime.Value) {
	e.vars[name] = value
}

// Get looks up name starting in this environment and walking out
// through enclosing scopes, reporting whether it was found anywhere.
func (e *Environment) Get(name string) (runtime.Value, bool) {
	for scope := e; scope != nil; scope = scope.Parent {
		if v, ok := scope.vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Assign rebinds an existing variable in the nearest enclosing scope
// that declared it, reporting whether such a binding was found. It
// never introduces a new binding; that is Define's job.
func (e *Environment) Assign(name string, value runtime.Value) bool {
	for scope := e; scope != nil; scope = scope.Parent {
		if _, ok := scope.vars[name]; ok {
			scope.vars[name] = value
			return true
		}
	}
	return false
}
