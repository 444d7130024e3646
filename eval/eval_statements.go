/*
File    : masala/eval/eval_statements.go
Package : eval
*/

package eval

import (
	"github.com/masala-lang/masala/ast"
	"github.com/masala-lang/masala/env"
	"github.com/masala-lang/masala/function"
	"github.com/masala-lang/masala/runtime"
)

// execStmt executes one statement. A non-nil Value return is always a
// control-flow signal (ReturnSignal or BreakSignal) that the caller
// must propagate or handle; ordinary statements return (nil, nil).
func (e *Evaluator) execStmt(stmt ast.Stmt, scope *env.Environment) (runtime.Value, error) {
	switch n := stmt.(type) {
	case *ast.VarDecl:
		val, err := e.evalExpr(n.Initializer, scope)
		if err != nil {
			return nil, err
		}
		scope.Define(n.Name, val)
		return nil, nil

	case *ast.Assign:
		val, err := e.evalExpr(n.Value, scope)
		if err != nil {
			return nil, err
		}
		if !scope.Assign(n.Name, val) {
			return nil, newError(n.Line, "undefined variable %q", n.Name)
		}
		return nil, nil

	case *ast.Print:
		values := make([]runtime.Value, len(n.Args))
		for i, arg := range n.Args {
			v, err := e.evalExpr(arg, scope)
			if err != nil {
				return nil, err
			}
			values[i] = v
		}
		e.print(runtime.JoinPrintArgs(values))
		return nil, nil

	case *ast.If:
		for i, cond := range n.Conditions {
			v, err := e.evalExpr(cond, scope)
			if err != nil {
				return nil, err
			}
			if v.Truthy() {
				return e.execBlockNewScope(n.Consequents[i], scope)
			}
		}
		if n.Alternate != nil {
			return e.execBlockNewScope(n.Alternate, scope)
		}
		return nil, nil

	case *ast.While:
		iterations := 0
		for {
			cond, err := e.evalExpr(n.Condition, scope)
			if err != nil {
				return nil, err
			}
			if !cond.Truthy() {
				return nil, nil
			}
			iterations++
			if iterations > e.MaxLoopIterations {
				return nil, newError(n.Line, "loop limit exceeded")
			}
			sig, err := e.execBlockNewScope(n.Body, scope)
			if err != nil {
				return nil, err
			}
			if sig != nil {
				if _, isBreak := sig.(*runtime.BreakSignal); isBreak {
					return nil, nil
				}
				return sig, nil // a Return unwinds through the loop
			}
		}

	case *ast.Break:
		return &runtime.BreakSignal{}, nil

	case *ast.FuncDecl:
		scope.Define(n.Name, &function.Function{
			Name:   n.Name,
			Params: n.Parameters,
			Body:   n.Body,
			Env:    scope,
		})
		return nil, nil

	case *ast.Return:
		var value runtime.Value = runtime.TheUnit
		if n.Value != nil {
			v, err := e.evalExpr(n.Value, scope)
			if err != nil {
				return nil, err
			}
			value = v
		}
		return &runtime.ReturnSignal{Value: value}, nil

	case *ast.ExprStmt:
		_, err := e.evalExpr(n.Expr, scope)
		return nil, err

	case *ast.Block:
		return e.execBlockNewScope(n, scope)

	default:
		return nil, newError(stmt.Pos(), "unhandled statement type %T", stmt)
	}
}

// execBlockNewScope pushes a fresh child scope and executes block in
// it. Used for a bare `{ … }` statement and for each If arm and While
// body iteration, each of which gets exactly this one scope.
func (e *Evaluator) execBlockNewScope(block *ast.Block, parent *env.Environment) (runtime.Value, error) {
	return e.execBlockIn(block, env.NewChild(parent))
}

// execBlockIn executes block's statements directly in scope, without
// pushing another one. Function bodies already received their own
// scope (the call frame holding the parameters) from callFunction —
// pushing a second one here would double-scope them.
func (e *Evaluator) execBlockIn(block *ast.Block, scope *env.Environment) (runtime.Value, error) {
	for _, stmt := range block.Statements {
		sig, err := e.execStmt(stmt, scope)
		if err != nil {
			return nil, err
		}
		if sig != nil {
			return sig, nil
		}
	}
	return nil, nil
}
