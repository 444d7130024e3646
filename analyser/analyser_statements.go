/*
File    : masala/analyser/analyser_statements.go
Package : analyser
*/

package analyser

import "github.com/masala-lang/masala/ast"

func (a *Analyser) analyzeStmt(stmt ast.Stmt, s *scope) error {
	switch n := stmt.(type) {
	case *ast.VarDecl:
		if err := a.analyzeExpr(n.Initializer, s); err != nil {
			return err
		}
		if !s.declare(n.Name, binding{kind: bindVariable}) {
			return newError(n.Line, "variable %q is already declared in this scope", n.Name)
		}
		return nil

	case *ast.Assign:
		if err := a.analyzeExpr(n.Value, s); err != nil {
			return err
		}
		if _, ok := s.resolve(n.Name); !ok {
			return newError(n.Line, "undefined variable %q", n.Name)
		}
		return nil

	case *ast.Print:
		for _, arg := range n.Args {
			if err := a.analyzeExpr(arg, s); err != nil {
				return err
			}
		}
		return nil

	case *ast.If:
		for i, cond := range n.Conditions {
			if err := a.analyzeExpr(cond, s); err != nil {
				return err
			}
			if err := a.analyzeBlockNewScope(n.Consequents[i], s); err != nil {
				return err
			}
		}
		if n.Alternate != nil {
			if err := a.analyzeBlockNewScope(n.Alternate, s); err != nil {
				return err
			}
		}
		return nil

	case *ast.While:
		if err := a.analyzeExpr(n.Condition, s); err != nil {
			return err
		}
		a.loopDepth++
		err := a.analyzeBlockNewScope(n.Body, s)
		a.loopDepth--
		return err

	case *ast.Break:
		if a.loopDepth == 0 {
			return newError(n.Line, "break outside any enclosing loop")
		}
		return nil

	case *ast.FuncDecl:
		return a.analyzeFuncDecl(n, s)

	case *ast.Return:
		if a.funcDepth == 0 {
			return newError(n.Line, "return outside any function")
		}
		if n.Value != nil {
			return a.analyzeExpr(n.Value, s)
		}
		return nil

	case *ast.ExprStmt:
		return a.analyzeExpr(n.Expr, s)

	case *ast.Block:
		return a.analyzeBlockNewScope(n, s)

	default:
		return nil
	}
}

// analyzeBlockNewScope pushes a fresh child scope and walks block's
// statements in it. Used for a bare `{ … }` statement and for each
// if/else-if/else arm and while body, each of which gets exactly this
// one scope.
func (a *Analyser) analyzeBlockNewScope(block *ast.Block, parent *scope) error {
	return a.analyzeBlockIn(block, newScope(parent))
}

// analyzeBlockIn walks block's statements directly in s, without
// pushing another scope. Used for function bodies, whose scope
// (holding the parameters) analyzeFuncDecl already created — pushing a
// second one here would double-scope them.
func (a *Analyser) analyzeBlockIn(block *ast.Block, s *scope) error {
	for _, stmt := range block.Statements {
		if err := a.analyzeStmt(stmt, s); err != nil {
			return err
		}
	}
	return nil
}

// analyzeFuncDecl handles both a top-level function (already bound to
// the global scope by the hoisting pass) and a function declared
// inline inside a block (bound here, at the point of declaration,
// exactly like a variable). Either way its body runs in a fresh scope
// whose parent is the scope it was declared in, with loopDepth reset:
// a `break` cannot reach through a function boundary out to an
// enclosing while.
func (a *Analyser) analyzeFuncDecl(fn *ast.FuncDecl, s *scope) error {
	if !a.hoisted[fn] {
		if !s.declare(fn.Name, binding{kind: bindFunction, arity: len(fn.Parameters)}) {
			return newError(fn.Line, "function %q is already declared", fn.Name)
		}
	}

	body := newScope(s)
	for _, param := range fn.Parameters {
		body.declare(param, binding{kind: bindParameter})
	}

	savedLoopDepth := a.loopDepth
	a.loopDepth = 0
	a.funcDepth++
	err := a.analyzeBlockIn(fn.Body, body)
	a.funcDepth--
	a.loopDepth = savedLoopDepth
	return err
}
