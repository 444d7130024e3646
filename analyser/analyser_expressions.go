/*
File    : masala/analyser/analyser_expressions.go
Package : analyser
*/

package analyser

import "github.com/masala-lang/masala/ast"

func (a *Analyser) analyzeExpr(expr ast.Expr, s *scope) error {
	switch n := expr.(type) {
	case *ast.Literal:
		return nil

	case *ast.Identifier:
		if _, ok := s.resolve(n.Name); !ok {
			return newError(n.Line, "undefined identifier %q", n.Name)
		}
		return nil

	case *ast.Grouping:
		return a.analyzeExpr(n.Expr, s)

	case *ast.Unary:
		return a.analyzeExpr(n.Operand, s)

	case *ast.Binary:
		if err := a.analyzeExpr(n.Left, s); err != nil {
			return err
		}
		return a.analyzeExpr(n.Right, s)

	case *ast.AssignExpr:
		if err := a.analyzeExpr(n.Value, s); err != nil {
			return err
		}
		if _, ok := s.resolve(n.Name); !ok {
			return newError(n.Line, "undefined variable %q", n.Name)
		}
		return nil

	case *ast.Call:
		for _, arg := range n.Arguments {
			if err := a.analyzeExpr(arg, s); err != nil {
				return err
			}
		}
		b, ok := s.resolve(n.Callee)
		if !ok {
			return newError(n.Line, "undefined function %q", n.Callee)
		}
		// Arity is only checked statically against a name declared with
		// `climax`; a call through a variable or parameter that merely
		// holds a function value is checked at runtime instead.
		if b.kind == bindFunction && len(n.Arguments) != b.arity {
			return newError(n.Line, "function %q expects %d argument(s), got %d", n.Callee, b.arity, len(n.Arguments))
		}
		return nil

	default:
		return nil
	}
}
