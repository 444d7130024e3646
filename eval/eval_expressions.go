/*
File    : masala/eval/eval_expressions.go
Package : eval
*/

package eval

import (
	"github.com/masala-lang/masala/ast"
	"github.com/masala-lang/masala/env"
	"github.com/masala-lang/masala/function"
	"github.com/masala-lang/masala/runtime"
)

func (e *Evaluator) evalExpr(expr ast.Expr, scope *env.Environment) (runtime.Value, error) {
	switch n := expr.(type) {
	case *ast.Literal:
		return e.evalLiteral(n), nil

	case *ast.Identifier:
		v, ok := scope.Get(n.Name)
		if !ok {
			return nil, newError(n.Line, "undefined identifier %q", n.Name)
		}
		return v, nil

	case *ast.Grouping:
		return e.evalExpr(n.Expr, scope)

	case *ast.Unary:
		return e.evalUnary(n, scope)

	case *ast.Binary:
		return e.evalBinary(n, scope)

	case *ast.AssignExpr:
		val, err := e.evalExpr(n.Value, scope)
		if err != nil {
			return nil, err
		}
		if !scope.Assign(n.Name, val) {
			return nil, newError(n.Line, "undefined variable %q", n.Name)
		}
		return val, nil

	case *ast.Call:
		return e.evalCall(n, scope)

	default:
		return nil, newError(expr.Pos(), "unhandled expression type %T", expr)
	}
}

func (e *Evaluator) evalLiteral(n *ast.Literal) runtime.Value {
	switch n.Kind {
	case ast.LiteralNumber:
		return &runtime.Number{Value: n.Number}
	case ast.LiteralString:
		return &runtime.String{Value: n.String}
	case ast.LiteralBool:
		return &runtime.Bool{Value: n.Bool}
	default:
		return runtime.TheUnit
	}
}

func (e *Evaluator) evalUnary(n *ast.Unary, scope *env.Environment) (runtime.Value, error) {
	operand, err := e.evalExpr(n.Operand, scope)
	if err != nil {
		return nil, err
	}
	switch n.Operator {
	case "-":
		num, ok := operand.(*runtime.Number)
		if !ok {
			return nil, newError(n.Line, "unary '-' requires a number")
		}
		return &runtime.Number{Value: -num.Value}, nil
	case "!":
		return &runtime.Bool{Value: !operand.Truthy()}, nil
	default:
		return nil, newError(n.Line, "unknown unary operator %q", n.Operator)
	}
}

// evalBinary implements the evaluator's binary operand rules. `&&` and
// `||` short-circuit: the only expression with a side effect is Call,
// and skipping an unneeded right operand is a strict refinement over
// always evaluating both.
func (e *Evaluator) evalBinary(n *ast.Binary, scope *env.Environment) (runtime.Value, error) {
	if n.Operator == "&&" || n.Operator == "||" {
		return e.evalLogical(n, scope)
	}

	left, err := e.evalExpr(n.Left, scope)
	if err != nil {
		return nil, err
	}
	right, err := e.evalExpr(n.Right, scope)
	if err != nil {
		return nil, err
	}

	switch n.Operator {
	case "+":
		return e.evalPlus(n, left, right)
	case "-", "*", "/", "%":
		return e.evalArithmetic(n, left, right)
	case "<", ">", "<=", ">=":
		return e.evalComparison(n, left, right)
	case "==":
		return &runtime.Bool{Value: runtime.Equal(left, right)}, nil
	case "!=":
		return &runtime.Bool{Value: !runtime.Equal(left, right)}, nil
	default:
		return nil, newError(n.Line, "unknown binary operator %q", n.Operator)
	}
}

func (e *Evaluator) evalLogical(n *ast.Binary, scope *env.Environment) (runtime.Value, error) {
	left, err := e.evalExpr(n.Left, scope)
	if err != nil {
		return nil, err
	}
	if n.Operator == "&&" && !left.Truthy() {
		return &runtime.Bool{Value: false}, nil
	}
	if n.Operator == "||" && left.Truthy() {
		return &runtime.Bool{Value: true}, nil
	}
	right, err := e.evalExpr(n.Right, scope)
	if err != nil {
		return nil, err
	}
	return &runtime.Bool{Value: right.Truthy()}, nil
}

func (e *Evaluator) evalPlus(n *ast.Binary, left, right runtime.Value) (runtime.Value, error) {
	_, leftIsString := left.(*runtime.String)
	_, rightIsString := right.(*runtime.String)
	if leftIsString || rightIsString {
		return &runtime.String{Value: runtime.Stringify(left) + runtime.Stringify(right)}, nil
	}
	leftNum, ok1 := left.(*runtime.Number)
	rightNum, ok2 := right.(*runtime.Number)
	if !ok1 || !ok2 {
		return nil, newError(n.Line, "'+' requires two numbers or a string operand")
	}
	return &runtime.Number{Value: leftNum.Value + rightNum.Value}, nil
}

func (e *Evaluator) evalArithmetic(n *ast.Binary, left, right runtime.Value) (runtime.Value, error) {
	leftNum, ok1 := left.(*runtime.Number)
	rightNum, ok2 := right.(*runtime.Number)
	if !ok1 || !ok2 {
		return nil, newError(n.Line, "'%s' requires two numbers", n.Operator)
	}
	switch n.Operator {
	case "-":
		return &runtime.Number{Value: leftNum.Value - rightNum.Value}, nil
	case "*":
		return &runtime.Number{Value: leftNum.Value * rightNum.Value}, nil
	case "/":
		if rightNum.Value == 0 {
			return nil, newError(n.Line, "Division by zero")
		}
		return &runtime.Number{Value: leftNum.Value / rightNum.Value}, nil
	case "%":
		if rightNum.Value == 0 {
			return nil, newError(n.Line, "Division by zero")
		}
		return &runtime.Number{Value: numberMod(leftNum.Value, rightNum.Value)}, nil
	default:
		return nil, newError(n.Line, "unknown arithmetic operator %q", n.Operator)
	}
}

func (e *Evaluator) evalComparison(n *ast.Binary, left, right runtime.Value) (runtime.Value, error) {
	leftNum, ok1 := left.(*runtime.Number)
	rightNum, ok2 := right.(*runtime.Number)
	if !ok1 || !ok2 {
		return nil, newError(n.Line, "'%s' requires two numbers", n.Operator)
	}
	switch n.Operator {
	case "<":
		return &runtime.Bool{Value: leftNum.Value < rightNum.Value}, nil
	case ">":
		return &runtime.Bool{Value: leftNum.Value > rightNum.Value}, nil
	case "<=":
		return &runtime.Bool{Value: leftNum.Value <= rightNum.Value}, nil
	case ">=":
		return &runtime.Bool{Value: leftNum.Value >= rightNum.Value}, nil
	default:
		return nil, newError(n.Line, "unknown comparison operator %q", n.Operator)
	}
}

func (e *Evaluator) evalCall(n *ast.Call, scope *env.Environment) (runtime.Value, error) {
	args := make([]runtime.Value, len(n.Arguments))
	for i, argExpr := range n.Arguments {
		v, err := e.evalExpr(argExpr, scope)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	callee, ok := scope.Get(n.Callee)
	if !ok {
		return nil, newError(n.Line, "undefined function %q", n.Callee)
	}
	fn, ok := callee.(*function.Function)
	if !ok {
		return nil, newError(n.Line, "%q is not a function", n.Callee)
	}
	return e.callFunction(fn, args)
}
