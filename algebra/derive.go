package algebra

import (
	"fmt"

	"go.creack.net/symdiff/ast"
)

// DerivationError reports an expression for which no differentiation rule
// exists.
type DerivationError struct {
	Expr ast.Expr
}

func (e *DerivationError) Error() string {
	return fmt.Sprintf("derivation not implemented for: %s", e.Expr.Dump())
}

// Derive computes the symbolic derivative of an expression with respect to
// the given variable. The input is normalized before dispatch and every
// produced expression is normalized before being returned.
func Derive(e ast.Expr, v ast.Variable) (ast.Expr, error) {
	e = Simplify(e)
	switch n := e.(type) {
	case ast.Constant:
		return ast.Constant{Value: 0}, nil
	case ast.Variable:
		if n.Name == v.Name {
			return ast.Constant{Value: 1}, nil
		}
		return ast.Constant{Value: 0}, nil
	case ast.Add:
		dl, dr, err := deriveBoth(n.Left, n.Right, v)
		if err != nil {
			return nil, err
		}
		return Simplify(ast.AddOf(dl, dr)), nil
	case ast.Subtract:
		dl, dr, err := deriveBoth(n.Left, n.Right, v)
		if err != nil {
			return nil, err
		}
		return Simplify(ast.SubOf(dl, dr)), nil
	case ast.Minus:
		dv, err := Derive(n.Value, v)
		if err != nil {
			return nil, err
		}
		return Simplify(ast.NegOf(dv)), nil
	case ast.Multiply:
		dl, dr, err := deriveBoth(n.Left, n.Right, v)
		if err != nil {
			return nil, err
		}
		return Simplify(ast.AddOf(ast.MulOf(dl, n.Right), ast.MulOf(n.Left, dr))), nil
	case ast.Divide:
		dp, dq, err := deriveBoth(n.Dividend, n.Divisor, v)
		if err != nil {
			return nil, err
		}
		return Simplify(ast.DivOf(
			ast.SubOf(ast.MulOf(dp, n.Divisor), ast.MulOf(n.Dividend, dq)),
			ast.PowOf(n.Divisor, 2),
		)), nil
	case ast.Logarithm:
		// Chain rule, natural base assumed.
		dv, err := Derive(n.Value, v)
		if err != nil {
			return nil, err
		}
		return Simplify(ast.MulOf(ast.DivOf(1, n.Value), dv)), nil
	case ast.Power:
		// Logarithmic differentiation covers variable bases and variable
		// exponents with a single formula:
		//   d/dx b**p = d/dx(p * ln(b)) * b**p
		// ln(b) is taken as written; a non-positive base is not guarded.
		dlog, err := Derive(ast.MulOf(n.Exponent, ast.LnOf(n.Base)), v)
		if err != nil {
			return nil, err
		}
		return Simplify(ast.MulOf(dlog, n)), nil
	}
	return nil, &DerivationError{Expr: e}
}

func deriveBoth(left, right ast.Expr, v ast.Variable) (ast.Expr, ast.Expr, error) {
	dl, err := Derive(left, v)
	if err != nil {
		return nil, nil, err
	}
	dr, err := Derive(right, v)
	if err != nil {
		return nil, nil, err
	}
	return dl, dr, nil
}
