// Package algebra implements the rewriting passes over expression trees:
// term-rewriting simplification and symbolic differentiation.
package algebra

import (
	"math"

	"go.creack.net/symdiff/ast"
)

// Simplify reduces an expression toward its normalized form. Children are
// simplified first, then per-variant rules apply in priority order, first
// match wins. A single pass is not guaranteed to reach a fixpoint for every
// input, but normalized forms are stable under repeated application.
func Simplify(e ast.Expr) ast.Expr {
	switch n := e.(type) {
	case ast.Constant, ast.Variable:
		return e
	case ast.Add:
		return simplifyAdd(n)
	case ast.Subtract:
		return simplifySubtract(n)
	case ast.Minus:
		return simplifyMinus(n)
	case ast.Multiply:
		return simplifyMultiply(n)
	case ast.Divide:
		return simplifyDivide(n)
	case ast.Power:
		return simplifyPower(n)
	case ast.Logarithm:
		return simplifyLogarithm(n)
	}
	return e
}

// num reports the value of an expression if it is a Constant.
func num(e ast.Expr) (float64, bool) {
	c, ok := e.(ast.Constant)
	if !ok {
		return 0, false
	}
	return c.Value, true
}

// isNum reports whether the expression is the constant v.
func isNum(e ast.Expr, v float64) bool {
	c, ok := e.(ast.Constant)
	return ok && c.Is(v)
}

func simplifyAdd(n ast.Add) ast.Expr {
	left, right := Simplify(n.Left), Simplify(n.Right)
	if isNum(left, 0) {
		return right
	}
	if isNum(right, 0) {
		return left
	}
	if l, lok := num(left); lok {
		if r, rok := num(right); rok {
			return ast.Constant{Value: l + r}
		}
	}
	return ast.AddOf(left, right)
}

// simplifySubtract deliberately does not fold constants: "3 - 3" stays as
// written. Only the zero operands reduce.
func simplifySubtract(n ast.Subtract) ast.Expr {
	left, right := Simplify(n.Left), Simplify(n.Right)
	if isNum(left, 0) {
		return ast.Minus{Value: right}
	}
	if isNum(right, 0) {
		return left
	}
	return ast.SubOf(left, right)
}

func simplifyMinus(n ast.Minus) ast.Expr {
	value := Simplify(n.Value)
	if c, ok := value.(ast.Constant); ok {
		if _, wasConst := n.Value.(ast.Constant); wasConst {
			return ast.Constant{Value: -c.Value}
		}
	}
	return ast.Minus{Value: value}
}

func simplifyMultiply(n ast.Multiply) ast.Expr {
	left, right := Simplify(n.Left), Simplify(n.Right)
	if isNum(left, 0) {
		return ast.Constant{Value: 0}
	}
	if isNum(left, 1) {
		return right
	}
	l, lConst := num(left)
	r, rConst := num(right)
	if lConst && rConst {
		return ast.Constant{Value: l * r}
	}
	if rConst {
		// Canonical form keeps the constant factor first.
		return Simplify(ast.MulOf(right, left))
	}
	if lConst {
		if inner, ok := right.(ast.Multiply); ok {
			if ir, ok := num(inner.Left); ok {
				return Simplify(ast.MulOf(ast.Constant{Value: l * ir}, inner.Right))
			}
		}
	}
	lNeg, lIsNeg := left.(ast.Minus)
	rNeg, rIsNeg := right.(ast.Minus)
	switch {
	case lIsNeg && rIsNeg:
		return Simplify(ast.MulOf(lNeg.Value, rNeg.Value))
	case lIsNeg:
		return ast.Minus{Value: Simplify(ast.MulOf(lNeg.Value, right))}
	case rIsNeg:
		return ast.Minus{Value: Simplify(ast.MulOf(left, rNeg.Value))}
	}
	if lp, ok := left.(ast.Power); ok {
		if rp, ok := right.(ast.Power); ok && ast.Equal(lp.Base, rp.Base) {
			exponent := Simplify(ast.AddOf(lp.Exponent, rp.Exponent))
			return Simplify(ast.PowOf(lp.Base, exponent))
		}
	}
	return groupFactors(ast.Multiply{Left: left, Right: right})
}

func simplifyDivide(n ast.Divide) ast.Expr {
	dividend, divisor := Simplify(n.Dividend), Simplify(n.Divisor)
	p, pConst := num(dividend)
	q, qConst := num(divisor)
	if pConst && qConst {
		if divisible(p, q) {
			return ast.Constant{Value: p / q}
		}
		if divisible(q, p) {
			return ast.DivOf(1, ast.Constant{Value: q / p})
		}
	}
	if pConst {
		if _, ok := divisor.(ast.Variable); ok {
			return Simplify(ast.MulOf(dividend, ast.PowOf(divisor, -1)))
		}
	}
	pNeg, pIsNeg := dividend.(ast.Minus)
	qNeg, qIsNeg := divisor.(ast.Minus)
	switch {
	case pIsNeg && qIsNeg:
		return Simplify(ast.DivOf(pNeg.Value, qNeg.Value))
	case pIsNeg:
		return ast.Minus{Value: Simplify(ast.DivOf(pNeg.Value, divisor))}
	case qIsNeg:
		return ast.Minus{Value: Simplify(ast.DivOf(dividend, qNeg.Value))}
	}
	return ast.DivOf(dividend, divisor)
}

// divisible uses integer-like modulo semantics. Non-integer constants take
// part through math.Mod, so 1/0.5 folds to 2.
func divisible(p, q float64) bool {
	return q != 0 && math.Mod(p, q) == 0
}

func simplifyPower(n ast.Power) ast.Expr {
	base, exponent := Simplify(n.Base), Simplify(n.Exponent)
	b, bConst := num(base)
	x, xConst := num(exponent)
	if bConst && xConst {
		return ast.Constant{Value: math.Pow(b, x)}
	}
	if xConst && x == 0 {
		return ast.Constant{Value: 1}
	}
	if xConst && x == 1 {
		return base
	}
	return ast.Power{Base: base, Exponent: exponent}
}

func simplifyLogarithm(n ast.Logarithm) ast.Expr {
	value := Simplify(n.Value)
	if isNum(value, n.Base) {
		return ast.Constant{Value: 1}
	}
	return ast.Logarithm{Value: value, Base: n.Base}
}
