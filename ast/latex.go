package ast

import (
	"fmt"
	"math"
)

// LaTeX renders an expression as LaTeX math markup. It mirrors Dump
// structurally and never simplifies.
func LaTeX(e Expr) string {
	switch n := e.(type) {
	case Constant:
		return formatNumber(n.Value)
	case Variable:
		return n.Name
	case Add:
		return fmt.Sprintf("%s + %s", LaTeX(n.Left), LaTeX(n.Right))
	case Subtract:
		return fmt.Sprintf("%s - %s", LaTeX(n.Left), LaTeX(n.Right))
	case Minus:
		return fmt.Sprintf("-{%s}", LaTeX(n.Value))
	case Multiply:
		return fmt.Sprintf("%s \\cdot %s", latexMulOperand(n.Left), latexMulOperand(n.Right))
	case Divide:
		return fmt.Sprintf("\\frac{%s}{%s}", LaTeX(n.Dividend), LaTeX(n.Divisor))
	case Power:
		return fmt.Sprintf("{%s}^{%s}", LaTeX(n.Base), LaTeX(n.Exponent))
	case Logarithm:
		if n.Base == math.E {
			return fmt.Sprintf("\\ln\\left(%s\\right)", LaTeX(n.Value))
		}
		return fmt.Sprintf("\\log_{%s}\\left(%s\\right)", formatNumber(n.Base), LaTeX(n.Value))
	}
	return ""
}

func latexMulOperand(e Expr) string {
	switch e.(type) {
	case Add, Subtract:
		return fmt.Sprintf("\\left(%s\\right)", LaTeX(e))
	}
	return LaTeX(e)
}
