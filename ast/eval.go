package ast

import "math"

// Eval computes the numeric value of an expression under the given variable
// bindings. It reports false when the expression references an unbound
// variable.
func Eval(e Expr, vars map[string]float64) (float64, bool) {
	switch n := e.(type) {
	case Constant:
		return n.Value, true
	case Variable:
		v, ok := vars[n.Name]
		return v, ok
	case Add:
		l, lok := Eval(n.Left, vars)
		r, rok := Eval(n.Right, vars)
		return l + r, lok && rok
	case Subtract:
		l, lok := Eval(n.Left, vars)
		r, rok := Eval(n.Right, vars)
		return l - r, lok && rok
	case Minus:
		v, ok := Eval(n.Value, vars)
		return -v, ok
	case Multiply:
		l, lok := Eval(n.Left, vars)
		r, rok := Eval(n.Right, vars)
		return l * r, lok && rok
	case Divide:
		l, lok := Eval(n.Dividend, vars)
		r, rok := Eval(n.Divisor, vars)
		return l / r, lok && rok
	case Power:
		b, bok := Eval(n.Base, vars)
		x, xok := Eval(n.Exponent, vars)
		return math.Pow(b, x), bok && xok
	case Logarithm:
		v, ok := Eval(n.Value, vars)
		if n.Base == math.E {
			return math.Log(v), ok
		}
		return math.Log(v) / math.Log(n.Base), ok
	}
	return 0, false
}
