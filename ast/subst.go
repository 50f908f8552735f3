package ast

// Substitute returns a copy of the expression with every occurrence of the
// named variable replaced by value. The input tree is left untouched.
func Substitute(e Expr, name string, value Expr) Expr {
	switch n := e.(type) {
	case Constant:
		return n
	case Variable:
		if n.Name == name {
			return value
		}
		return n
	case Add:
		return Add{Left: Substitute(n.Left, name, value), Right: Substitute(n.Right, name, value)}
	case Subtract:
		return Subtract{Left: Substitute(n.Left, name, value), Right: Substitute(n.Right, name, value)}
	case Minus:
		return Minus{Value: Substitute(n.Value, name, value)}
	case Multiply:
		return Multiply{Left: Substitute(n.Left, name, value), Right: Substitute(n.Right, name, value)}
	case Divide:
		return Divide{
			Dividend: Substitute(n.Dividend, name, value),
			Divisor:  Substitute(n.Divisor, name, value),
		}
	case Power:
		return Power{
			Base:     Substitute(n.Base, name, value),
			Exponent: Substitute(n.Exponent, name, value),
		}
	case Logarithm:
		return Logarithm{Value: Substitute(n.Value, name, value), Base: n.Base}
	}
	return e
}
