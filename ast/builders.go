package ast

import (
	"fmt"
	"math"
)

// lift coerces a raw numeric operand into a Constant. Builders accept both
// expressions and untyped numbers so trees read naturally in either operand
// order. Anything else is a construction bug and panics.
func lift(v any) Expr {
	switch x := v.(type) {
	case Expr:
		return x
	case int:
		return Constant{Value: float64(x)}
	case int64:
		return Constant{Value: float64(x)}
	case float64:
		return Constant{Value: x}
	}
	panic(fmt.Sprintf("ast: %T is not an expression or a number", v))
}

// Num wraps a bare number into a Constant.
func Num(v float64) Constant { return Constant{Value: v} }

// Var returns a Variable with the given name.
func Var(name string) Variable { return Variable{Name: name} }

// AddOf builds the sum of two operands, in the order given.
func AddOf(left, right any) Expr { return Add{Left: lift(left), Right: lift(right)} }

// SubOf builds the difference of two operands.
func SubOf(left, right any) Expr { return Subtract{Left: lift(left), Right: lift(right)} }

// MulOf builds the product of two operands, in the order given.
func MulOf(left, right any) Expr { return Multiply{Left: lift(left), Right: lift(right)} }

// DivOf builds the quotient dividend/divisor.
func DivOf(dividend, divisor any) Expr {
	return Divide{Dividend: lift(dividend), Divisor: lift(divisor)}
}

// PowOf builds base raised to exponent.
func PowOf(base, exponent any) Expr { return Power{Base: lift(base), Exponent: lift(exponent)} }

// NegOf builds the unary negation of an operand.
func NegOf(value any) Expr { return Minus{Value: lift(value)} }

// LnOf builds a natural logarithm.
func LnOf(value any) Expr { return Logarithm{Value: lift(value), Base: math.E} }

// LogOf builds a logarithm in the given base.
func LogOf(value any, base float64) Expr { return Logarithm{Value: lift(value), Base: base} }
