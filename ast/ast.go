// Package ast defines the expression tree of the symbolic algebra engine.
//
// The variant set is closed: Constant, Variable, Add, Subtract, Minus,
// Multiply, Divide, Power and Logarithm. Every consumer switches over these
// types exhaustively, so growing the set is a compile-time-visible change.
// Trees are immutable; rewrites always allocate new nodes.
package ast

import (
	"fmt"
	"math"
	"strconv"
)

// Expr represents any node of an expression tree.
type Expr interface {
	// Dump returns the canonical text rendering of the expression.
	// Two expressions are equal iff their dumps are equal.
	Dump() string
	expr()
}

// E is the distinguished Euler constant. It renders as "e".
var E = Constant{Value: math.E}

// Constant is a literal scalar.
type Constant struct {
	Value float64
}

func (Constant) expr() {}

func (c Constant) Dump() string { return formatNumber(c.Value) }

// Is reports whether the constant holds the given bare numeric value.
func (c Constant) Is(v float64) bool { return c.Value == v }

// Variable is a symbolic identifier.
type Variable struct {
	Name string
}

func (Variable) expr() {}

func (v Variable) Dump() string { return v.Name }

// Add is a sum.
type Add struct {
	Left, Right Expr
}

func (Add) expr() {}

func (a Add) Dump() string { return fmt.Sprintf("%s + %s", a.Left.Dump(), a.Right.Dump()) }

// Subtract is a difference.
type Subtract struct {
	Left, Right Expr
}

func (Subtract) expr() {}

func (s Subtract) Dump() string { return fmt.Sprintf("%s - %s", s.Left.Dump(), s.Right.Dump()) }

// Minus is a unary negation.
type Minus struct {
	Value Expr
}

func (Minus) expr() {}

// Dump renders "-3" for a negated constant but "- x" for anything else.
func (m Minus) Dump() string {
	if _, ok := m.Value.(Constant); ok {
		return fmt.Sprintf("-%s", m.Value.Dump())
	}
	return fmt.Sprintf("- %s", m.Value.Dump())
}

// Multiply is a product.
type Multiply struct {
	Left, Right Expr
}

func (Multiply) expr() {}

func (m Multiply) Dump() string {
	return fmt.Sprintf("%s * %s", mulOperand(m.Left), mulOperand(m.Right))
}

// mulOperand parenthesizes sums and differences so products read back with
// the right precedence.
func mulOperand(e Expr) string {
	switch e.(type) {
	case Add, Subtract:
		return "(" + e.Dump() + ")"
	}
	return e.Dump()
}

// Divide is a quotient.
type Divide struct {
	Dividend, Divisor Expr
}

func (Divide) expr() {}

func (d Divide) Dump() string {
	return fmt.Sprintf("%s / %s", d.Dividend.Dump(), d.Divisor.Dump())
}

// Power is an exponentiation.
type Power struct {
	Base, Exponent Expr
}

func (Power) expr() {}

func (p Power) Dump() string {
	return fmt.Sprintf("%s ** %s", p.Base.Dump(), p.Exponent.Dump())
}

// Logarithm is a logarithm of Value in a numeric Base, math.E by default.
type Logarithm struct {
	Value Expr
	Base  float64
}

func (Logarithm) expr() {}

func (l Logarithm) Dump() string {
	if l.Base == math.E {
		return fmt.Sprintf("ln(%s)", l.Value.Dump())
	}
	return fmt.Sprintf("log(%s, %s)", l.Value.Dump(), formatNumber(l.Base))
}

func formatNumber(v float64) string {
	if v == math.E {
		return "e"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
