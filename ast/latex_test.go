package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.creack.net/symdiff/ast"
)

func TestLaTeX(t *testing.T) {
	tests := []struct {
		name string
		expr ast.Expr
		want string
	}{
		{name: "constant", expr: ast.Num(2), want: "2"},
		{name: "euler", expr: ast.E, want: "e"},
		{name: "sum", expr: ast.AddOf(x, 1), want: "x + 1"},
		{name: "difference", expr: ast.SubOf(x, 1), want: "x - 1"},
		{name: "negation", expr: ast.NegOf(x), want: "-{x}"},
		{name: "product", expr: ast.MulOf(2, x), want: "2 \\cdot x"},
		{name: "product of sum", expr: ast.MulOf(2, ast.AddOf(x, 1)), want: "2 \\cdot \\left(x + 1\\right)"},
		{name: "fraction", expr: ast.DivOf(1, x), want: "\\frac{1}{x}"},
		{name: "power", expr: ast.PowOf(x, 2), want: "{x}^{2}"},
		{name: "natural log", expr: ast.LnOf(x), want: "\\ln\\left(x\\right)"},
		{name: "log base 2", expr: ast.LogOf(x, 2), want: "\\log_{2}\\left(x\\right)"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ast.LaTeX(tc.expr))
		})
	}
}
