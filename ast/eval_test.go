package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.creack.net/symdiff/ast"
)

func TestEval(t *testing.T) {
	tests := []struct {
		name string
		expr ast.Expr
		vars map[string]float64
		want float64
		ok   bool
	}{
		{name: "constant", expr: ast.Num(3), want: 3, ok: true},
		{name: "bound variable", expr: x, vars: map[string]float64{"x": 2}, want: 2, ok: true},
		{name: "unbound variable", expr: x},
		{name: "polynomial", expr: ast.AddOf(ast.MulOf(2, ast.PowOf(x, 3)), 1), vars: map[string]float64{"x": 2}, want: 17, ok: true},
		{name: "difference", expr: ast.SubOf(x, 1), vars: map[string]float64{"x": 2}, want: 1, ok: true},
		{name: "quotient", expr: ast.DivOf(x, 4), vars: map[string]float64{"x": 2}, want: 0.5, ok: true},
		{name: "negation", expr: ast.NegOf(x), vars: map[string]float64{"x": 2}, want: -2, ok: true},
		{name: "natural log", expr: ast.LnOf(ast.E), want: 1, ok: true},
		{name: "log base 2", expr: ast.LogOf(8, 2), want: 3, ok: true},
		{name: "partially unbound", expr: ast.AddOf(x, ast.Var("y")), vars: map[string]float64{"x": 2}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ast.Eval(tc.expr, tc.vars)
			require.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.InDelta(t, tc.want, got, 1e-12)
			}
		})
	}
}

func TestSubstitute(t *testing.T) {
	e := ast.AddOf(ast.PowOf(x, 2), x)

	got := ast.Substitute(e, "x", ast.Var("y"))
	assert.Equal(t, "y ** 2 + y", got.Dump())
	// The input tree is untouched.
	assert.Equal(t, "x ** 2 + x", e.Dump())

	got = ast.Substitute(ast.LnOf(x), "x", ast.AddOf(x, 1))
	assert.Equal(t, "ln(x + 1)", got.Dump())

	got = ast.Substitute(e, "z", ast.Num(0))
	assert.Equal(t, e.Dump(), got.Dump())
}
