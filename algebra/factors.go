package algebra

import "go.creack.net/symdiff/ast"

// factor is one (base, exponent) element of a flattened product.
type factor struct {
	base     ast.Expr
	exponent ast.Expr
}

// groupFactors is the Multiply fallback rule. It flattens the product into
// (base, exponent) pairs, merges pairs sharing a base by summing their
// exponents, and rebuilds the product left to right. The rebuilt product is
// only used when grouping strictly reduced the factor count; otherwise the
// input comes back unchanged, which guarantees termination when no progress
// is possible.
func groupFactors(product ast.Multiply) ast.Expr {
	factors := flattenProduct(product)

	keys := make([]string, 0, len(factors))
	groups := make(map[string]factor, len(factors))
	for _, f := range factors {
		key := f.base.Dump()
		g, ok := groups[key]
		if !ok {
			keys = append(keys, key)
			groups[key] = f
			continue
		}
		g.exponent = Simplify(ast.AddOf(g.exponent, f.exponent))
		groups[key] = g
	}
	if len(keys) >= len(factors) {
		return product
	}

	var rebuilt ast.Expr
	for _, key := range keys {
		g := groups[key]
		term := ast.PowOf(g.base, g.exponent)
		if rebuilt == nil {
			rebuilt = term
		} else {
			rebuilt = ast.MulOf(rebuilt, term)
		}
	}
	return Simplify(rebuilt)
}

// flattenProduct lists the (base, exponent) pairs of a product tree,
// recursing through nested Multiply nodes. A non-Power factor counts as
// base**1.
func flattenProduct(e ast.Expr) []factor {
	switch n := e.(type) {
	case ast.Multiply:
		return append(flattenProduct(n.Left), flattenProduct(n.Right)...)
	case ast.Power:
		return []factor{{base: n.Base, exponent: n.Exponent}}
	}
	return []factor{{base: e, exponent: ast.Constant{Value: 1}}}
}
