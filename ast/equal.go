package ast

import "hash/fnv"

// Equal reports whether two expressions share the same canonical rendering.
// This is textual identity, not mathematical equivalence: "x + 1" and
// "1 + x" are distinct.
func Equal(a, b Expr) bool { return a.Dump() == b.Dump() }

// Hash returns a hash of the canonical rendering, consistent with Equal.
func Hash(e Expr) uint64 {
	h := fnv.New64a()
	h.Write([]byte(e.Dump()))
	return h.Sum64()
}
