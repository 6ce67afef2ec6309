package model

// PairRule is an unordered constraint between two identities. Depending on
// the rule set it belongs to, the pair must never share a team (exclusion)
// or must always share one (cohesion).
type PairRule struct {
	A string
	B string
}

// Normalized returns the rule with both sides canonicalized.
func (r PairRule) Normalized() PairRule {
	return PairRule{A: NormalizeKey(r.A), B: NormalizeKey(r.B)}
}

// Key returns the canonical pair key: the two normalized identities in
// lexicographic order, separated by a NUL byte. Equal pairs in either
// orientation share the same key, which is what dedup and lookup rely on.
func (r PairRule) Key() string {
	a, b := NormalizeKey(r.A), NormalizeKey(r.B)
	if b < a {
		a, b = b, a
	}
	return a + "\x00" + b
}
