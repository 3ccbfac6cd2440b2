// Package game defines the three game models - normal-form, hypergraphical,
// and incomplete-information - over finite player, action, and signal sets,
// each with a utility evaluator and a Nash equilibrium predicate.
//
// All games are immutable after construction. Constructors validate shape
// (domain sizes, non-nil evaluators) and reject mismatches up front;
// evaluation itself never fails. Algebraic obligations on caller-supplied
// operators (the aggregation operator must be a commutative monoid with the
// declared identity, the orderings must be preorders) are not checked.
package game

// Preorder is a reflexive, transitive "at most as good as" relation:
// le(a, b) means b is at least as preferred as a.
type Preorder[T any] func(a, b T) bool

// Prec reports whether b strictly improves on a under le: b dominates a and
// a does not dominate b back.
func Prec[T any](le Preorder[T], a, b T) bool {
	return le(a, b) && !le(b, a)
}

// Monoid is an aggregation operator with its identity element. Callers must
// supply an Add that is commutative and associative with identity Zero.
type Monoid[V any] struct {
	Zero V
	Add  func(V, V) V
}

// Fold aggregates values with Add, starting from Zero.
func (m Monoid[V]) Fold(values ...V) V {
	acc := m.Zero
	for _, v := range values {
		acc = m.Add(acc, v)
	}
	return acc
}

// Evaluation bundles one player's evaluation structure: orderings over
// utilities U, belief weights W, and valuations V, the aggregation monoid
// over valuations, and the combination operator weighting a utility by a
// belief.
type Evaluation[U, W, V any] struct {
	UtilityLe Preorder[U]
	BeliefLe  Preorder[W]
	ValueLe   Preorder[V]
	Agg       Monoid[V]
	Combine   func(W, U) V
}
