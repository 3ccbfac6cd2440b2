package game

import "golang.org/x/exp/constraints"

// Stock evaluation structures for the common numeric case. Games with
// non-numeric outcomes build their Evaluation by hand.

// LeOrdered is the natural order on an ordered type, as a preorder.
func LeOrdered[T constraints.Ordered](a, b T) bool {
	return a <= b
}

// Sum is the additive monoid over a numeric type.
func Sum[T constraints.Integer | constraints.Float]() Monoid[T] {
	return Monoid[T]{
		Zero: 0,
		Add:  func(a, b T) T { return a + b },
	}
}

// WeightedSum is the evaluation structure of classical expected utility:
// belief weights multiply utilities and the products are summed, all under
// the natural numeric order.
func WeightedSum[T constraints.Integer | constraints.Float]() Evaluation[T, T, T] {
	return Evaluation[T, T, T]{
		UtilityLe: LeOrdered[T],
		BeliefLe:  LeOrdered[T],
		ValueLe:   LeOrdered[T],
		Agg:       Sum[T](),
		Combine:   func(w, u T) T { return w * u },
	}
}
