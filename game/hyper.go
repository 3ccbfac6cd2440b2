package game

import (
	"github.com/pkg/errors"

	"hypergame/profile"
	"hypergame/utils"
)

// LocalGame is one sub-game of a hypergraphical game: the subset of players
// it involves and their local utilities. The utility receives the full
// action profile but may only depend on the coordinates of participating
// players.
type LocalGame[A comparable, V any] struct {
	Members []bool
	Utility Utility[A, V]
}

// Plays reports whether player i participates in the local game.
func (lg LocalGame[A, V]) Plays(i profile.Player) bool {
	return lg.Members[i]
}

// Hypergraphical is a game assembled from local games: each player's global
// utility is the aggregation, under that player's monoid, of their local
// utilities over the local games they play in.
type Hypergraphical[A comparable, V any] struct {
	actions [][]A
	locals  []LocalGame[A, V]
	agg     []Monoid[V]
	le      []Preorder[V]
}

// NewHypergraphical validates and builds a hypergraphical game.
func NewHypergraphical[A comparable, V any](actions [][]A, locals []LocalGame[A, V], agg []Monoid[V], le []Preorder[V]) (*Hypergraphical[A, V], error) {
	if len(actions) == 0 {
		return nil, errors.New("game has no players")
	}
	if len(agg) != len(actions) || len(le) != len(actions) {
		return nil, errors.Errorf(
			"got %d monoids and %d preorders for %d players", len(agg), len(le), len(actions))
	}
	for i, domain := range actions {
		if len(domain) == 0 {
			return nil, errors.Errorf("player %d has an empty action domain", i)
		}
		if utils.HasDuplicates(domain) {
			return nil, errors.Errorf("player %d has duplicate actions", i)
		}
		if agg[i].Add == nil {
			return nil, errors.Errorf("player %d has no aggregation operator", i)
		}
		if le[i] == nil {
			return nil, errors.Errorf("player %d has no valuation preorder", i)
		}
	}
	for n, lg := range locals {
		if len(lg.Members) != len(actions) {
			return nil, errors.Errorf(
				"local game %d covers %d players, want %d", n, len(lg.Members), len(actions))
		}
		if lg.Utility == nil {
			return nil, errors.Errorf("local game %d has no utility function", n)
		}
	}
	return &Hypergraphical[A, V]{actions: actions, locals: locals, agg: agg, le: le}, nil
}

// Players returns the number of players.
func (g *Hypergraphical[A, V]) Players() int {
	return len(g.actions)
}

// Actions returns player i's action domain.
func (g *Hypergraphical[A, V]) Actions(i profile.Player) []A {
	return g.actions[i]
}

// Locals returns the local games.
func (g *Hypergraphical[A, V]) Locals() []LocalGame[A, V] {
	return g.locals
}

// GlobalUtility aggregates player i's local utilities over the local games
// they play in. Aggregation order follows local-game order; the caller's
// commutative-monoid obligation makes the result order-independent.
func (g *Hypergraphical[A, V]) GlobalUtility(i profile.Player, p profile.Profile[A]) V {
	acc := g.agg[i].Zero
	for _, lg := range g.locals {
		if lg.Plays(i) {
			acc = g.agg[i].Add(acc, lg.Utility(i, p))
		}
	}
	return acc
}

// Normalize views the hypergraphical game as a normal-form game whose
// utility is the global utility.
func (g *Hypergraphical[A, V]) Normalize() *NormalForm[A, V] {
	nf, err := NewNormalForm(g.actions, g.GlobalUtility, g.le)
	if err != nil {
		// Both games validate the same shape, so this is unreachable.
		panic(err)
	}
	return nf
}

// NewProfile builds an action profile for this game, rejecting any action
// outside its player's declared domain.
func (g *Hypergraphical[A, V]) NewProfile(actions ...A) (profile.Profile[A], error) {
	return g.Normalize().NewProfile(actions...)
}

// IsNash reports whether the profile is a Nash equilibrium of the
// normal-form view.
func (g *Hypergraphical[A, V]) IsNash(p profile.Profile[A]) bool {
	return g.Normalize().IsNash(p)
}
