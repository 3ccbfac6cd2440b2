// Package transform maps incomplete-information games to equivalent
// hypergraphical games (the generalized Howson-Rosenthal transformation).
// The flattened game has one player per (player, signal) pair and one local
// game per signal profile; expected utilities and Nash equilibria carry
// over exactly.
package transform

import (
	"hypergame/game"
	"hypergame/profile"
)

// HowsonRosenthal builds the hypergraphical form of an incomplete game.
//
// Flat player (i, t) plays exactly the local games of signal profiles that
// assign t to i, and their local utility there is the belief-weighted base
// utility of the profile resolved at that signal profile - the same summand
// that ExpectedUtility aggregates. So for every incomplete profile p,
//
//	g.ExpectedUtility(i, t, p) == hg.GlobalUtility(idx(i,t), p.Flatten())
//
// and the two games have the same Nash equilibria under the flattening.
// The returned FlatIndex maps (player, signal) pairs to flat players.
func HowsonRosenthal[S comparable, A comparable, U, W, V any](g *game.Incomplete[S, A, U, W, V]) (*game.Hypergraphical[A, V], *profile.FlatIndex[S]) {
	idx := g.FlatIndex()

	actions := make([][]A, idx.Players())
	agg := make([]game.Monoid[V], idx.Players())
	le := make([]game.Preorder[V], idx.Players())
	for flat := range actions {
		i, _ := idx.Pair(profile.Player(flat))
		actions[flat] = g.Actions(i)
		agg[flat] = g.Eval(i).Agg
		le[flat] = g.Eval(i).ValueLe
	}

	signalDomains := make([][]S, g.Players())
	for i := range signalDomains {
		signalDomains[i] = g.Signals(profile.Player(i))
	}

	var locals []game.LocalGame[A, V]
	for _, theta := range profile.Assignments(signalDomains) {
		locals = append(locals, localGame(g, idx, theta))
	}

	hg, err := game.NewHypergraphical(actions, locals, agg, le)
	if err != nil {
		// The incomplete game's own validation guarantees a well-formed shape.
		panic(err)
	}
	return hg, idx
}

// localGame builds the local game for one signal profile: its members are
// the flat players (i, theta(i)), and member (i, t)'s utility resolves the
// flat profile at theta and weights player i's base utility by their belief
// in theta.
func localGame[S comparable, A comparable, U, W, V any](
	g *game.Incomplete[S, A, U, W, V],
	idx *profile.FlatIndex[S],
	theta profile.Profile[S],
) game.LocalGame[A, V] {
	members := make([]bool, idx.Players())
	for i := 0; i < g.Players(); i++ {
		flat, err := idx.Index(profile.Player(i), theta.Get(profile.Player(i)))
		if err != nil {
			panic(err)
		}
		members[flat] = true
	}

	return game.LocalGame[A, V]{
		Members: members,
		Utility: func(flat profile.Player, fp profile.Profile[A]) V {
			i, _ := idx.Pair(flat)
			resolved := resolveFlat(idx, fp, theta)
			ev := g.Eval(i)
			return ev.Combine(g.Belief(i, theta), g.Utility(i, resolved, theta))
		},
	}
}

// resolveFlat projects a flat action profile back to an ordinary profile
// over the original players: player j contributes the action planned at
// (j, theta(j)).
func resolveFlat[S comparable, A comparable](idx *profile.FlatIndex[S], fp profile.Profile[A], theta profile.Profile[S]) profile.Profile[A] {
	resolved := make(profile.Profile[A], theta.Players())
	for j := 0; j < theta.Players(); j++ {
		flat, err := idx.Index(profile.Player(j), theta.Get(profile.Player(j)))
		if err != nil {
			panic(err)
		}
		resolved[j] = fp.Get(flat)
	}
	return resolved
}
