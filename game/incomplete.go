package game

import (
	"github.com/pkg/errors"

	"hypergame/profile"
	"hypergame/utils"
)

// BayesianUtility evaluates a full action profile under the true signal
// profile to one player's base utility.
type BayesianUtility[S comparable, A comparable, U any] func(i profile.Player, actions profile.Profile[A], signals profile.Profile[S]) U

// Belief weights an assumed signal profile from one player's point of view.
type Belief[S comparable, W any] func(i profile.Player, signals profile.Profile[S]) W

// Incomplete is a game of incomplete information: each player holds a
// private signal, plans an action per signal, and evaluates plans by
// belief-weighted aggregation over the signal profiles consistent with
// their own signal.
type Incomplete[S comparable, A comparable, U, W, V any] struct {
	signals [][]S
	actions [][]A
	utility BayesianUtility[S, A, U]
	belief  Belief[S, W]
	eval    []Evaluation[U, W, V]
}

// NewIncomplete validates and builds an incomplete-information game.
func NewIncomplete[S comparable, A comparable, U, W, V any](
	signals [][]S,
	actions [][]A,
	utility BayesianUtility[S, A, U],
	belief Belief[S, W],
	eval []Evaluation[U, W, V],
) (*Incomplete[S, A, U, W, V], error) {
	if len(signals) == 0 {
		return nil, errors.New("game has no players")
	}
	if len(actions) != len(signals) || len(eval) != len(signals) {
		return nil, errors.Errorf(
			"got %d action domains and %d evaluations for %d players",
			len(actions), len(eval), len(signals))
	}
	if utility == nil {
		return nil, errors.New("game has no utility function")
	}
	if belief == nil {
		return nil, errors.New("game has no belief function")
	}
	for i := range signals {
		if len(signals[i]) == 0 {
			return nil, errors.Errorf("player %d has an empty signal domain", i)
		}
		if utils.HasDuplicates(signals[i]) {
			return nil, errors.Errorf("player %d has duplicate signals", i)
		}
		if len(actions[i]) == 0 {
			return nil, errors.Errorf("player %d has an empty action domain", i)
		}
		if utils.HasDuplicates(actions[i]) {
			return nil, errors.Errorf("player %d has duplicate actions", i)
		}
		if eval[i].ValueLe == nil || eval[i].Agg.Add == nil || eval[i].Combine == nil {
			return nil, errors.Errorf("player %d has an incomplete evaluation structure", i)
		}
	}
	return &Incomplete[S, A, U, W, V]{
		signals: signals,
		actions: actions,
		utility: utility,
		belief:  belief,
		eval:    eval,
	}, nil
}

// Players returns the number of players.
func (g *Incomplete[S, A, U, W, V]) Players() int {
	return len(g.signals)
}

// Signals returns player i's signal domain.
func (g *Incomplete[S, A, U, W, V]) Signals(i profile.Player) []S {
	return g.signals[i]
}

// Actions returns player i's action domain.
func (g *Incomplete[S, A, U, W, V]) Actions(i profile.Player) []A {
	return g.actions[i]
}

// Utility returns player i's base utility for an action profile under the
// given signal profile.
func (g *Incomplete[S, A, U, W, V]) Utility(i profile.Player, actions profile.Profile[A], signals profile.Profile[S]) U {
	return g.utility(i, actions, signals)
}

// Belief returns player i's weight for an assumed signal profile.
func (g *Incomplete[S, A, U, W, V]) Belief(i profile.Player, signals profile.Profile[S]) W {
	return g.belief(i, signals)
}

// Eval returns player i's evaluation structure.
func (g *Incomplete[S, A, U, W, V]) Eval(i profile.Player) Evaluation[U, W, V] {
	return g.eval[i]
}

// FlatIndex returns the (player, signal) indexing induced by the game's
// signal domains.
func (g *Incomplete[S, A, U, W, V]) FlatIndex() *profile.FlatIndex[S] {
	idx, err := profile.NewFlatIndex(g.signals)
	if err != nil {
		// Constructor validation guarantees non-empty, duplicate-free domains.
		panic(err)
	}
	return idx
}

// NewProfile builds an incomplete profile for this game from per-player
// action rows aligned to the signal domains, rejecting any action outside
// its player's declared domain.
func (g *Incomplete[S, A, U, W, V]) NewProfile(actions [][]A) (profile.IProfile[S, A], error) {
	p, err := profile.NewIProfile(g.signals, actions)
	if err != nil {
		return profile.IProfile[S, A]{}, err
	}
	for i := range actions {
		for _, a := range actions[i] {
			if !utils.Contains(g.actions[i], a) {
				return profile.IProfile[S, A]{}, errors.Errorf(
					"action %v is not in player %d's domain", a, i)
			}
		}
	}
	return p, nil
}

// ExpectedUtility aggregates, over every signal profile that assigns player
// i the signal t, the belief-weighted base utility of the plan resolved at
// that signal profile.
func (g *Incomplete[S, A, U, W, V]) ExpectedUtility(i profile.Player, t S, p profile.IProfile[S, A]) V {
	ev := g.eval[i]
	acc := ev.Agg.Zero
	for _, theta := range profile.Assignments(g.signals) {
		if theta.Get(i) != t {
			continue
		}
		u := g.utility(i, p.Project(theta), theta)
		acc = ev.Agg.Add(acc, ev.Combine(g.belief(i, theta), u))
	}
	return acc
}

// IsNash reports whether no player can strictly improve their expected
// utility at any of their signals by switching the action planned for that
// signal. Exits on the first profitable deviation.
func (g *Incomplete[S, A, U, W, V]) IsNash(p profile.IProfile[S, A]) bool {
	for i := range g.signals {
		player := profile.Player(i)
		for _, t := range g.signals[i] {
			current := g.ExpectedUtility(player, t, p)
			for _, a := range g.actions[i] {
				deviated := g.ExpectedUtility(player, t, p.BMove(player, t, a))
				if Prec(g.eval[i].ValueLe, current, deviated) {
					return false
				}
			}
		}
	}
	return true
}
