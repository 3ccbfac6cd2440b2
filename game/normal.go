package game

import (
	"github.com/pkg/errors"

	"hypergame/profile"
	"hypergame/utils"
)

// Utility evaluates a full action profile to one player's outcome.
type Utility[A comparable, U any] func(i profile.Player, p profile.Profile[A]) U

// NormalForm is a game in strategic form: finite per-player action domains,
// a per-player utility of the full action profile, and a per-player
// preorder over outcomes.
type NormalForm[A comparable, U any] struct {
	actions [][]A
	utility Utility[A, U]
	le      []Preorder[U]
}

// NewNormalForm validates and builds a normal-form game.
func NewNormalForm[A comparable, U any](actions [][]A, utility Utility[A, U], le []Preorder[U]) (*NormalForm[A, U], error) {
	if len(actions) == 0 {
		return nil, errors.New("game has no players")
	}
	if utility == nil {
		return nil, errors.New("game has no utility function")
	}
	if len(le) != len(actions) {
		return nil, errors.Errorf("got %d preorders for %d players", len(le), len(actions))
	}
	for i, domain := range actions {
		if len(domain) == 0 {
			return nil, errors.Errorf("player %d has an empty action domain", i)
		}
		if utils.HasDuplicates(domain) {
			return nil, errors.Errorf("player %d has duplicate actions", i)
		}
		if le[i] == nil {
			return nil, errors.Errorf("player %d has no outcome preorder", i)
		}
	}
	return &NormalForm[A, U]{actions: actions, utility: utility, le: le}, nil
}

// Players returns the number of players.
func (g *NormalForm[A, U]) Players() int {
	return len(g.actions)
}

// Actions returns player i's action domain.
func (g *NormalForm[A, U]) Actions(i profile.Player) []A {
	return g.actions[i]
}

// Utility returns player i's outcome under the given action profile.
func (g *NormalForm[A, U]) Utility(i profile.Player, p profile.Profile[A]) U {
	return g.utility(i, p)
}

// NewProfile builds an action profile for this game, rejecting any action
// outside its player's declared domain.
func (g *NormalForm[A, U]) NewProfile(actions ...A) (profile.Profile[A], error) {
	if len(actions) != len(g.actions) {
		return nil, errors.Errorf("got %d actions for %d players", len(actions), len(g.actions))
	}
	for i, a := range actions {
		if !utils.Contains(g.actions[i], a) {
			return nil, errors.Errorf("action %v is not in player %d's domain", a, i)
		}
	}
	return profile.New(actions...), nil
}

// IsNash reports whether no player can strictly improve their own outcome by
// unilaterally switching to another action. Quantification over players and
// actions is finite; the check exits on the first profitable deviation.
func (g *NormalForm[A, U]) IsNash(p profile.Profile[A]) bool {
	for i := range g.actions {
		player := profile.Player(i)
		current := g.utility(player, p)
		for _, a := range g.actions[i] {
			deviated := g.utility(player, p.Move(player, a))
			if Prec(g.le[i], current, deviated) {
				return false
			}
		}
	}
	return true
}
