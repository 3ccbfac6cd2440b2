package game

import (
	"testing"

	"github.com/stretchr/testify/require"

	"hypergame/profile"
)

// signalingGame builds a 2-player incomplete game: player 0 holds signals
// {0, 1}, player 1 holds the single signal {0}, both choose actions {0, 1}.
// Base utilities are u0 = a0 + 2*a1 + s0 and u1 = a1 * (1 + s0); belief
// weight for every player is 1 + s0; aggregation is the weighted sum.
func signalingGame(t *testing.T) *Incomplete[int, int, int, int, int] {
	t.Helper()
	signals := [][]int{{0, 1}, {0}}
	actions := [][]int{{0, 1}, {0, 1}}
	utility := func(i profile.Player, a profile.Profile[int], s profile.Profile[int]) int {
		if i == 0 {
			return a.Get(0) + 2*a.Get(1) + s.Get(0)
		}
		return a.Get(1) * (1 + s.Get(0))
	}
	belief := func(i profile.Player, s profile.Profile[int]) int {
		return 1 + s.Get(0)
	}
	eval := []Evaluation[int, int, int]{WeightedSum[int](), WeightedSum[int]()}

	g, err := NewIncomplete(signals, actions, utility, belief, eval)
	require.NoError(t, err)
	return g
}

func TestExpectedUtility(t *testing.T) {
	g := signalingGame(t)

	// Player 0 plans action 1 under signal 0 and action 0 under signal 1;
	// player 1 plans action 1.
	p, err := g.NewProfile([][]int{{1, 0}, {1}})
	require.NoError(t, err)

	t.Run("aggregates only over signal profiles matching the player's signal", func(t *testing.T) {
		// Only theta = (0, 0) matches: weight 1, utility 1 + 2 + 0.
		require.Equal(t, 3, g.ExpectedUtility(0, 0, p))
		// Only theta = (1, 0) matches: weight 2, utility 0 + 2 + 1.
		require.Equal(t, 6, g.ExpectedUtility(0, 1, p))
	})

	t.Run("sums belief-weighted utilities over the opponent's signals", func(t *testing.T) {
		// theta = (0, 0): weight 1, utility 1; theta = (1, 0): weight 2, utility 2.
		require.Equal(t, 5, g.ExpectedUtility(1, 0, p))
	})
}

func TestIncompleteIsNash(t *testing.T) {
	g := signalingGame(t)

	t.Run("planning the maximal action everywhere is an equilibrium", func(t *testing.T) {
		p, err := g.NewProfile([][]int{{1, 1}, {1}})
		require.NoError(t, err)

		require.True(t, g.IsNash(p), "Both utilities increase in the player's own action")
	})

	t.Run("leaving a gain at any single signal breaks the equilibrium", func(t *testing.T) {
		p, err := g.NewProfile([][]int{{0, 1}, {1}})
		require.NoError(t, err)

		require.False(t, g.IsNash(p),
			"Player 0 should switch to action 1 under signal 0")
	})
}

func TestIncompleteNewProfile(t *testing.T) {
	g := signalingGame(t)

	t.Run("rejects actions outside a player's domain", func(t *testing.T) {
		_, err := g.NewProfile([][]int{{1, 7}, {1}})
		require.Error(t, err)
	})

	t.Run("rejects rows misaligned with the signal domains", func(t *testing.T) {
		_, err := g.NewProfile([][]int{{1}, {1}})
		require.Error(t, err)
	})
}

func TestNewIncomplete(t *testing.T) {
	signals := [][]int{{0}}
	actions := [][]int{{0, 1}}
	utility := func(i profile.Player, a, s profile.Profile[int]) int { return 0 }
	belief := func(i profile.Player, s profile.Profile[int]) int { return 1 }

	t.Run("rejects a missing belief function", func(t *testing.T) {
		_, err := NewIncomplete[int, int, int, int, int](
			signals, actions, utility, nil, []Evaluation[int, int, int]{WeightedSum[int]()})
		require.Error(t, err)
	})

	t.Run("rejects an evaluation count mismatching the player count", func(t *testing.T) {
		_, err := NewIncomplete[int, int, int, int, int](signals, actions, utility, belief, nil)
		require.Error(t, err)
	})

	t.Run("rejects duplicate signals", func(t *testing.T) {
		_, err := NewIncomplete([][]int{{0, 0}}, actions, utility, belief,
			[]Evaluation[int, int, int]{WeightedSum[int]()})
		require.Error(t, err)
	})
}
