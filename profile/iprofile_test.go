package profile

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// 2 players: player 0 has signals {0, 1}, player 1 has signals {0, 1, 2}.
var testSignals = [][]int{{0, 1}, {0, 1, 2}}

func testIProfile(t *testing.T, actions [][]string) IProfile[int, string] {
	t.Helper()
	p, err := NewIProfile(testSignals, actions)
	require.NoError(t, err)
	return p
}

func TestNewIProfile(t *testing.T) {
	t.Run("rejects action rows misaligned with signal domains", func(t *testing.T) {
		_, err := NewIProfile(testSignals, [][]string{{"a", "b"}, {"c"}})
		require.Error(t, err, "Player 1 has 3 signals but 1 action")
	})

	t.Run("rejects duplicate signals", func(t *testing.T) {
		_, err := NewIProfile([][]int{{0, 0}}, [][]string{{"a", "b"}})
		require.Error(t, err)
	})
}

func TestBMove(t *testing.T) {
	t.Run("replaces only the planned action at the given pair", func(t *testing.T) {
		p := testIProfile(t, [][]string{{"a", "b"}, {"c", "d", "e"}})

		moved := p.BMove(1, 2, "x")

		require.Equal(t, "x", moved.At(1, 2), "Moved pair should hold the new action")
		require.Equal(t, "c", moved.At(1, 0), "Other signals of the same player should be unchanged")
		require.Equal(t, "d", moved.At(1, 1), "Other signals of the same player should be unchanged")
		require.Equal(t, "a", moved.At(0, 0), "Other players should be unchanged")
		require.Equal(t, "e", p.At(1, 2), "Original profile should be unchanged")
	})
}

func TestProject(t *testing.T) {
	t.Run("resolves each player's plan at their own signal", func(t *testing.T) {
		p := testIProfile(t, [][]string{{"a", "b"}, {"c", "d", "e"}})

		got := p.Project(New(1, 2))

		require.True(t, got.Equal(New("b", "e")),
			"Each entry should be that player's planned action at their signal")
	})
}

func TestFlattenProjectCoherence(t *testing.T) {
	idx, err := NewFlatIndex(testSignals)
	require.NoError(t, err)

	actionDomains := [][]string{{"a", "b"}, {"a", "b"}}
	rows := func(flat Profile[string]) [][]string {
		return [][]string{flat[0:2], flat[2:5]}
	}

	// Flat action space: one slot per (player, signal) pair.
	var flatDomains [][]string
	for i, domain := range testSignals {
		for range domain {
			flatDomains = append(flatDomains, actionDomains[i])
		}
	}

	t.Run("projecting a flattened profile by the true signals matches direct projection", func(t *testing.T) {
		for _, flat := range Assignments(flatDomains) {
			p, err := NewIProfile(testSignals, rows(flat))
			require.NoError(t, err)

			flattened := p.Flatten()
			for _, theta := range Assignments(testSignals) {
				direct := p.Project(theta)
				for i := 0; i < p.Players(); i++ {
					slot, err := idx.Index(Player(i), theta.Get(Player(i)))
					require.NoError(t, err)
					require.Equal(t, direct.Get(Player(i)), flattened.Get(slot),
						"Flattened entry at (player, true signal) should equal the direct projection")
				}
			}
		}
	})

	t.Run("moving a flattened profile commutes with bmove-then-flatten", func(t *testing.T) {
		for _, flat := range Assignments(flatDomains) {
			p, err := NewIProfile(testSignals, rows(flat))
			require.NoError(t, err)

			for i, domain := range testSignals {
				for _, s := range domain {
					for _, a := range actionDomains[i] {
						slot, err := idx.Index(Player(i), s)
						require.NoError(t, err)

						viaMove := p.Flatten().Move(slot, a)
						viaBMove := p.BMove(Player(i), s, a).Flatten()
						require.True(t, viaMove.Equal(viaBMove),
							"Flatten then move should equal bmove then flatten")
					}
				}
			}
		}
	})
}

func TestFlatIndex(t *testing.T) {
	t.Run("indexes every pair densely and round-trips", func(t *testing.T) {
		idx, err := NewFlatIndex(testSignals)
		require.NoError(t, err)

		require.Equal(t, 5, idx.Players(), "One flat player per (player, signal) pair")

		seen := map[Player]bool{}
		for i, domain := range testSignals {
			for _, s := range domain {
				flat, err := idx.Index(Player(i), s)
				require.NoError(t, err)
				require.False(t, seen[flat], "Pairs should map to distinct flat players")
				seen[flat] = true

				gotPlayer, gotSignal := idx.Pair(flat)
				require.Equal(t, Player(i), gotPlayer)
				require.Equal(t, s, gotSignal)
			}
		}
	})

	t.Run("rejects signals outside the domain", func(t *testing.T) {
		idx, err := NewFlatIndex(testSignals)
		require.NoError(t, err)

		_, err = idx.Index(0, 7)
		require.Error(t, err)
	})

	t.Run("rejects empty signal domains", func(t *testing.T) {
		_, err := NewFlatIndex([][]int{{0}, {}})
		require.Error(t, err)
	})
}
