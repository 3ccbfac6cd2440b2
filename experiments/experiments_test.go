package experiments

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"hypergame/meta"
	"hypergame/profile"
)

func TestRandomIncomplete(t *testing.T) {
	rng := rand.New(rand.NewSource(99))

	t.Run("generates games within the configured bounds", func(t *testing.T) {
		for n := 0; n < 20; n++ {
			g := RandomIncomplete(rng)

			require.LessOrEqual(t, g.Players(), meta.MAX_PLAYERS)
			require.GreaterOrEqual(t, g.Players(), 1)
			for i := 0; i < g.Players(); i++ {
				require.LessOrEqual(t, len(g.Signals(profile.Player(i))), meta.MAX_SIGNALS)
				require.LessOrEqual(t, len(g.Actions(profile.Player(i))), meta.MAX_ACTIONS)
			}
		}
	})
}

func TestProfiles(t *testing.T) {
	t.Run("enumerates one profile per action assignment over all pairs", func(t *testing.T) {
		rng := rand.New(rand.NewSource(3))
		g := RandomIncomplete(rng)

		want := 1
		for i := 0; i < g.Players(); i++ {
			player := profile.Player(i)
			for range g.Signals(player) {
				want *= len(g.Actions(player))
			}
		}

		require.Len(t, Profiles(g), want)
	})
}

func TestCheckTransformation(t *testing.T) {
	t.Run("every check passes on generated games", func(t *testing.T) {
		rng := rand.New(rand.NewSource(2025))

		for n := 0; n < 25; n++ {
			g := RandomIncomplete(rng)
			metric := CheckTransformation(g)

			require.True(t, metric.Holds(),
				"Transformation checks should pass: %+v", metric)
			require.Equal(t, metric.Profiles, metric.NashChecks,
				"One Nash check per profile")
			require.Positive(t, metric.UtilityChecks)
		}
	})
}
