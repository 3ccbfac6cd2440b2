package experiments

import (
	"golang.org/x/exp/rand"

	"hypergame/game"
	"hypergame/meta"
	"hypergame/profile"
	"hypergame/utils"
)

// RandomIncomplete generates a small incomplete game over int domains with
// tabulated random utilities and belief weights, evaluated as a classical
// weighted sum (beliefs multiply utilities, contributions add).
func RandomIncomplete(rng *rand.Rand) *game.Incomplete[int, int, int, int, int] {
	players := 1 + rng.Intn(meta.MAX_PLAYERS)

	signals := make([][]int, players)
	actions := make([][]int, players)
	for i := range signals {
		signals[i] = intRange(1 + rng.Intn(meta.MAX_SIGNALS))
		actions[i] = intRange(1 + rng.Intn(meta.MAX_ACTIONS))
	}

	actionSpace := spaceSize(actions)
	signalSpace := spaceSize(signals)

	// Tabulate utilities per (player, action profile, signal profile) and
	// beliefs per (player, signal profile)
	utilities := make([][]int, players)
	beliefs := make([][]int, players)
	for i := range utilities {
		utilities[i] = make([]int, actionSpace*signalSpace)
		for k := range utilities[i] {
			utilities[i][k] = rng.Intn(meta.UTILITY_RANGE)
		}
		beliefs[i] = make([]int, signalSpace)
		for k := range beliefs[i] {
			beliefs[i][k] = rng.Intn(meta.BELIEF_RANGE)
		}
	}

	utility := func(i profile.Player, ap profile.Profile[int], sp profile.Profile[int]) int {
		return utilities[i][encode(ap, actions)*signalSpace+encode(sp, signals)]
	}
	belief := func(i profile.Player, sp profile.Profile[int]) int {
		return beliefs[i][encode(sp, signals)]
	}

	eval := make([]game.Evaluation[int, int, int], players)
	for i := range eval {
		eval[i] = game.WeightedSum[int]()
	}

	g, err := game.NewIncomplete(signals, actions, utility, belief, eval)
	if err != nil {
		panic(err)
	}
	return g
}

// Profiles enumerates every incomplete profile of the game.
func Profiles(g *game.Incomplete[int, int, int, int, int]) []profile.IProfile[int, int] {
	signals := make([][]int, g.Players())
	rowLens := make([]int, g.Players())
	var flatDomains [][]int
	for i := range signals {
		signals[i] = g.Signals(profile.Player(i))
		rowLens[i] = len(signals[i])
		for range signals[i] {
			flatDomains = append(flatDomains, g.Actions(profile.Player(i)))
		}
	}

	var out []profile.IProfile[int, int]
	for _, flat := range profile.Assignments(flatDomains) {
		rows := make([][]int, len(rowLens))
		next := 0
		for i, n := range rowLens {
			rows[i] = flat[next : next+n]
			next += n
		}
		p, err := profile.NewIProfile(signals, rows)
		if err != nil {
			panic(err)
		}
		out = append(out, p)
	}
	return out
}

// intRange returns the domain {0, ..., n-1}.
func intRange(n int) []int {
	domain := make([]int, n)
	for k := range domain {
		domain[k] = k
	}
	return domain
}

// encode maps a profile to its mixed-radix rank within the given domains.
func encode(p profile.Profile[int], domains [][]int) int {
	code := 0
	for i, domain := range domains {
		code = code*len(domain) + utils.FindIndex(domain, p.Get(profile.Player(i)))
	}
	return code
}

func spaceSize(domains [][]int) int {
	size := 1
	for _, domain := range domains {
		size *= len(domain)
	}
	return size
}
