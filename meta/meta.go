// meta/meta.go
package meta

// MAX_PLAYERS defines the number of players in generated games.
const MAX_PLAYERS = 3

// MAX_SIGNALS defines the number of private signals per generated player.
const MAX_SIGNALS = 2

// MAX_ACTIONS defines the number of actions per generated player.
const MAX_ACTIONS = 2

// NUM_GAMES defines the number of games per experiment run.
const NUM_GAMES = 100

// UTILITY_RANGE defines the half-open range [0, UTILITY_RANGE) of generated utilities.
const UTILITY_RANGE = 10

// BELIEF_RANGE defines the half-open range [0, BELIEF_RANGE) of generated belief weights.
const BELIEF_RANGE = 5
