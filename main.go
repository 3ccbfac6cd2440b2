package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"hypergame/experiments"
	"hypergame/meta"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	seed := uint64(time.Now().UnixNano())
	log.Info().Int("games", meta.NUM_GAMES).Uint64("seed", seed).Msg("running equivalence experiment")

	if err := experiments.RunEquivalenceExperiment(meta.NUM_GAMES, seed); err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}
}
