package profile

import (
	"github.com/pkg/errors"

	"hypergame/utils"
)

// FlatIndex is the bijection between (player, signal) pairs and a dense
// index range, used to treat every (player, signal) pair as a player of a
// flattened game. Pairs are ordered by player, then by the player's signal
// domain order.
type FlatIndex[S comparable] struct {
	signals [][]S
	offsets []int
	total   int
}

// NewFlatIndex builds the index for the given per-player signal domains.
func NewFlatIndex[S comparable](signals [][]S) (*FlatIndex[S], error) {
	offsets := make([]int, len(signals))
	total := 0
	for i, domain := range signals {
		if len(domain) == 0 {
			return nil, errors.Errorf("player %d has an empty signal domain", i)
		}
		if utils.HasDuplicates(domain) {
			return nil, errors.Errorf("player %d has duplicate signals", i)
		}
		offsets[i] = total
		total += len(domain)
	}
	return &FlatIndex[S]{signals: signals, offsets: offsets, total: total}, nil
}

// Players returns the number of flat players, i.e. the total number of
// (player, signal) pairs.
func (f *FlatIndex[S]) Players() int {
	return f.total
}

// Signals returns player i's signal domain.
func (f *FlatIndex[S]) Signals(i Player) []S {
	return f.signals[i]
}

// Index returns the flat player for the pair (i, t).
func (f *FlatIndex[S]) Index(i Player, t S) (Player, error) {
	k := utils.FindIndex(f.signals[i], t)
	if k == -1 {
		return 0, errors.Errorf("signal %v is not in player %d's domain", t, i)
	}
	return Player(f.offsets[i] + k), nil
}

// Pair returns the (player, signal) pair for a flat player.
func (f *FlatIndex[S]) Pair(flat Player) (Player, S) {
	for i := len(f.offsets) - 1; i >= 0; i-- {
		if int(flat) >= f.offsets[i] {
			return Player(i), f.signals[i][int(flat)-f.offsets[i]]
		}
	}
	panic("flat player out of range")
}
