package profile

import (
	"github.com/pkg/errors"

	"hypergame/utils"
)

// IProfile is an incomplete profile: one action per (player, signal) pair,
// i.e. a contingency plan for every player over their private signal domain.
// Like Profile it is immutable - BMove returns a new copy.
type IProfile[S comparable, A comparable] struct {
	signals [][]S
	actions [][]A // actions[i][k] responds to signals[i][k]
}

// NewIProfile builds an incomplete profile from per-player signal domains
// and per-player action rows aligned to those domains.
func NewIProfile[S comparable, A comparable](signals [][]S, actions [][]A) (IProfile[S, A], error) {
	if len(signals) != len(actions) {
		return IProfile[S, A]{}, errors.Errorf(
			"got %d signal domains but %d action rows", len(signals), len(actions))
	}
	for i := range signals {
		if len(signals[i]) == 0 {
			return IProfile[S, A]{}, errors.Errorf("player %d has an empty signal domain", i)
		}
		if utils.HasDuplicates(signals[i]) {
			return IProfile[S, A]{}, errors.Errorf("player %d has duplicate signals", i)
		}
		if len(actions[i]) != len(signals[i]) {
			return IProfile[S, A]{}, errors.Errorf(
				"player %d: %d actions for %d signals", i, len(actions[i]), len(signals[i]))
		}
	}
	return IProfile[S, A]{signals: signals, actions: actions}, nil
}

// Players returns the number of players the profile covers.
func (p IProfile[S, A]) Players() int {
	return len(p.signals)
}

// Signals returns player i's signal domain.
func (p IProfile[S, A]) Signals(i Player) []S {
	return p.signals[i]
}

// At returns the action player i plans under signal t.
func (p IProfile[S, A]) At(i Player, t S) A {
	k := utils.FindIndex(p.signals[i], t)
	if k == -1 {
		panic(errors.Errorf("signal %v is not in player %d's domain", t, i))
	}
	return p.actions[i][k]
}

// BMove returns a new incomplete profile identical to p except that player
// i's planned action under signal t is replaced by action.
func (p IProfile[S, A]) BMove(i Player, t S, action A) IProfile[S, A] {
	k := utils.FindIndex(p.signals[i], t)
	if k == -1 {
		panic(errors.Errorf("signal %v is not in player %d's domain", t, i))
	}
	moved := make([][]A, len(p.actions))
	copy(moved, p.actions)
	row := make([]A, len(p.actions[i]))
	copy(row, p.actions[i])
	row[k] = action
	moved[i] = row
	return IProfile[S, A]{signals: p.signals, actions: moved}
}

// Project resolves the incomplete profile at a signal profile: each player's
// entry is the action they plan under their own coordinate of signals.
func (p IProfile[S, A]) Project(signals Profile[S]) Profile[A] {
	projected := make(Profile[A], len(p.actions))
	for i := range p.actions {
		projected[i] = p.At(Player(i), signals.Get(Player(i)))
	}
	return projected
}

// Flatten re-indexes the incomplete profile as a plain profile over
// (player, signal) pairs, in the order of a FlatIndex built from the same
// signal domains.
func (p IProfile[S, A]) Flatten() Profile[A] {
	var flat Profile[A]
	for i := range p.actions {
		flat = append(flat, p.actions[i]...)
	}
	return flat
}

// Equal reports whether p and q plan the same action at every
// (player, signal) pair.
func (p IProfile[S, A]) Equal(q IProfile[S, A]) bool {
	if len(p.actions) != len(q.actions) {
		return false
	}
	for i := range p.actions {
		if len(p.actions[i]) != len(q.actions[i]) {
			return false
		}
		for k := range p.actions[i] {
			if p.actions[i][k] != q.actions[i][k] || p.signals[i][k] != q.signals[i][k] {
				return false
			}
		}
	}
	return true
}
