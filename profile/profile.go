// Package profile models per-player assignments over finite player sets:
// plain profiles (one value per player), incomplete profiles (one
// signal-indexed action table per player), and the flattening between them.
package profile

// Player identifies a player by position in the game's player set.
type Player int

// Profile is a total assignment of one value per player.
// Profiles are immutable - operations on a Profile always return a new copy.
type Profile[T comparable] []T

// New builds a profile from the given per-player values.
func New[T comparable](values ...T) Profile[T] {
	p := make(Profile[T], len(values))
	copy(p, values)
	return p
}

// Players returns the number of players the profile covers.
func (p Profile[T]) Players() int {
	return len(p)
}

// Get returns the value assigned to player i.
func (p Profile[T]) Get(i Player) T {
	return p[i]
}

// Move returns a new profile identical to p except that player i's entry is
// replaced by value.
func (p Profile[T]) Move(i Player, value T) Profile[T] {
	moved := make(Profile[T], len(p))
	copy(moved, p)
	moved[i] = value
	return moved
}

// Equal reports whether p and q assign the same value to every player.
func (p Profile[T]) Equal(q Profile[T]) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

// Assignments enumerates every total assignment over the given per-player
// domains, in row-major order (last player varies fastest). The result has
// one profile per element of the cartesian product; an empty domain for any
// player yields no assignments.
func Assignments[T comparable](domains [][]T) []Profile[T] {
	total := 1
	for _, domain := range domains {
		total *= len(domain)
	}
	if total == 0 {
		return nil
	}

	out := make([]Profile[T], 0, total)
	current := make(Profile[T], len(domains))
	var expand func(i int)
	expand = func(i int) {
		if i == len(domains) {
			out = append(out, New(current...))
			return
		}
		for _, value := range domains[i] {
			current[i] = value
			expand(i + 1)
		}
	}
	expand(0)
	return out
}
