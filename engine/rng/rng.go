// Package rng wraps math/rand with deterministic position tracking.
// Every random decision in the engine flows through one RNG so a run
// is reproducible from its seed and call position.
package rng

import "math/rand"

// RNG is a seedable random source. Position increments with every
// call, enabling save/restore.
type RNG struct {
	seed int64
	src  *rand.Rand
	pos  int64
}

// New creates a deterministic RNG from a seed.
func New(seed int64) *RNG {
	return &RNG{
		seed: seed,
		src:  rand.New(rand.NewSource(seed)),
	}
}

// next draws exactly one value from the source. Every public method
// goes through here, so position maps one-to-one onto source draws
// and Restore can replay the stream exactly. rand.Intn is avoided:
// its rejection sampling can consume a variable number of draws.
func (r *RNG) next() int64 {
	r.pos++
	return r.src.Int63()
}

// Roll returns a random integer in [1, sides], like a die roll.
func (r *RNG) Roll(sides int) int {
	if sides < 1 {
		sides = 1
	}
	return int(r.next()%int64(sides)) + 1
}

// Intn returns a random integer in [0, n). n must be > 0.
func (r *RNG) Intn(n int) int {
	if n < 1 {
		n = 1
	}
	return int(r.next() % int64(n))
}

// Flip returns "even" or "odd" with equal probability.
func (r *RNG) Flip() string {
	if r.next()%2 == 0 {
		return "even"
	}
	return "odd"
}

// Seed returns the seed this RNG was created from.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Position returns the number of calls made since creation.
func (r *RNG) Position() int64 {
	return r.pos
}

// Restore creates an RNG and advances it to the given position,
// reproducing the exact state recorded in a save.
func Restore(seed int64, position int64) *RNG {
	r := New(seed)
	for i := int64(0); i < position; i++ {
		r.src.Int63()
	}
	r.pos = position
	return r
}
