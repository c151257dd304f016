package testutil

import (
	"iter"
	"math/rand"
)

// RNG struct encapsulates the random number generator and seed.
type RNG struct {
	rand *rand.Rand
	seed int64
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.rand.Seed(r.seed)
}

// Floats generates n uniform random values in [0, 1).
func (r *RNG) Floats(n int) []float64 {
	vs := make([]float64, n)
	for i := range vs {
		vs[i] = r.rand.Float64()
	}
	return vs
}

// Ints generates n random non-negative integers below bound.
func (r *RNG) Ints(n, bound int) []int {
	vs := make([]int, n)
	for i := range vs {
		vs[i] = r.rand.Intn(bound)
	}
	return vs
}

// Keys generates n distinct int keys in shuffled order, for exercising
// non-sequential and non-sorted index sequences.
func (r *RNG) Keys(n int) []int {
	ks := make([]int, n)
	for i := range ks {
		ks[i] = i
	}
	r.rand.Shuffle(n, func(i, j int) {
		ks[i], ks[j] = ks[j], ks[i]
	})
	return ks
}

// SinglePass wraps a slice in an iterable that tolerates exactly one
// traversal, mimicking a generator or stream source.
func SinglePass[T any](vs []T) iter.Seq[T] {
	done := false
	return func(yield func(T) bool) {
		if done {
			return
		}
		done = true
		for _, v := range vs {
			if !yield(v) {
				return
			}
		}
	}
}
