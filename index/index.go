// Package index provides the ordered key sequence a series aligns its
// values against.
//
// An Index is a thin, immutable wrapper over a deferred sequence of keys.
// It enforces no uniqueness: duplicate keys are legal. Order is fixed at
// construction and never changes.
package index

import (
	"errors"
	"iter"

	"github.com/hupe1980/seriesgo/internal/lazy"
)

// ErrUnbounded is returned when a synthetic sequential index is asked for
// its own count or materialization; it only has a length in lockstep with
// a value sequence.
var ErrUnbounded = errors.New("index: synthetic index is unbounded")

// DefaultBase is the first key of a synthesized sequential index.
const DefaultBase = 0

// Index is an ordered sequence of key values.
type Index[K any] struct {
	keys      lazy.Seq[K]
	synthetic bool
}

// FromSlice creates an Index backed by a slice. The index is restartable
// and its count is known without traversal. The slice is referenced, not
// copied; callers must not mutate it.
func FromSlice[K any](keys []K) *Index[K] {
	return &Index[K]{keys: lazy.FromSlice(keys)}
}

// FromSeq creates an Index over an arbitrary finite iterable of keys.
// The iterable is treated as single-pass and is not consumed until the
// index (or a series holding it) is traversed.
func FromSeq[K any](keys iter.Seq[K]) *Index[K] {
	return &Index[K]{keys: lazy.FromSeq(keys)}
}

// Empty returns an Index with no keys.
func Empty[K any]() *Index[K] {
	return &Index[K]{keys: lazy.Empty[K]()}
}

// Default returns the synthesized sequential integer index 0, 1, 2, ...
// It is unbounded: keys are generated lazily in lockstep with whatever
// value sequence the index is paired against, so a very large value
// sequence can be paired without the index being materialized first.
func Default() *Index[int] {
	return &Index[int]{keys: lazy.Counter(DefaultBase), synthetic: true}
}

// Synthetic reports whether the index is a synthesized sequential index,
// which generates keys on demand and has no length of its own.
func (ix *Index[K]) Synthetic() bool {
	return ix.synthetic
}

// Keys returns the ordered key sequence. For a single-pass index the
// first traversal claims the underlying iterable; later traversals yield
// nothing.
func (ix *Index[K]) Keys() iter.Seq[K] {
	return ix.keys.Values()
}

// Len reports the key count and whether it is known without traversal.
func (ix *Index[K]) Len() (int, bool) {
	return ix.keys.Len()
}

// Count returns the key count, traversing the sequence if the count is
// not pre-known. Counting a single-pass index consumes it.
func (ix *Index[K]) Count() (int, error) {
	if ix.synthetic {
		return 0, ErrUnbounded
	}
	if n, ok := ix.keys.Len(); ok {
		return n, nil
	}
	c, err := ix.keys.Cursor()
	if err != nil {
		return 0, err
	}
	defer c.Stop()
	n := 0
	for {
		if _, ok := c.Next(); !ok {
			return n, nil
		}
		n++
	}
}

// ToSlice materializes the key sequence. Materializing a single-pass
// index consumes it.
func (ix *Index[K]) ToSlice() ([]K, error) {
	if ix.synthetic {
		return nil, ErrUnbounded
	}
	c, err := ix.keys.Cursor()
	if err != nil {
		return nil, err
	}
	defer c.Stop()
	var out []K
	for {
		k, ok := c.Next()
		if !ok {
			return out, nil
		}
		out = append(out, k)
	}
}

// Seq exposes the underlying deferred sequence. It is used by the series
// engine to pair keys with values in lockstep.
func (ix *Index[K]) Seq() lazy.Seq[K] {
	return ix.keys
}
