package seriesgo

import (
	"github.com/hupe1980/seriesgo/index"
	"github.com/hupe1980/seriesgo/internal/lazy"
)

// Select returns a new Series whose pairs, when iterated, carry
// fn(value, position) in place of each original value. Keys are untouched.
//
// position is the zero-based position of the pair within this series, not
// the key: it restarts at 0 for every derived series, independent of the
// key domain. fn is not invoked until the pair is actually requested by a
// consumer, and nothing is memoized beyond what Bake provides.
func Select[K, V, R any](s *Series[K, V], fn func(value V, position int) R) *Series[K, R] {
	return &Series[K, R]{
		src:     &selectSource[K, V, R]{up: s.source(), fn: fn, metrics: s.metrics},
		logger:  s.logger,
		metrics: s.metrics,
	}
}

// WithIndex returns a new Series with the same values but a replaced key
// sequence. The current values are neither consumed nor validated here;
// if the new index and the values differ in eventual count, the mismatch
// surfaces as a LengthMismatchError at the first full traversal, once both
// sequences are exhausted.
func WithIndex[K, V, K2 any](s *Series[K, V], ix *index.Index[K2]) *Series[K2, V] {
	vals := s.valuesSeq()
	return &Series[K2, V]{
		src:     &zipSource[K2, V]{keys: ix.Seq(), vals: vals, unbounded: ix.Synthetic()},
		vals:    vals,
		hasVals: true,
		logger:  s.logger,
		metrics: s.metrics,
	}
}

// ResetIndex returns a new Series with the same values and a freshly
// synthesized sequential integer index 0, 1, ..., len-1.
func ResetIndex[K, V any](s *Series[K, V]) *Series[int, V] {
	vals := s.valuesSeq()
	return &Series[int, V]{
		src:     &zipSource[int, V]{keys: lazy.Counter(index.DefaultBase), vals: vals, unbounded: true},
		vals:    vals,
		hasVals: true,
		logger:  s.logger,
		metrics: s.metrics,
	}
}

// Skip returns a new Series whose pair sequence discards the first n
// pairs. The discarded pairs are consumed from the upstream source one
// pair at a time, index and values advancing together. n <= 0 yields the
// receiver unchanged; n at or beyond the total length yields an empty
// sequence.
func (s *Series[K, V]) Skip(n int) *Series[K, V] {
	if n <= 0 {
		return s
	}
	if s.baked {
		rest := s.cache[min(n, len(s.cache)):]
		return &Series[K, V]{
			cache:   rest,
			baked:   true,
			logger:  s.logger,
			metrics: s.metrics,
		}
	}
	return &Series[K, V]{
		src:     &dropSource[K, V]{up: s.src, n: n},
		logger:  s.logger,
		metrics: s.metrics,
	}
}
