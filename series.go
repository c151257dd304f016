package seriesgo

import (
	"iter"

	"github.com/hupe1980/seriesgo/index"
	"github.com/hupe1980/seriesgo/internal/lazy"
)

// Pair is an ordered (key, value) tuple, the atomic unit moved through the
// pipeline. Immutable once produced.
type Pair[K, V any] struct {
	Key   K
	Value V
}

// Series is an ordered, index-aligned, lazily evaluated sequence of values.
//
// A Series is either backed by an unevaluated pair source or, once baked,
// by a concrete pair slice. Transforms never mutate a Series; each returns
// a new one wrapping a new deferred source. The only in-place mutation is
// the one-time, write-once cache fill performed when evaluation is forced.
type Series[K, V any] struct {
	src   pairSource[K, V]
	cache []Pair[K, V]
	baked bool

	// vals is the raw value sequence when the series was built by zipping
	// keys against values. It lets WithIndex replace the index without
	// routing values through the old pair source (and thus the old keys).
	vals    lazy.Seq[V]
	hasVals bool

	logger  *Logger
	metrics MetricsCollector
}

// FromSlice creates a Series over a slice of values with a synthesized
// sequential integer index. The length is known immediately; no iteration
// is needed to validate alignment.
func FromSlice[V any](vs []V) *Series[int, V] {
	vals := lazy.FromSlice(vs)
	return &Series[int, V]{
		src:     &zipSource[int, V]{keys: lazy.Counter(index.DefaultBase), vals: vals, unbounded: true},
		vals:    vals,
		hasVals: true,
		logger:  NoopLogger(),
		metrics: NoopMetricsCollector{},
	}
}

// FromSeq creates a Series over an arbitrary finite iterable of values with
// a synthesized sequential integer index. The iterable is treated as
// single-pass and is not consumed at construction; keys are generated
// lazily in lockstep as values are pulled.
func FromSeq[V any](seq iter.Seq[V]) *Series[int, V] {
	vals := lazy.FromSeq(seq)
	return &Series[int, V]{
		src:     &zipSource[int, V]{keys: lazy.Counter(index.DefaultBase), vals: vals, unbounded: true},
		vals:    vals,
		hasVals: true,
		logger:  NoopLogger(),
		metrics: NoopMetricsCollector{},
	}
}

// FromPairs creates a Series over a slice of pre-formed pairs. Index and
// values are derived by unzipping on demand.
func FromPairs[K, V any](pairs []Pair[K, V]) *Series[K, V] {
	return &Series[K, V]{
		src:     &pairSeqSource[K, V]{pairs: lazy.FromSlice(pairs)},
		logger:  NoopLogger(),
		metrics: NoopMetricsCollector{},
	}
}

// Empty returns a Series with no pairs. It is already baked: an empty
// series requires no further evaluation.
func Empty[K, V any]() *Series[K, V] {
	return &Series[K, V]{
		baked:   true,
		logger:  NoopLogger(),
		metrics: NoopMetricsCollector{},
	}
}

// IsBaked reports whether evaluation has been forced and cached.
func (s *Series[K, V]) IsBaked() bool {
	return s.baked
}

// Len reports the pair count and whether it is known without traversal.
func (s *Series[K, V]) Len() (int, bool) {
	if s.baked {
		return len(s.cache), true
	}
	return s.src.count()
}

// Index returns the ordered key sequence of the series. On an unbaked
// series the returned index is a single-pass projection over the pair
// source; traversing it consumes the source.
func (s *Series[K, V]) Index() *index.Index[K] {
	if s.baked {
		keys := make([]K, len(s.cache))
		for i, p := range s.cache {
			keys[i] = p.Key
		}
		return index.FromSlice(keys)
	}
	return index.FromSeq(func(yield func(K) bool) {
		for k := range s.Pairs() {
			if !yield(k) {
				return
			}
		}
	})
}

// Pairs returns a lazy iterator over the (key, value) pairs in declared
// order. Evaluation advances exactly as far as the consumer requests.
//
// On an unbaked series whose single-pass source has already been claimed,
// the iterator is empty; the condition is reported as ErrSourceConsumed by
// the next error-returning terminal operation instead.
func (s *Series[K, V]) Pairs() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if s.baked {
			for _, p := range s.cache {
				if !yield(p.Key, p.Value) {
					return
				}
			}
			return
		}
		c, err := s.src.open()
		if err != nil {
			return
		}
		defer c.stop()
		for {
			p, ok := c.next()
			if !ok {
				return
			}
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}

// Values returns a lazy iterator over the values in declared order,
// projecting the value out of each pair. See Pairs for reuse semantics.
func (s *Series[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range s.Pairs() {
			if !yield(v) {
				return
			}
		}
	}
}

// valuesSeq returns the raw value sequence of the series, for transforms
// that re-pair values against a replacement index.
func (s *Series[K, V]) valuesSeq() lazy.Seq[V] {
	if s.baked {
		vs := make([]V, len(s.cache))
		for i, p := range s.cache {
			vs[i] = p.Value
		}
		return lazy.FromSlice(vs)
	}
	if s.hasVals {
		return s.vals
	}
	return lazy.FromSeq(s.Values())
}

// source returns the pair source backing the series, wrapping the baked
// cache when evaluation has already happened.
func (s *Series[K, V]) source() pairSource[K, V] {
	if s.baked {
		return &pairSeqSource[K, V]{pairs: lazy.FromSlice(s.cache)}
	}
	return s.src
}
