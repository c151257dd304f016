package seriesgo

import (
	"slices"
	"time"

	"github.com/hupe1980/seriesgo/frame"
)

// Bake forces full evaluation of the lazy pair source and returns a Series
// backed by the resulting concrete pair slice. Baking an already-baked
// series returns it unchanged. The upstream source is iterated exactly
// once; after baking, terminal operations and iteration read directly from
// the cache and re-run no transform logic.
//
// On failure the receiver is left unaffected.
func (s *Series[K, V]) Bake() (*Series[K, V], error) {
	if s.baked {
		return s, nil
	}
	pairs, err := s.materialize()
	if err != nil {
		return nil, err
	}
	return &Series[K, V]{
		cache:   pairs,
		baked:   true,
		logger:  s.logger,
		metrics: s.metrics,
	}, nil
}

// materialize walks the pair source to completion and fills the write-once
// cache, so that repeated terminal operations on the same series are O(1)
// reads instead of re-traversals of a possibly non-restartable upstream.
func (s *Series[K, V]) materialize() ([]Pair[K, V], error) {
	if s.baked {
		return s.cache, nil
	}
	start := time.Now()

	c, err := s.src.open()
	if err != nil {
		err = translateError(err)
		s.logger.LogBake(0, time.Since(start), err)
		s.metrics.RecordBake(0, time.Since(start), err)
		return nil, err
	}
	defer c.stop()

	var pairs []Pair[K, V]
	for {
		p, ok := c.next()
		if !ok {
			break
		}
		pairs = append(pairs, p)
	}
	if err := c.fail(); err != nil {
		s.logger.LogBake(len(pairs), time.Since(start), err)
		s.metrics.RecordBake(len(pairs), time.Since(start), err)
		return nil, err
	}

	s.cache = pairs
	s.baked = true
	s.logger.LogBake(len(pairs), time.Since(start), nil)
	s.metrics.RecordBake(len(pairs), time.Since(start), nil)
	return pairs, nil
}

// ToArray forces evaluation and returns the ordered values as a concrete
// slice. The first call on an unbaked series bakes it as a side effect;
// repeated calls read from the cache.
func (s *Series[K, V]) ToArray() ([]V, error) {
	pairs, err := s.materialize()
	if err != nil {
		return nil, err
	}
	out := make([]V, len(pairs))
	for i, p := range pairs {
		out[i] = p.Value
	}
	return out, nil
}

// ToPairs forces evaluation and returns the ordered (key, value) pairs as
// a concrete slice. The first call on an unbaked series bakes it as a side
// effect; repeated calls read from the cache.
func (s *Series[K, V]) ToPairs() ([]Pair[K, V], error) {
	pairs, err := s.materialize()
	if err != nil {
		return nil, err
	}
	return slices.Clone(pairs), nil
}

// RowFunc projects a value into a named tabular row.
type RowFunc[V any] func(V) frame.Row

// Inflate converts the series into a DataFrame, projecting each value into
// a tabular row via project and carrying the key sequence over as the
// frame's index column. Evaluation is forced if it has not happened yet.
func (s *Series[K, V]) Inflate(project RowFunc[V]) (*frame.DataFrame, error) {
	start := time.Now()
	pairs, err := s.materialize()
	if err != nil {
		s.logger.LogInflate(0, time.Since(start), err)
		s.metrics.RecordInflate(0, time.Since(start), err)
		return nil, err
	}

	keys := make([]any, len(pairs))
	rows := make([]frame.Row, len(pairs))
	for i, p := range pairs {
		keys[i] = p.Key
		rows[i] = project(p.Value)
	}
	df := frame.FromRows(keys, rows)

	s.logger.LogInflate(df.Len(), time.Since(start), nil)
	s.metrics.RecordInflate(df.Len(), time.Since(start), nil)
	return df, nil
}
