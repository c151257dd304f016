package seriesgo

import (
	"iter"

	"github.com/hupe1980/seriesgo/index"
	"github.com/hupe1980/seriesgo/internal/lazy"
)

// config is the tagged construction union. Exactly one of values (with an
// optional index) or pairs may be supplied; New resolves the shape once at
// entry instead of shape-sniffing inside the engine.
type config[K, V any] struct {
	values      []V
	valueSeq    iter.Seq[V]
	hasValues   bool
	hasValueSeq bool

	keys        []K
	indexSeq    iter.Seq[K]
	hasIndex    bool
	hasIndexSeq bool

	pairs      []Pair[K, V]
	pairSeq    iter.Seq[Pair[K, V]]
	hasPairs   bool
	hasPairSeq bool

	baked   bool
	logger  *Logger
	metrics MetricsCollector
}

// shape names the configuration arm, for diagnostics.
func (c config[K, V]) shape() string {
	switch {
	case (c.hasPairs || c.hasPairSeq):
		return "pairs"
	case (c.hasValues || c.hasValueSeq) && (c.hasIndex || c.hasIndexSeq):
		return "values+index"
	case c.hasValues || c.hasValueSeq:
		return "values"
	case c.hasIndex || c.hasIndexSeq:
		return "index"
	default:
		return "empty"
	}
}

// Option configures series construction.
type Option[K, V any] func(*config[K, V])

// Values supplies the value sequence as a slice. The slice is referenced,
// not copied; callers must not mutate it.
func Values[K, V any](vs []V) Option[K, V] {
	return func(c *config[K, V]) {
		c.values = vs
		c.hasValues = true
	}
}

// ValueSeq supplies the value sequence as an arbitrary finite iterable.
// The iterable is treated as single-pass and is not consumed at
// construction.
func ValueSeq[K, V any](seq iter.Seq[V]) Option[K, V] {
	return func(c *config[K, V]) {
		c.valueSeq = seq
		c.hasValueSeq = true
	}
}

// Index supplies the key sequence as a slice. It must align 1:1 in eventual
// length with the values; with both sides slice-backed the lengths are
// validated at construction.
func Index[K, V any](keys []K) Option[K, V] {
	return func(c *config[K, V]) {
		c.keys = keys
		c.hasIndex = true
	}
}

// IndexSeq supplies the key sequence as an arbitrary finite iterable.
// Misalignment with the values surfaces at the first full traversal.
func IndexSeq[K, V any](seq iter.Seq[K]) Option[K, V] {
	return func(c *config[K, V]) {
		c.indexSeq = seq
		c.hasIndexSeq = true
	}
}

// Pairs supplies both key and value sequences simultaneously as pre-formed
// pairs. Mutually exclusive with Values and Index.
func Pairs[K, V any](pairs []Pair[K, V]) Option[K, V] {
	return func(c *config[K, V]) {
		c.pairs = pairs
		c.hasPairs = true
	}
}

// PairSeq supplies pre-formed pairs as an arbitrary finite iterable.
// Mutually exclusive with Values and Index.
func PairSeq[K, V any](seq iter.Seq[Pair[K, V]]) Option[K, V] {
	return func(c *config[K, V]) {
		c.pairSeq = seq
		c.hasPairSeq = true
	}
}

// Baked forces immediate full evaluation at construction instead of
// deferring it to the first terminal operation.
func Baked[K, V any]() Option[K, V] {
	return func(c *config[K, V]) {
		c.baked = true
	}
}

// WithLogger configures structured logging for operations.
// Logging is disabled by default.
func WithLogger[K, V any](logger *Logger) Option[K, V] {
	return func(c *config[K, V]) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMetrics configures a metrics collector for monitoring operations.
// Metrics collection is disabled by default.
func WithMetrics[K, V any](mc MetricsCollector) Option[K, V] {
	return func(c *config[K, V]) {
		if mc != nil {
			c.metrics = mc
		}
	}
}

func applyOptions[K, V any](optFns []Option[K, V]) config[K, V] {
	c := config[K, V]{
		logger:  NoopLogger(),
		metrics: NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&c)
		}
	}
	return c
}

// New creates a Series from a configuration. Configuration errors (both
// values and pairs supplied, an index with nothing to align against, or
// slice-backed values and index of differing lengths) are reported here,
// before any iteration begins. All other misalignment surfaces at the
// first full traversal.
func New[K, V any](optFns ...Option[K, V]) (*Series[K, V], error) {
	cfg := applyOptions(optFns)
	s, err := build(cfg)
	cfg.logger.LogConstruct(cfg.shape(), err)
	if err != nil {
		return nil, err
	}
	if cfg.baked {
		return s.Bake()
	}
	return s, nil
}

func build[K, V any](cfg config[K, V]) (*Series[K, V], error) {
	hasValues := cfg.hasValues || cfg.hasValueSeq
	hasIndex := cfg.hasIndex || cfg.hasIndexSeq
	hasPairs := cfg.hasPairs || cfg.hasPairSeq

	switch {
	case hasPairs && (hasValues || hasIndex):
		return nil, ErrConflictingConfig

	case hasPairs:
		var pairs lazy.Seq[Pair[K, V]]
		if cfg.hasPairSeq {
			pairs = lazy.FromSeq(cfg.pairSeq)
		} else {
			pairs = lazy.FromSlice(cfg.pairs)
		}
		return &Series[K, V]{
			src:     &pairSeqSource[K, V]{pairs: pairs},
			logger:  cfg.logger,
			metrics: cfg.metrics,
		}, nil

	case hasValues:
		var vals lazy.Seq[V]
		if cfg.hasValueSeq {
			vals = lazy.FromSeq(cfg.valueSeq)
		} else {
			vals = lazy.FromSlice(cfg.values)
		}
		if !hasIndex {
			keys, ok := counterKeys[K]()
			if !ok {
				return nil, ErrDefaultIndexType
			}
			return &Series[K, V]{
				src:     &zipSource[K, V]{keys: keys, vals: vals, unbounded: true},
				vals:    vals,
				hasVals: true,
				logger:  cfg.logger,
				metrics: cfg.metrics,
			}, nil
		}
		var keys lazy.Seq[K]
		if cfg.hasIndexSeq {
			keys = lazy.FromSeq(cfg.indexSeq)
		} else {
			keys = lazy.FromSlice(cfg.keys)
		}
		if nk, ok := keys.Len(); ok {
			if nv, ok := vals.Len(); ok && nk != nv {
				return nil, &LengthMismatchError{Keys: nk, Values: nv}
			}
		}
		return &Series[K, V]{
			src:     &zipSource[K, V]{keys: keys, vals: vals},
			vals:    vals,
			hasVals: true,
			logger:  cfg.logger,
			metrics: cfg.metrics,
		}, nil

	case hasIndex:
		return nil, ErrUnknownConfig

	default:
		return &Series[K, V]{
			baked:   true,
			logger:  cfg.logger,
			metrics: cfg.metrics,
		}, nil
	}
}

// counterKeys returns the synthesized sequential key sequence when the key
// type is int. Synthesis is only defined for integer keys.
func counterKeys[K any]() (lazy.Seq[K], bool) {
	seq, ok := any(lazy.Counter(index.DefaultBase)).(lazy.Seq[K])
	return seq, ok
}
