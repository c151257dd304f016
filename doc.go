// Package seriesgo provides a lazily-evaluated, index-aligned series
// abstraction for Go.
//
// A Series is an ordered collection of values, each associated with a key
// drawn from an independently specifiable index sequence. Transformations
// chain without evaluating anything; computation happens only when a
// terminal operation forces it.
//
// # Quick Start
//
// Construct from a slice (keys default to 0, 1, 2, ...):
//
//	s := seriesgo.FromSlice([]int{10, 20, 30})
//	vs, _ := seriesgo.Select(s, func(v, i int) int { return v + i }).ToArray()
//	// vs == []int{10, 21, 32}
//
// Construct from a configuration:
//
//	s, err := seriesgo.New(
//	    seriesgo.Values[string, int]([]int{1, 2, 3}),
//	    seriesgo.Index[string, int]([]string{"a", "b", "c"}),
//	)
//
// Arbitrary finite iterables work too, without being materialized up
// front; keys are generated in lockstep as values are pulled:
//
//	s := seriesgo.FromSeq(stream)   // stream is an iter.Seq[V]
//
// # Laziness and Baking
//
// Every transform (Select, Skip, WithIndex, ResetIndex) returns a new
// Series wrapping a new deferred pair source; the upstream is never
// consumed at transform time. Terminal operations (ToArray, ToPairs, Bake,
// Inflate) are the only points at which the underlying sequences are
// walked.
//
// A source built from an arbitrary iterable has at most one valid full
// traversal. Bake converts it into a concrete, repeatedly-readable pair
// slice and is the recommended mitigation anywhere a series will be
// consumed more than once:
//
//	baked, err := s.Bake()
//	a, _ := baked.ToArray()  // reads the cache
//	b, _ := baked.ToPairs()  // reads the cache, no recomputation
//
// # Error Model
//
// Configuration errors are reported synchronously by New. An index/values
// cardinality skew between iterables is detected at the first full
// traversal and reported as a *LengthMismatchError carrying exact counts.
// Consuming an already-claimed single-pass source again fails with
// ErrSourceConsumed. Nothing in this package retries or recovers silently.
//
// # Key Features
//
//   - Pull-based evaluation: advances exactly as far as the consumer asks
//   - Lockstep pairing of index and values, even under Skip and early stops
//   - Write-once bake cache preventing O(n*k) recomputation of deep chains
//   - Structured logging via log/slog and pluggable metrics collection
//   - DataFrame inflation with CSV/JSON/YAML interchange in package frame
package seriesgo
