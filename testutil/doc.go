// Package testutil provides testing utilities for seriesgo.
//
// This package is intended for use in tests and benchmarks only.
// It provides a deterministic random number generator and helpers for
// generating value slices, key slices and single-pass iterables of a
// given size.
//
// # Random Data Generation
//
//	rng := testutil.NewRNG(seed)
//	vs := rng.Floats(10_000)          // uniform [0, 1)
//	ks := rng.Keys(10_000)            // shuffled distinct int keys
//
// # Single-Pass Iterables
//
//	seq := testutil.SinglePass(vs)    // claims exactly one traversal
package testutil
