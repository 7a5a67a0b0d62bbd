// Package testutil provides testing utilities for binvec.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating random bit vectors and controlled
// random sources.
//
// # Random Vector Generation
//
//	rng := testutil.NewRNG(seed)
//	v := rng.BitVector(10000)       // each bit set with probability 1/2
//	w := rng.Perturbed(v, 100)      // Hamming distance exactly 100 from v
//
// # Random Sources
//
//	src := &testutil.FixedSource{Value: 0.9}    // every draw returns 0.9
//	cnt := &testutil.CountingSource{Source: r} // counts draws from r
package testutil
