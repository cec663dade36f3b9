// Package testutil provides testing utilities for vecmath.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, goroutine-safe RNG that generates vecmath.Vector
// values for property-style tests.
//
// # Random Vector Generation
//
//	rng := testutil.NewRNG(seed)
//	v := rng.UniformVector(8)             // components in [0, 1)
//	w := rng.UniformRangeVector(8, -5, 5) // components in [-5, 5)
//	g := rng.GaussianVector(8)            // standard normal components
//	rs := rng.RaggedVectors(16, 6)        // random dimensions in [0, 6]
package testutil
