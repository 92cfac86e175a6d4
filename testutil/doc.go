// Package testutil provides testing utilities for bitarray.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded random number generator and helpers for filling
// bit arrays with reproducible random data.
//
// # Random Fill
//
//	rng := testutil.NewRNG(seed)
//	b := bitarray.New(4096)
//	rng.FillRandom(b) // every bit pseudo-random, reproducible by seed
package testutil
