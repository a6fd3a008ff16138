// Package testutil provides testing utilities for bookdex.
//
// This package is intended for use in tests and benchmarks only. It
// provides a fixed library fixture and a seeded generator for larger
// pseudo-random collections.
//
// # Fixed Fixture
//
//	records := testutil.Library()
//
// # Generated Collections
//
//	rng := testutil.NewRNG(seed)
//	records := rng.Records(500) // same seed, same collection
package testutil
