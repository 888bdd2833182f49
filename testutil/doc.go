// Package testutil provides testing utilities for supermatrix.
//
// This package is intended for use in tests and benchmarks only.
// It provides deterministic generators for sparse matrices and helpers
// for comparing them independently of their storage format.
//
// # Random Matrices
//
//	rng := testutil.NewRNG(seed)
//	c := rng.Compressed(100, 80, 0.05) // ~5% nonzeros, column format
//
// # Structured Matrices
//
//	c := testutil.Banded(1000, 2) // pentadiagonal
//
// # Format-Independent Comparison
//
//	assert.Equal(t, testutil.Entries(a), testutil.Entries(a.Transpose()))
package testutil
