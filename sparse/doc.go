// Package sparse provides the managed compressed sparse matrix.
//
// Compressed is a plain value in compressed-column (Column) or
// compressed-row (Row) form. It never aliases native memory; conversions
// from native records always deep-copy.
//
// Invariants, checked by Validate:
//
//   - len(Values) == len(Indices) == Nonzeros
//   - len(Offsets) == major dimension + 1
//   - Offsets[0] == 0, Offsets[last] == Nonzeros, non-decreasing
//   - every index lies in [0, minor dimension)
//
// Pattern exposes the nonzero structure as a roaring64 bitmap, which is the
// usual input for symbolic analysis and structural comparisons.
package sparse
