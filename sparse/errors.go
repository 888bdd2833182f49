package sparse

import "errors"

var (
	// ErrShape is returned when a dimension or count is negative.
	ErrShape = errors.New("sparse: invalid shape")
	// ErrLength is returned when Values, Indices or Offsets have the wrong length.
	ErrLength = errors.New("sparse: buffer length mismatch")
	// ErrOffsets is returned when Offsets does not start at 0, end at Nonzeros
	// or decreases somewhere.
	ErrOffsets = errors.New("sparse: malformed offsets")
	// ErrIndex is returned when an index is outside the minor dimension.
	ErrIndex = errors.New("sparse: index out of range")
	// ErrFormat is returned for an unknown Major value.
	ErrFormat = errors.New("sparse: unknown format")
)
