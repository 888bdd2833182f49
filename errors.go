package supermatrix

import (
	"errors"
	"fmt"

	"github.com/hupe1980/supermatrix/native"
)

var (
	// ErrNotApplicable is returned by ToCompressed when the record's
	// (storage, numeric, matrix) triple has no conversion. It is an expected
	// outcome, not a sign of corruption.
	ErrNotApplicable = errors.New("supermatrix: conversion not applicable")

	// ErrNotImplemented is the sentinel wrapped by NotImplementedError.
	ErrNotImplemented = errors.New("supermatrix: conversion not implemented")

	// ErrClosed is returned when a Matrix is used after Close.
	ErrClosed = errors.New("supermatrix: matrix is closed")

	// ErrReleased is returned when a Matrix is used after Release.
	ErrReleased = errors.New("supermatrix: matrix ownership was released")
)

// NotImplementedError is the panic value raised by ToCompressed for tag
// triples that are recognized but have no conversion yet: compressed-column
// double precision with a non-general matrix type, and permuted
// compressed-column double precision. It marks a gap in coverage and must
// not be recovered and retried.
type NotImplementedError struct {
	Storage native.StorageType
	Numeric native.NumericType
	Matrix  native.MatrixType
}

func (e *NotImplementedError) Error() string {
	return fmt.Sprintf("supermatrix: conversion of (%s, %s, %s) is not implemented", e.Storage, e.Numeric, e.Matrix)
}

func (e *NotImplementedError) Unwrap() error { return ErrNotImplemented }
