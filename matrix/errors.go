// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors. Public functions return
// these sentinels (possibly wrapped with call-site context via %w) and tests
// check them via errors.Is. Panics are reserved for programmer errors in
// option constructors.

package matrix

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "matrix: ..." for consistency and easy grepping.

var (
	// ErrOutOfRange indicates that a row index is outside [0, NumRows()).
	// Returned by Row; At never returns it (At is total).
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes under
	// strict checking, e.g. MulStrict where a.Cols() > b.NumRows().
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Sparse was passed where a matrix is required.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNaNInf signals a NaN or ±Inf value at ingestion (FromDense).
	// Stored entries are always finite so that Equal stays reflexive.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrValueRange signals a value that the element type cannot represent
	// exactly, e.g. 300 or -1 into uint8, or 1.5 into an integer type.
	ErrValueRange = errors.New("matrix: value not representable in element type")

	// ErrBadShape is returned when a requested dense shape is invalid (rows<=0 or cols<=0).
	ErrBadShape = errors.New("matrix: invalid shape")
)

// Method tags used in error wrappers.
const (
	ctxRow       = "Row"
	ctxMulStrict = "MulStrict"
	ctxToDense   = "ToDense"
	ctxFromDense = "FromDense"
)

// sparseErrorf attaches a method tag and the offending index to a sentinel.
// Example: "Sparse.Row(7): matrix: index out of range".
func sparseErrorf(method string, idx int, err error) error {
	return fmt.Errorf("Sparse.%s(%d): %w", method, idx, err)
}

// matrixErrorf wraps an underlying error with the given operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
