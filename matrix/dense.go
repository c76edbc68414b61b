// SPDX-License-Identifier: MIT

// Package matrix - bridge to gonum dense matrices.
//
// Purpose:
//   - Hand a Sparse matrix to dense linear-algebra code (gonum/mat) and back.
//   - Values cross the bridge as float64. On the way back every cell must be
//     finite and representable in T: integer types accept only exact integers
//     within range; float32 accepts any finite value that does not overflow.
package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ToDense materializes m as a rows×cols gonum Dense. Entries outside the
// requested window are dropped; cells with no entry are zero.
// Errors:
//   - ErrNilMatrix if m is nil.
//   - ErrBadShape if rows <= 0 or cols <= 0 (gonum rejects empty shapes).
//
// Complexity: O(rows·cols + E log m).
func ToDense[T Number](m *Sparse[T], rows, cols int) (*mat.Dense, error) {
	if m == nil {
		return nil, matrixErrorf(ctxToDense, ErrNilMatrix)
	}
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf(ctxToDense, fmt.Errorf("%dx%d: %w", rows, cols, ErrBadShape))
	}
	d := mat.NewDense(rows, cols, nil)
	for e := range m.Entries() {
		if e.Row >= rows {
			break
		}
		if e.Col < cols {
			d.Set(e.Row, e.Col, float64(e.Value))
		}
	}

	return d, nil
}

// FromDense builds a Sparse matrix from any gonum matrix, skipping zero cells.
// Implementation:
//   - Stage 1: nil-check.
//   - Stage 2: scan cells row-major; validate each value via toElement.
//   - Stage 3: Set the converted value (zeros are elided by Set).
//
// Errors:
//   - ErrNilMatrix if a is nil.
//   - ErrNaNInf if a cell is NaN or ±Inf.
//   - ErrValueRange if a cell is not representable in T.
//
// Errors carry the offending coordinates; no partial matrix is returned.
//
// Complexity: O(r·c log m).
func FromDense[T Number](a mat.Matrix, opts ...Option) (*Sparse[T], error) {
	if a == nil {
		return nil, matrixErrorf(ctxFromDense, ErrNilMatrix)
	}
	out := New[T](opts...)
	r, c := a.Dims()
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v, err := toElement[T](a.At(i, j))
			if err != nil {
				return nil, matrixErrorf(ctxFromDense, fmt.Errorf("(%d,%d): %w", i, j, err))
			}
			out.Set(i, j, v)
		}
	}

	return out, nil
}

// toElement converts x to T under the numeric policy.
// Float element types may round but must not overflow; integer element
// types must round-trip exactly.
func toElement[T Number](x float64) (T, error) {
	var zero T
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return zero, fmt.Errorf("%v: %w", x, ErrNaNInf)
	}
	v := T(x)
	back := float64(v)
	if isFloatKind[T]() {
		if math.IsInf(back, 0) {
			return zero, fmt.Errorf("%v: %w", x, ErrValueRange)
		}
		return v, nil
	}
	// Out-of-range float→int conversion is implementation-defined; the
	// round trip catches both overflow and fractional values.
	if back != x {
		return zero, fmt.Errorf("%v: %w", x, ErrValueRange)
	}

	return v, nil
}

// isFloatKind reports whether T keeps fractional parts.
func isFloatKind[T Number]() bool {
	half := 0.5
	return T(half) != 0
}
