// SPDX-License-Identifier: MIT

// Package matrix - transpose and multiplication kernels for Sparse.
//
// Determinism & Policy:
//   - Fixed loop orders: i over the left rows, j over the transposed right rows.
//   - Results are fresh matrices carrying the receiver's options.
//   - Mul is permissive: extents are not validated and missing cells are zero.
//     MulStrict adds a shape check on top of the same kernel.
package matrix

import "fmt"

// Transpose returns a new matrix where every entry (r, c, v) of m becomes
// (c, r, v). All other cells remain implicitly zero.
// Complexity: O(E log m).
func (m *Sparse[T]) Transpose() *Sparse[T] {
	if m == nil {
		return nil
	}
	out := newLike(m)
	for e := range m.Entries() {
		out.Set(e.Col, e.Row, e.Value)
	}

	return out
}

// Mul returns the product m × other.
// Implementation:
//   - Stage 1: transpose other once so its columns become addressable rows.
//   - Stage 2: for each output cell (i, j), pick the driver: the row with
//     fewer entries between row i of m and row j of the transpose. Ties keep
//     m's row as the driver.
//   - Stage 3: walk the driver, probe the other operand's row with At, skip
//     zero probes, and accumulate driver·probe.
//   - Stage 4: Set(i, j, sum); a zero sum is elided by the sparsity invariant.
//
// Behavior highlights:
//   - Shape mismatches are not errors: out-of-range probes read zero.
//   - Multiplying by an empty matrix yields a matrix with no entries.
//
// Complexity:
//   - Time O(E_b log m + Σ_ij min(|a_i|, |bᵀ_j|) · log m), Space O(E_result + E_b).
func (m *Sparse[T]) Mul(other *Sparse[T]) *Sparse[T] {
	if m == nil {
		return nil
	}
	out := newLike(m)
	if other == nil {
		return out
	}
	trans := other.Transpose()

	var i, j int
	for i = 0; i < len(m.rows); i++ {
		for j = 0; j < len(trans.rows); j++ {
			out.Set(i, j, dotSparser(m, i, trans, j))
		}
	}

	return out
}

// dotSparser computes the dot product of row i of a and row j of b, iterating
// the smaller row and probing the larger one.
func dotSparser[T Number](a *Sparse[T], i int, b *Sparse[T], j int) T {
	driver, probe, index := pickDriver(a, i, b, j)

	var sum T
	var zero T
	driver.ascend(func(k int, v T) bool {
		if p := probe.At(index, k); p != zero {
			sum += p * v
		}
		return true
	})

	return sum
}

// pickDriver selects the row to iterate for the dot product of row i of a and
// row j of b, and the operand plus row index to probe. The right row drives
// only when strictly shorter; ties keep the left row.
func pickDriver[T Number](a *Sparse[T], i int, b *Sparse[T], j int) (*row[T], *Sparse[T], int) {
	if b.rowLen(j) < a.rowLen(i) {
		return b.rows[j], a, i
	}

	return a.rows[i], b, j
}

// MulStrict returns a × b after validating operands.
// Errors:
//   - ErrNilMatrix if a or b is nil.
//   - ErrDimensionMismatch if a.Cols() > b.NumRows(), i.e. a stores an entry
//     in a column that has no matching row in b.
//
// Complexity: O(r_a log m + r_b) validation plus Mul.
func MulStrict[T Number](a, b *Sparse[T]) (*Sparse[T], error) {
	if a == nil || b == nil {
		return nil, matrixErrorf(ctxMulStrict, ErrNilMatrix)
	}
	if ac, br := a.Cols(), b.NumRows(); ac > br {
		return nil, matrixErrorf(ctxMulStrict,
			fmt.Errorf("a.Cols()=%d > b.NumRows()=%d: %w", ac, br, ErrDimensionMismatch))
	}

	return a.Mul(b), nil
}
