// SPDX-License-Identifier: MIT

// Package matrix provides a generic sparse matrix over numeric element types.
//
// What & Why:
//
//	Sparse[T] stores only the nonzero entries of a matrix. Rows form a dense,
//	zero-based slice; each row is an ordered map from column index to a
//	nonzero value. The container is built for matrices dominated by zeros,
//	where a dense r×c buffer would waste memory and multiplication time.
//
// Invariants:
//
//   - No row ever stores a zero value. Set(r, c, 0) is a no-op that reports false.
//   - Rows are dense: writing to row r grows the matrix to r+1 rows, with any
//     newly exposed rows left empty.
//   - Columns inside a row are sparse and kept in ascending order, so
//     Entries() and String() are deterministic regardless of insertion order.
//   - Matrices never share row storage. Clone, Transpose and Mul always
//     produce independently owned results.
//
// Access is total: At(r, c) returns zero for any absent coordinate, including
// rows beyond NumRows() and negative indices. The only propagated fault is
// Row(i) on an out-of-range index, which returns ErrOutOfRange.
//
// Multiplication:
//
//	Mul transposes the right operand once, then for every output cell (i, j)
//	walks the sparser of row i of the left operand and row j of the
//	transpose, probing the other one with O(log m) point lookups. Cost per
//	cell is governed by the smaller of the two rows instead of the full
//	inner dimension. Shapes are not validated; mismatched extents simply
//	contribute zeros. MulStrict adds an explicit shape check for callers that
//	want one.
//
// Set semantics:
//
//	By default Set is insert-only: the first nonzero write to a coordinate
//	wins and later writes report false. WithOverwrite switches a matrix to
//	last-write-wins. See options.go.
//
// Concurrency:
//
//	Sparse is not synchronized. Concurrent mutation without external locking
//	is a data race; so is mutating a matrix while ranging over Entries().
//
// Complexity quicksheet (E = stored entries, m = entries in one row):
//   - At: O(log m); Set: O(log m) amortized; Row: O(1).
//   - Clone, Transpose, Entries: O(E log m).
//   - Mul: O(Σ_ij min(|a_i|, |bᵀ_j|) · log m) plus one transpose.
package matrix
