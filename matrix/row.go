// SPDX-License-Identifier: MIT

// Package matrix - one sparse row on an ordered B-tree.
//
// Purpose:
//   - Keep the nonzero cells of a row ordered by column for deterministic
//     traversal and O(log m) point lookups during multiplication.
//   - Stay nil-safe: a nil *row is an empty row, so growing a matrix by many
//     rows costs one slice extension and no per-row allocation.
package matrix

import (
	"iter"

	"github.com/google/btree"
)

// row holds the nonzero cells of one matrix row.
// The tree is created on first insert.
type row[T Number] struct {
	t *btree.BTreeG[cell[T]]
}

// newRow allocates an empty row backed by a B-tree of the given degree.
func newRow[T Number](degree int) *row[T] {
	return &row[T]{t: btree.NewG[cell[T]](degree, lessCell[T])}
}

// len returns the number of stored cells. Nil rows are empty.
func (r *row[T]) len() int {
	if r == nil {
		return 0
	}

	return r.t.Len()
}

// get returns the value at col and whether it is stored.
func (r *row[T]) get(col int) (T, bool) {
	if r == nil {
		var zero T
		return zero, false
	}
	c, ok := r.t.Get(cell[T]{col: col})

	return c.val, ok
}

// insert stores v at col.
// Insert-only (overwrite=false): keeps an existing cell and reports false.
// Overwrite: replaces the cell and reports whether the stored value changed.
func (r *row[T]) insert(col int, v T, overwrite bool) bool {
	item := cell[T]{col: col, val: v}
	if !overwrite {
		if r.t.Has(item) {
			return false
		}
		r.t.ReplaceOrInsert(item)

		return true
	}
	old, existed := r.t.ReplaceOrInsert(item)

	return !existed || old.val != v
}

// ascend visits cells in increasing column order until fn returns false.
func (r *row[T]) ascend(fn func(col int, v T) bool) {
	if r == nil {
		return
	}
	r.t.Ascend(func(c cell[T]) bool { return fn(c.col, c.val) })
}

// maxCol returns the largest stored column, or -1 for an empty row.
func (r *row[T]) maxCol() int {
	if r == nil {
		return -1
	}
	c, ok := r.t.Max()
	if !ok {
		return -1
	}

	return c.col
}

// RowView is a read-only view of one row of a Sparse matrix.
// It reflects later mutations of the owning matrix; it does not copy.
type RowView[T Number] struct {
	r *row[T]
}

// Len returns the number of nonzero entries in the row.
// Complexity: O(1).
func (v RowView[T]) Len() int { return v.r.len() }

// At returns the value at col, or zero when col holds no entry.
// Complexity: O(log m).
func (v RowView[T]) At(col int) T {
	val, _ := v.r.get(col)

	return val
}

// All yields (column, value) pairs in increasing column order.
// The sequence is restartable; each range walks the row afresh.
func (v RowView[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		v.r.ascend(yield)
	}
}
