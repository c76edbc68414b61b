// SPDX-License-Identifier: MIT

// Package matrix - Sparse storage (row-indexed sparse rows) & total accessors.
//
// Purpose:
//   - Store only nonzero entries; zero is the implicit value everywhere else.
//   - Keep rows dense (indexed 0..NumRows()-1) and columns sparse and ordered.
//   - Make At total: any (row, col) is a valid query and never fails.
//   - Own all row storage exclusively; Clone re-inserts every entry.
//
// Complexity quicksheet:
//   - New: O(1); At/Set: O(log m); Row: O(1); Clone/Entries: O(E log m).
package matrix

import (
	"fmt"
	"iter"
)

// Sparse is a generic sparse matrix.
//   - rows is the dense row sequence; a nil entry is an empty row.
//   - opts carries the Set policy and row degree; results of Clone,
//     Transpose and Mul inherit it.
//
// The zero value is not ready for use; call New.
type Sparse[T Number] struct {
	rows []*row[T]
	opts Options
}

var _ fmt.Stringer = (*Sparse[float64])(nil)

// New creates an empty matrix (zero rows).
// Implementation:
//   - Stage 1: resolve options against defaults.
//   - Stage 2: return a matrix with no rows allocated.
//
// Complexity:
//   - Time O(k) for k options, Space O(1).
func New[T Number](opts ...Option) *Sparse[T] {
	return &Sparse[T]{opts: gatherOptions(opts...)}
}

// newLike returns an empty matrix with the same configuration as m.
func newLike[T Number](m *Sparse[T]) *Sparse[T] {
	return &Sparse[T]{opts: m.opts}
}

// Options returns the effective configuration of m.
func (m *Sparse[T]) Options() Options { return m.opts }

// NumRows returns the number of stored rows, including empty rows created
// implicitly by growth. A nil matrix has zero rows.
// Complexity: O(1).
func (m *Sparse[T]) NumRows() int {
	if m == nil {
		return 0
	}

	return len(m.rows)
}

// Cols returns one past the greatest stored column index, or 0 when the
// matrix holds no entries. It is the narrowest column extent consistent with
// the stored data, not a declared shape.
// Complexity: O(r log m).
func (m *Sparse[T]) Cols() int {
	if m == nil {
		return 0
	}
	maxCol := -1
	for _, r := range m.rows {
		if c := r.maxCol(); c > maxCol {
			maxCol = c
		}
	}

	return maxCol + 1
}

// NNZ returns the number of stored (nonzero) entries.
// Complexity: O(r).
func (m *Sparse[T]) NNZ() int {
	if m == nil {
		return 0
	}
	n := 0
	for _, r := range m.rows {
		n += r.len()
	}

	return n
}

// At returns the value at (row, col), or the zero value of T when no entry
// exists there. Out-of-range and negative indices are valid queries that
// yield zero.
// Complexity: O(log m).
func (m *Sparse[T]) At(row, col int) T {
	var zero T
	if m == nil || row < 0 || row >= len(m.rows) || col < 0 {
		return zero
	}
	v, _ := m.rows[row].get(col)

	return v
}

// Set writes v at (row, col) and reports whether storage changed.
// Implementation:
//   - Stage 1: reject zero values and negative indices (no mutation, false).
//   - Stage 2: grow the row sequence so that row is addressable; new rows are empty.
//   - Stage 3: insert into the row under the configured policy.
//
// Behavior highlights:
//   - Insert-only (default): an occupied coordinate keeps its first value;
//     Set reports false.
//   - WithOverwrite: an occupied coordinate takes v; Set reports true when
//     the stored value changed.
//   - Zero never creates, replaces or clears an entry.
//
// Complexity:
//   - Time O(log m) plus amortized growth, Space O(1) amortized.
//
// Notes:
//   - Unlike the read methods, Set requires a non-nil receiver; calling it on
//     a nil *Sparse panics. Create matrices with New.
func (m *Sparse[T]) Set(row, col int, v T) bool {
	var zero T
	if v == zero || row < 0 || col < 0 {
		return false
	}
	if row >= len(m.rows) {
		m.grow(row + 1)
	}
	r := m.rows[row]
	if r == nil {
		r = newRow[T](m.opts.degree)
		m.rows[row] = r
	}

	return r.insert(col, v, m.opts.overwrite)
}

// grow extends the row sequence to n rows; new rows are nil (empty).
func (m *Sparse[T]) grow(n int) {
	if n <= cap(m.rows) {
		m.rows = m.rows[:n]
		return
	}
	grown := make([]*row[T], n, max(n, 2*cap(m.rows)))
	copy(grown, m.rows)
	m.rows = grown
}

// Row returns a read-only view of row i.
// Errors:
//   - ErrOutOfRange (wrapped with the index) when i < 0 or i >= NumRows().
//
// Complexity: O(1).
func (m *Sparse[T]) Row(i int) (RowView[T], error) {
	if i < 0 || i >= m.NumRows() {
		return RowView[T]{}, sparseErrorf(ctxRow, i, ErrOutOfRange)
	}

	return RowView[T]{r: m.rows[i]}, nil
}

// rowLen is the nonzero count of row i, zero beyond the stored extent.
func (m *Sparse[T]) rowLen(i int) int {
	if i < 0 || i >= len(m.rows) {
		return 0
	}

	return m.rows[i].len()
}

// Entries yields every stored entry in row-major order, columns ascending
// within a row. The sequence is lazy and restartable. The matrix must not be
// mutated while a range over it is in progress.
// Complexity: O(E log m) for a full walk.
func (m *Sparse[T]) Entries() iter.Seq[Entry[T]] {
	return func(yield func(Entry[T]) bool) {
		if m == nil {
			return
		}
		for i, r := range m.rows {
			stop := false
			r.ascend(func(col int, v T) bool {
				if !yield(Entry[T]{Row: i, Col: col, Value: v}) {
					stop = true
					return false
				}
				return true
			})
			if stop {
				return
			}
		}
	}
}

// Clone returns a deep copy of m. Every entry is re-inserted into fresh
// storage; no row or cell is shared with m. The copy keeps m's options.
// Trailing empty rows are not reproduced, since they carry no entries.
// Complexity: O(E log m).
func (m *Sparse[T]) Clone() *Sparse[T] {
	if m == nil {
		return nil
	}
	out := newLike(m)
	for e := range m.Entries() {
		out.Set(e.Row, e.Col, e.Value)
	}

	return out
}

// Equal reports whether m and other store exactly the same entries.
// Row counts may differ when the extra rows are empty.
// Complexity: O(E log m).
func (m *Sparse[T]) Equal(other *Sparse[T]) bool {
	if m.NNZ() != other.NNZ() {
		return false
	}
	for e := range m.Entries() {
		if other.At(e.Row, e.Col) != e.Value {
			return false
		}
	}

	return true
}
