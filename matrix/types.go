// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the sparse storage and its operations.
package matrix

// Number is the set of element types a Sparse matrix can hold.
// Every member supports == against its zero value, +, *, and conversion
// to and from float64 (used by the gonum bridge).
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Entry is a single stored (row, column, value) triple. Value is never zero
// when produced by a Sparse matrix.
type Entry[T Number] struct {
	Row   int
	Col   int
	Value T
}

// cell is one B-tree item of a row: a column key and its nonzero value.
type cell[T Number] struct {
	col int
	val T
}

// lessCell orders cells by ascending column; the only ordering a row uses.
func lessCell[T Number](a, b cell[T]) bool {
	return a.col < b.col
}
