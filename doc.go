// Package lvlath is the root of lvlath-sparse, a compact sparse-matrix
// toolkit for numeric code whose matrices are dominated by zeros.
//
// What is inside:
//
//	matrix/ — Sparse[T]: row-indexed sparse rows over any Go integer or
//	          float type, zero-suppressing writes, total element access,
//	          transpose, and a multiplication kernel that drives each output
//	          cell from the sparser of its two candidate rows.
//
// Quick example:
//
//	m := matrix.New[float64]()
//	m.Set(0, 1, 2)
//	p := m.Mul(m.Transpose()) // p.At(0, 0) == 4
//
// Dense linear algebra is left to gonum; matrix.ToDense and matrix.FromDense
// bridge the two.
//
//	go get github.com/katalvlaran/lvlath-sparse/matrix
package lvlath
