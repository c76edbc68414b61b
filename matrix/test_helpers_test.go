// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for Sparse tests.
//   • Keep values integer-valued so float64 products compare exactly against gonum.

package matrix_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/katalvlaran/lvlath-sparse/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// FromRows BUILDS a Sparse[float64] from dense row literals, skipping zeros.
// Ragged rows are allowed.
func FromRows(t testing.TB, rows [][]float64, opts ...matrix.Option) *matrix.Sparse[float64] {
	t.Helper()
	m := matrix.New[float64](opts...)
	for i, r := range rows {
		for j, v := range r {
			m.Set(i, j, v)
		}
	}

	return m
}

// RandomSparse FILLS an r×c matrix with integer values in [-5,5]\{0} at the
// given density, deterministically by seed.
// Complexity: O(r*c log m).
func RandomSparse(t testing.TB, r, c int, density float64, seed int64, opts ...matrix.Option) *matrix.Sparse[float64] {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := matrix.New[float64](opts...)
	var i, j int // loop iterators
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if rng.Float64() >= density {
				continue
			}
			v := float64(rng.Intn(10) - 5)
			if v >= 0 {
				v++ // shift [0,4] to [1,5]; never zero
			}
			m.Set(i, j, v)
		}
	}

	return m
}

// MustDense MATERIALIZES m as a gonum r×c Dense or fails the test.
func MustDense(t testing.TB, m *matrix.Sparse[float64], r, c int) *mat.Dense {
	t.Helper()
	d, err := matrix.ToDense(m, r, c)
	require.NoError(t, err)

	return d
}

// CollectEntries DRAINS m.Entries() into a slice.
func CollectEntries[T matrix.Number](m *matrix.Sparse[T]) []matrix.Entry[T] {
	return slices.Collect(m.Entries())
}

// RequireEntries ASSERTS that m stores exactly want, in row-major order.
func RequireEntries[T matrix.Number](t testing.TB, want []matrix.Entry[T], m *matrix.Sparse[T]) {
	t.Helper()
	require.Equal(t, want, CollectEntries(m))
	require.Equal(t, len(want), m.NNZ())
}
