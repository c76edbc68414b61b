// Package matrix_test provides benchmarks for Sparse operations,
// using deterministic random fill.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvlath-sparse/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{128, 256, 512}

// benchDensity keeps inputs genuinely sparse.
const benchDensity = 0.02

// sinks to defeat dead-code elimination
var (
	sinkS *matrix.Sparse[float64]
	sinkF float64
	sinkB bool
)

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandomSparse(b, n, n, benchDensity, 1337)
			B := RandomSparse(b, n, n, benchDensity, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkS = A.Mul(B)
			}
		})
	}
}

// BenchmarkMulSkewed pairs a dense-ish left operand with a very sparse right
// one, where driving from the sparser row pays off.
func BenchmarkMulSkewed(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandomSparse(b, n, n, 0.5, 7)
			B := RandomSparse(b, n, n, 0.005, 8)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkS = A.Mul(B)
			}
		})
	}
}

func BenchmarkTranspose(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandomSparse(b, n, n, benchDensity, 11)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkS = A.Transpose()
			}
		})
	}
}

func BenchmarkSet(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				m := matrix.New[float64]()
				for k := 0; k < n; k++ {
					sinkB = m.Set((k*31)%n, (k*17)%n, 1)
				}
			}
		})
	}
}

func BenchmarkAt(b *testing.B) {
	A := RandomSparse(b, 512, 512, benchDensity, 99)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkF = A.At(i%512, (i*7)%512)
	}
}
