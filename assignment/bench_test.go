package assignment_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/cargoqubo/assignment"
)

// BenchmarkEncode measures encoding for growing instances, sequential and striped.
func BenchmarkEncode(b *testing.B) {
	for _, size := range []struct{ n, m, c int }{{10, 5, 3}, {40, 20, 7}, {100, 50, 15}} {
		inst, err := assignment.NewRandomInstance(size.n, size.m, size.c, assignment.WithSeed(1))
		if err != nil {
			b.Fatal(err)
		}
		for _, workers := range []int{1, 4} {
			b.Run(fmt.Sprintf("N=%d/M=%d/workers=%d", size.n, size.m, workers), func(b *testing.B) {
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					if _, err := assignment.Encode(inst, assignment.WithWorkers(workers)); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

func BenchmarkDecode(b *testing.B) {
	inst, err := assignment.NewRandomInstance(200, 50, 15, assignment.WithSeed(1))
	if err != nil {
		b.Fatal(err)
	}
	bits := make([]int, inst.NumVars())
	for i := range bits {
		bits[i] = i & 1
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := assignment.Decode(inst, bits); err != nil {
			b.Fatal(err)
		}
	}
}
