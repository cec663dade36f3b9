package vecmath

import (
	"fmt"
	"testing"
)

func BenchmarkZipWith(b *testing.B) {
	for _, dim := range []int{3, 128, 1536} {
		x := MustRepeated(1.5, dim)
		y := MustRepeated(2, dim-1)

		b.Run(fmt.Sprintf("dim=%d", dim), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				_ = x.Add(y)
			}
		})
	}
}

func BenchmarkDot(b *testing.B) {
	for _, dim := range []int{3, 128, 1536} {
		x := MustRepeated(1.5, dim)
		y := MustRepeated(2, dim)

		b.Run(fmt.Sprintf("dim=%d", dim), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				_ = x.Dot(y)
			}
		})
	}
}
