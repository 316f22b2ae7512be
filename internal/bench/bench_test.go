package bench

import (
	"path/filepath"
	"testing"

	"github.com/agbru/countnums/internal/input"
)

// loadBenchInput reads the shared benchmark input from the repository root.
func loadBenchInput(b *testing.B) []uint64 {
	b.Helper()
	nums, err := input.Load(filepath.Join("..", "..", DefaultInputPath))
	if err != nil {
		b.Fatalf("loading benchmark input: %v", err)
	}
	return nums
}

func BenchmarkCases(b *testing.B) {
	nums := loadBenchInput(b)
	for _, c := range DefaultCases() {
		b.Run(c.Label, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(nums)) * 8)
			for b.Loop() {
				Consume(c.Algorithm.Run(nums, DefaultThreshold))
			}
		})
	}
}
