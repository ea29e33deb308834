package grid_test

import (
	"testing"

	"github.com/lvlgrid/grid"
)

const benchSide = 1000 // 1000×1000 elements, well above the selection threshold

// benchInit gives each cell a cheap deterministic value.
func benchInit(x, y int) int { return x ^ y }

// BenchmarkNewFlat measures flat-engine construction of a 1000×1000 grid.
// Complexity: O(W×H), single allocation.
func BenchmarkNewFlat(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = grid.NewFlat(benchSide, benchSide, benchInit)
	}
}

// BenchmarkNewNested measures nested-engine construction of a 1000×1000 grid.
// Complexity: O(W×H), W+1 allocations.
func BenchmarkNewNested(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = grid.NewNested(benchSide, benchSide, benchInit)
	}
}

// BenchmarkFlatAt measures a full column-major read sweep on the flat engine.
func BenchmarkFlatAt(b *testing.B) {
	g, err := grid.NewFlat(benchSide, benchSide, benchInit)
	if err != nil {
		b.Fatalf("setup NewFlat failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var sum int
		for x := 0; x < benchSide; x++ {
			for y := 0; y < benchSide; y++ {
				v, _ := g.At(x, y)
				sum += v
			}
		}
		_ = sum
	}
}

// BenchmarkNestedAt measures the same sweep through two indirections.
func BenchmarkNestedAt(b *testing.B) {
	g, err := grid.NewNested(benchSide, benchSide, benchInit)
	if err != nil {
		b.Fatalf("setup NewNested failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var sum int
		for x := 0; x < benchSide; x++ {
			for y := 0; y < benchSide; y++ {
				v, _ := g.At(x, y)
				sum += v
			}
		}
		_ = sum
	}
}

// BenchmarkFlatColumn measures contiguous column copies, the flat engine's
// home turf.
func BenchmarkFlatColumn(b *testing.B) {
	g, err := grid.NewFlat(benchSide, benchSide, benchInit)
	if err != nil {
		b.Fatalf("setup NewFlat failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.Column(i % benchSide)
	}
}

// BenchmarkWhere measures a full-scan search on the policy-selected engine.
func BenchmarkWhere(b *testing.B) {
	g, err := grid.New(benchSide, benchSide, benchInit)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Where(func(v int) bool { return v == 0 })
	}
}
