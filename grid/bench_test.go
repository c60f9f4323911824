package grid_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/advent/grid"
)

// BenchmarkRegions measures Regions on a random 140×140 garden with four
// plant types.
func BenchmarkRegions(b *testing.B) {
	const n = 140
	rng := rand.New(rand.NewSource(42))
	rows := make([][]rune, n)
	for y := range rows {
		rows[y] = make([]rune, n)
		for x := range rows[y] {
			rows[y][x] = rune('A' + rng.Intn(4))
		}
	}
	g, err := grid.New(rows)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.FencePrice(true)
	}
}
