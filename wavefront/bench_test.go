package wavefront_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/leewave/grid"
	"github.com/katalvlaran/leewave/wavefront"
)

// BenchmarkFindPath_Open measures corner-to-corner search on an open 500×500 grid.
// Complexity: O(W×H)
func BenchmarkFindPath_Open(b *testing.B) {
	const n = 500
	g, err := grid.NewDense[uint8](n, n)
	if err != nil {
		b.Fatalf("setup NewDense failed: %v", err)
	}
	to := wavefront.Coord{Row: n - 1, Col: n - 1}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = wavefront.FindPath[uint8](g, wavefront.Coord{}, to, 0)
	}
}

// BenchmarkFindPath_Random measures search on a 500×500 grid with ~25% obstacles.
func BenchmarkFindPath_Random(b *testing.B) {
	const n = 500
	rng := rand.New(rand.NewSource(42))
	rows := make([][]uint8, n)
	for y := range rows {
		rows[y] = make([]uint8, n)
		for x := range rows[y] {
			if rng.Intn(4) == 0 {
				rows[y][x] = 1
			}
		}
	}
	rows[0][0], rows[n-1][n-1] = 0, 0
	g := grid.Rows[uint8](rows)
	to := wavefront.Coord{Row: n - 1, Col: n - 1}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = wavefront.FindPath[uint8](g, wavefront.Coord{}, to, 0)
	}
}
