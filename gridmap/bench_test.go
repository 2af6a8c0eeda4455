package gridmap_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/taxirelay/gridmap"
)

// syntheticDesc builds an n-by-n map with no interior walls.
func syntheticDesc(n int) []string {
	border := "+" + strings.Repeat("-", 2*n-1) + "+"
	row := "|" + strings.Repeat(" :", n-1) + " |"
	desc := make([]string, 0, n+2)
	desc = append(desc, border)
	for i := 0; i < n; i++ {
		desc = append(desc, row)
	}
	return append(desc, border)
}

// BenchmarkParse measures map parsing on a wall-free 50x50 layout.
// Complexity: O(rows*cols)
func BenchmarkParse(b *testing.B) {
	desc := syntheticDesc(50)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := gridmap.Parse(desc); err != nil {
			b.Fatalf("Parse failed: %v", err)
		}
	}
}

// BenchmarkPath measures a corner-to-corner BFS on a 50x50 layout.
// Complexity: O(V+E)
func BenchmarkPath(b *testing.B) {
	g, err := gridmap.Parse(syntheticDesc(50))
	if err != nil {
		b.Fatalf("setup Parse failed: %v", err)
	}
	origin := gridmap.Cell{Row: 0, Col: 0}
	dest := gridmap.Cell{Row: 49, Col: 49}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := g.Path(origin, dest); err != nil {
			b.Fatalf("Path failed: %v", err)
		}
	}
}
