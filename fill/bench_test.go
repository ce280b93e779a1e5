package fill_test

import (
	"testing"

	"github.com/leofk/algorithm-2/fill"
	"github.com/leofk/algorithm-2/frontier"
	"github.com/leofk/algorithm-2/hsla"
	"github.com/leofk/algorithm-2/picker"
	"github.com/leofk/algorithm-2/raster"
)

// BenchmarkFill measures a full 256×256 uniform fill for both orderings,
// with a frame every 4096 pixels.
// Complexity: O(W×H) traversal + O(F×W×H) snapshots.
func BenchmarkFill(b *testing.B) {
	const n = 256
	img, err := raster.New(n, n, hsla.White)
	if err != nil {
		b.Fatalf("setup raster.New failed: %v", err)
	}
	p := picker.Rainbow{Frequency: 0.01}

	for _, ord := range []frontier.Ordering{frontier.DFS, frontier.BFS} {
		b.Run(ord.String(), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = fill.Fill(img, n/2, n/2, p,
					fill.WithOrdering(ord), fill.WithFrameFrequency(4096))
			}
		})
	}
}
