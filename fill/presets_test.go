package fill_test

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leofk/algorithm-2/animation"
	"github.com/leofk/algorithm-2/fill"
	"github.com/leofk/algorithm-2/frontier"
	"github.com/leofk/algorithm-2/hsla"
	"github.com/leofk/algorithm-2/picker"
	"github.com/leofk/algorithm-2/raster"
)

// TestPresets matches every wrapper against the equivalent Fill call.
func TestPresets(t *testing.T) {
	img, err := raster.New(7, 5, hsla.White)
	require.NoError(t, err)
	img.Set(3, 0, hsla.Black)
	img.Set(3, 1, hsla.Black)

	const x, y, tol, freq = 1, 2, 0.1, 3
	from := hsla.Color{H: 0, S: 1, L: 0.5, A: 1}
	to := hsla.Color{H: 200, S: 1, L: 0.5, A: 1}
	grid := picker.Grid{Color: hsla.Blue, Background: hsla.White, Spacing: 2}
	grad := picker.Gradient{From: from, To: to, Radius: 4, Center: image.Pt(x, y)}
	rain := picker.Rainbow{Frequency: 0.05}

	cases := []struct {
		name string
		run  func() (*animation.Animation, error)
		p    picker.Picker
		ord  frontier.Ordering
	}{
		{"SolidDFS", func() (*animation.Animation, error) { return fill.SolidDFS(img, x, y, hsla.Red, tol, freq) }, picker.Solid{Color: hsla.Red}, frontier.DFS},
		{"SolidBFS", func() (*animation.Animation, error) { return fill.SolidBFS(img, x, y, hsla.Red, tol, freq) }, picker.Solid{Color: hsla.Red}, frontier.BFS},
		{"GridDFS", func() (*animation.Animation, error) { return fill.GridDFS(img, x, y, hsla.Blue, 2, tol, freq) }, grid, frontier.DFS},
		{"GridBFS", func() (*animation.Animation, error) { return fill.GridBFS(img, x, y, hsla.Blue, 2, tol, freq) }, grid, frontier.BFS},
		{"GradientDFS", func() (*animation.Animation, error) { return fill.GradientDFS(img, x, y, from, to, 4, tol, freq) }, grad, frontier.DFS},
		{"GradientBFS", func() (*animation.Animation, error) { return fill.GradientBFS(img, x, y, from, to, 4, tol, freq) }, grad, frontier.BFS},
		{"RainbowDFS", func() (*animation.Animation, error) { return fill.RainbowDFS(img, x, y, 0.05, tol, freq) }, rain, frontier.DFS},
		{"RainbowBFS", func() (*animation.Animation, error) { return fill.RainbowBFS(img, x, y, 0.05, tol, freq) }, rain, frontier.BFS},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.run()
			require.NoError(t, err)
			want, err := fill.Fill(img, x, y, tc.p,
				fill.WithOrdering(tc.ord), fill.WithTolerance(tol), fill.WithFrameFrequency(freq))
			require.NoError(t, err)

			require.Equal(t, want.Len(), got.Len())
			for i := 0; i < want.Len(); i++ {
				assert.True(t, want.Frame(i).Equal(got.Frame(i)), "frame %d", i)
			}
			// 33 white pixels, seed included: 1 + floor(32/3) + 1
			assert.Equal(t, 12, got.Len())
		})
	}
}
