package fill

import (
	"image"

	"github.com/leofk/algorithm-2/animation"
	"github.com/leofk/algorithm-2/frontier"
	"github.com/leofk/algorithm-2/hsla"
	"github.com/leofk/algorithm-2/picker"
	"github.com/leofk/algorithm-2/raster"
)

// SolidDFS fills depth-first with a single color.
func SolidDFS(img *raster.Image, x, y int, c hsla.Color, tolerance float64, frameFreq int) (*animation.Animation, error) {
	return preset(img, x, y, picker.Solid{Color: c}, frontier.DFS, tolerance, frameFreq)
}

// SolidBFS fills breadth-first with a single color.
func SolidBFS(img *raster.Image, x, y int, c hsla.Color, tolerance float64, frameFreq int) (*animation.Animation, error) {
	return preset(img, x, y, picker.Solid{Color: c}, frontier.BFS, tolerance, frameFreq)
}

// GridDFS fills depth-first with grid lines every spacing pixels on white.
func GridDFS(img *raster.Image, x, y int, gridColor hsla.Color, spacing int, tolerance float64, frameFreq int) (*animation.Animation, error) {
	g, err := picker.NewGrid(gridColor, spacing)
	if err != nil {
		return nil, err
	}
	return preset(img, x, y, g, frontier.DFS, tolerance, frameFreq)
}

// GridBFS fills breadth-first with grid lines every spacing pixels on white.
func GridBFS(img *raster.Image, x, y int, gridColor hsla.Color, spacing int, tolerance float64, frameFreq int) (*animation.Animation, error) {
	g, err := picker.NewGrid(gridColor, spacing)
	if err != nil {
		return nil, err
	}
	return preset(img, x, y, g, frontier.BFS, tolerance, frameFreq)
}

// GradientDFS fills depth-first with a radial gradient centered on the seed.
func GradientDFS(img *raster.Image, x, y int, from, to hsla.Color, radius int, tolerance float64, frameFreq int) (*animation.Animation, error) {
	return preset(img, x, y, gradient(x, y, from, to, radius), frontier.DFS, tolerance, frameFreq)
}

// GradientBFS fills breadth-first with a radial gradient centered on the seed.
func GradientBFS(img *raster.Image, x, y int, from, to hsla.Color, radius int, tolerance float64, frameFreq int) (*animation.Animation, error) {
	return preset(img, x, y, gradient(x, y, from, to, radius), frontier.BFS, tolerance, frameFreq)
}

// RainbowDFS fills depth-first with a hue sweep of freq cycles per pixel.
func RainbowDFS(img *raster.Image, x, y int, freq float64, tolerance float64, frameFreq int) (*animation.Animation, error) {
	return preset(img, x, y, picker.Rainbow{Frequency: freq}, frontier.DFS, tolerance, frameFreq)
}

// RainbowBFS fills breadth-first with a hue sweep of freq cycles per pixel.
func RainbowBFS(img *raster.Image, x, y int, freq float64, tolerance float64, frameFreq int) (*animation.Animation, error) {
	return preset(img, x, y, picker.Rainbow{Frequency: freq}, frontier.BFS, tolerance, frameFreq)
}

func gradient(x, y int, from, to hsla.Color, radius int) picker.Gradient {
	return picker.Gradient{From: from, To: to, Radius: float64(radius), Center: image.Pt(x, y)}
}

func preset(img *raster.Image, x, y int, p picker.Picker, ord frontier.Ordering, tolerance float64, frameFreq int) (*animation.Animation, error) {
	return Fill(img, x, y, p,
		WithOrdering(ord),
		WithTolerance(tolerance),
		WithFrameFrequency(frameFreq),
	)
}
