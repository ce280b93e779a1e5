package picker

import (
	"errors"
	"image"
	"math"

	"github.com/leofk/algorithm-2/hsla"
)

// ErrSpacing is returned by NewGrid for a spacing below one.
var ErrSpacing = errors.New("picker: grid spacing must be at least 1")

// Picker returns the color to paint at (x,y).
type Picker interface {
	Pick(x, y int) hsla.Color
}

// Func adapts an ordinary function to the Picker interface.
type Func func(x, y int) hsla.Color

// Pick calls f(x, y).
func (f Func) Pick(x, y int) hsla.Color { return f(x, y) }

// Solid paints every pixel with Color.
type Solid struct {
	Color hsla.Color
}

// Pick implements Picker.
func (s Solid) Pick(_, _ int) hsla.Color { return s.Color }

// Grid paints grid lines every Spacing pixels along both axes.
type Grid struct {
	Color      hsla.Color
	Background hsla.Color
	Spacing    int
}

// NewGrid returns a Grid with a white background.
func NewGrid(c hsla.Color, spacing int) (Grid, error) {
	if spacing < 1 {
		return Grid{}, ErrSpacing
	}
	return Grid{Color: c, Background: hsla.White, Spacing: spacing}, nil
}

// Pick implements Picker. A Spacing below one paints everything with Color.
func (g Grid) Pick(x, y int) hsla.Color {
	if g.Spacing < 1 || x%g.Spacing == 0 || y%g.Spacing == 0 {
		return g.Color
	}
	return g.Background
}

// Gradient fades from From at Center to To at Radius pixels away.
type Gradient struct {
	From, To hsla.Color
	Radius   float64
	Center   image.Point
}

// Pick implements Picker.
func (g Gradient) Pick(x, y int) hsla.Color {
	if g.Radius <= 0 {
		return g.To
	}
	dx := float64(x - g.Center.X)
	dy := float64(y - g.Center.Y)
	d := math.Hypot(dx, dy)
	if d >= g.Radius {
		return g.To
	}
	return g.From.Lerp(g.To, d/g.Radius)
}

// Rainbow sweeps the hue wheel along the x+y diagonal.
// Frequency is the number of full hue cycles per pixel step.
type Rainbow struct {
	Frequency float64
}

// Pick implements Picker.
func (r Rainbow) Pick(x, y int) hsla.Color {
	turns := r.Frequency * float64(x+y)
	frac := turns - math.Floor(turns)
	return hsla.Color{H: 360 * frac, S: 1, L: 0.5, A: 1}
}
