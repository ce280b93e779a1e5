package hsla

import "errors"

// ErrParse indicates a color string could not be parsed.
var ErrParse = errors.New("hsla: cannot parse color")

// Color is a pixel value in HSLA space.
// H is the hue in degrees [0,360); S, L and A are in [0,1].
// The zero value is transparent black.
type Color struct {
	H, S, L, A float64
}

// Metric measures how far apart two colors are. Implementations must be
// symmetric, return 0 for identical colors and never return a negative value.
type Metric func(a, b Color) float64

// Common colors.
var (
	White       = Color{H: 0, S: 0, L: 1, A: 1}
	Black       = Color{H: 0, S: 0, L: 0, A: 1}
	Red         = Color{H: 0, S: 1, L: 0.5, A: 1}
	Green       = Color{H: 120, S: 1, L: 0.5, A: 1}
	Blue        = Color{H: 240, S: 1, L: 0.5, A: 1}
	Transparent = Color{}
)
