package hsla

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// New returns a color with the hue wrapped into [0,360) and the remaining
// channels clamped to [0,1].
func New(h, s, l, a float64) Color {
	return Color{H: wrapHue(h), S: clamp01(s), L: clamp01(l), A: clamp01(a)}
}

// FromColor converts any image/color value to HSLA.
// Fully transparent input maps to Transparent.
func FromColor(c color.Color) Color {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return Transparent
	}
	_, _, _, a := c.RGBA()
	h, s, l := cf.Hsl()
	return New(h, s, l, float64(a)/0xffff)
}

// NRGBA converts c to a non-premultiplied 8-bit RGBA value.
func (c Color) NRGBA() color.NRGBA {
	r, g, b := c.toColorful().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(clamp01(c.A) * 255))}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// Lerp interpolates every channel linearly from c to other.
// t is clamped to [0,1]; the hue is interpolated without wrapping.
func (c Color) Lerp(other Color, t float64) Color {
	t = clamp01(t)
	return Color{
		H: c.H + (other.H-c.H)*t,
		S: c.S + (other.S-c.S)*t,
		L: c.L + (other.L-c.L)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// String formats c as "hsla(h, s, l, a)".
func (c Color) String() string {
	return fmt.Sprintf("hsla(%g, %g, %g, %g)", c.H, c.S, c.L, c.A)
}

// Parse reads a color from one of:
//
//	"h,s,l"     opaque HSL
//	"h,s,l,a"   HSL with alpha
//	"#rrggbb"   hex RGB
func Parse(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		cf, err := colorful.Hex(s)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q: %v", ErrParse, s, err)
		}
		h, sat, l := cf.Hsl()
		return New(h, sat, l, 1), nil
	}

	parts := strings.Split(s, ",")
	if len(parts) != 3 && len(parts) != 4 {
		return Color{}, fmt.Errorf("%w: %q: want 3 or 4 components", ErrParse, s)
	}
	vals := []float64{0, 0, 0, 1}
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q: %v", ErrParse, s, err)
		}
		vals[i] = v
	}
	return New(vals[0], vals[1], vals[2], vals[3]), nil
}

func (c Color) toColorful() colorful.Color {
	return colorful.Hsl(wrapHue(c.H), clamp01(c.S), clamp01(c.L)).Clamped()
}

func wrapHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
