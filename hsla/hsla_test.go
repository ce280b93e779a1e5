package hsla_test

import (
	"errors"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leofk/algorithm-2/hsla"
)

// TestDistance_Range checks the anchor points of the double-cone metric.
func TestDistance_Range(t *testing.T) {
	cyan := hsla.Color{H: 180, S: 1, L: 0.5, A: 1}

	assert.InDelta(t, 0.0, hsla.Distance(hsla.Red, hsla.Red), 1e-12)
	assert.InDelta(t, 0.5, hsla.Distance(hsla.Black, hsla.White), 1e-12)
	assert.InDelta(t, 1.0, hsla.Distance(hsla.Red, cyan), 1e-12)
	// hue does not matter for white
	assert.InDelta(t, 0.0, hsla.Distance(hsla.White, hsla.Color{H: 200, S: 1, L: 1, A: 1}), 1e-12)
	// method form agrees
	assert.Equal(t, hsla.Distance(hsla.Red, cyan), hsla.Red.Dist(cyan))
}

// TestDistance_Symmetric verifies d(a,b) == d(b,a) for every metric.
func TestDistance_Symmetric(t *testing.T) {
	a := hsla.Color{H: 10, S: 0.3, L: 0.4, A: 1}
	b := hsla.Color{H: 300, S: 0.8, L: 0.7, A: 1}
	for name, m := range map[string]hsla.Metric{
		"cone":      hsla.Distance,
		"lab":       hsla.LabDistance,
		"ciede2000": hsla.CIEDE2000Distance,
	} {
		t.Run(name, func(t *testing.T) {
			assert.InDelta(t, m(a, b), m(b, a), 1e-9)
			assert.GreaterOrEqual(t, m(a, b), 0.0)
			assert.InDelta(t, 0.0, m(a, a), 1e-9)
		})
	}
}

// TestConversion_RoundTrip converts primaries to NRGBA and back.
func TestConversion_RoundTrip(t *testing.T) {
	assert.Equal(t, color.NRGBA{R: 255, A: 255}, hsla.Red.NRGBA())
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, hsla.White.NRGBA())

	got := hsla.FromColor(color.NRGBA{G: 255, A: 255})
	assert.InDelta(t, 120.0, got.H, 1e-9)
	assert.InDelta(t, 1.0, got.S, 1e-9)
	assert.InDelta(t, 0.5, got.L, 1e-9)
	assert.InDelta(t, 1.0, got.A, 1e-9)

	assert.Equal(t, hsla.Transparent, hsla.FromColor(color.NRGBA{}))
}

// TestNew_Normalizes wraps hue and clamps the other channels.
func TestNew_Normalizes(t *testing.T) {
	c := hsla.New(-90, 2, -1, 0.5)
	assert.Equal(t, hsla.Color{H: 270, S: 1, L: 0, A: 0.5}, c)
}

// TestLerp interpolates channel by channel and clamps t.
func TestLerp(t *testing.T) {
	a := hsla.Color{H: 0, S: 1, L: 0.5, A: 1}
	b := hsla.Color{H: 200, S: 1, L: 0.5, A: 1}
	assert.InDelta(t, 100.0, a.Lerp(b, 0.5).H, 1e-12)
	assert.Equal(t, b, a.Lerp(b, 3))
	assert.Equal(t, a, a.Lerp(b, -1))
}

// TestParse covers the accepted syntaxes and the error path.
func TestParse(t *testing.T) {
	c, err := hsla.Parse("200, 1, 0.5")
	require.NoError(t, err)
	assert.Equal(t, hsla.Color{H: 200, S: 1, L: 0.5, A: 1}, c)

	c, err = hsla.Parse("10,0.5,0.25,0.75")
	require.NoError(t, err)
	assert.Equal(t, hsla.Color{H: 10, S: 0.5, L: 0.25, A: 0.75}, c)

	c, err = hsla.Parse("#ff0000")
	require.NoError(t, err)
	assert.InDelta(t, 0.0, hsla.Distance(c, hsla.Red), 1e-9)

	for _, bad := range []string{"", "1,2", "a,b,c", "#zz"} {
		_, err := hsla.Parse(bad)
		assert.True(t, errors.Is(err, hsla.ErrParse), "Parse(%q) = %v", bad, err)
	}
}
