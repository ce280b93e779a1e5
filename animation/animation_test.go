package animation_test

import (
	"bytes"
	"image/color"
	"image/gif"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leofk/algorithm-2/animation"
	"github.com/leofk/algorithm-2/hsla"
	"github.com/leofk/algorithm-2/raster"
)

// TestAddFrame_Snapshots verifies frames never alias the caller's image.
func TestAddFrame_Snapshots(t *testing.T) {
	img, err := raster.New(2, 2, hsla.White)
	require.NoError(t, err)

	a := animation.New()
	assert.Nil(t, a.Last())

	a.AddFrame(img)
	img.Set(0, 0, hsla.Red)
	a.AddFrame(img)

	require.Equal(t, 2, a.Len())
	assert.Equal(t, hsla.White, a.Frame(0).At(0, 0))
	assert.Equal(t, hsla.Red, a.Last().At(0, 0))

	frames := a.Frames()
	frames[0] = nil
	assert.NotNil(t, a.Frame(0))
}

// TestWriteGIF_ExactPalette exports a two-color animation and decodes it.
func TestWriteGIF_ExactPalette(t *testing.T) {
	img, err := raster.New(3, 2, hsla.White)
	require.NoError(t, err)
	a := animation.New()
	a.AddFrame(img)
	img.Set(1, 1, hsla.Red)
	a.AddFrame(img)

	opts := animation.DefaultGIFOptions()
	opts.Scale = 2
	opts.Delay = 7

	var buf bytes.Buffer
	require.NoError(t, a.WriteGIF(&buf, opts))

	g, err := gif.DecodeAll(&buf)
	require.NoError(t, err)
	require.Len(t, g.Image, 2)
	assert.Equal(t, []int{7, 7}, g.Delay)

	last := g.Image[1]
	assert.Equal(t, 6, last.Bounds().Dx())
	assert.Equal(t, 4, last.Bounds().Dy())
	assert.Equal(t, color.NRGBAModel.Convert(last.At(2, 2)), color.NRGBA{R: 255, A: 255})
	assert.Equal(t, color.NRGBAModel.Convert(last.At(3, 3)), color.NRGBA{R: 255, A: 255})
	assert.Equal(t, color.NRGBAModel.Convert(last.At(0, 0)), color.NRGBA{R: 255, G: 255, B: 255, A: 255})
}

// TestWriteGIF_Quantized exports an animation with more than 256 colors and
// checks the decoded final frame stays close to the recorded one.
func TestWriteGIF_Quantized(t *testing.T) {
	const side = 32
	img, err := raster.New(side, side, hsla.White)
	require.NoError(t, err)
	a := animation.New()
	a.AddFrame(img)
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			img.Set(x, y, hsla.FromColor(color.NRGBA{R: uint8(x * 8), G: uint8(y * 8), B: 64, A: 255}))
		}
	}
	a.AddFrame(img)

	var buf bytes.Buffer
	require.NoError(t, a.WriteGIF(&buf, animation.DefaultGIFOptions()))
	g, err := gif.DecodeAll(&buf)
	require.NoError(t, err)
	require.Len(t, g.Image, 2)
	assert.LessOrEqual(t, len(g.Image[1].Palette), 256)

	want := a.Last().ToImage()
	got := g.Image[1]
	var worst, total int
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			w := want.NRGBAAt(x, y)
			c := color.NRGBAModel.Convert(got.At(x, y)).(color.NRGBA)
			for _, d := range []int{
				absDiff(w.R, c.R), absDiff(w.G, c.G), absDiff(w.B, c.B),
			} {
				total += d
				worst = max(worst, d)
			}
		}
	}
	assert.LessOrEqual(t, worst, 24, "largest channel error")
	assert.LessOrEqual(t, float64(total)/float64(3*side*side), 6.0, "mean channel error")
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

// TestWriteGIF_Errors covers the empty animation and a bad scale.
func TestWriteGIF_Errors(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, animation.New().WriteGIF(&buf, animation.DefaultGIFOptions()), animation.ErrNoFrames)

	img, _ := raster.New(1, 1, hsla.White)
	a := animation.New()
	a.AddFrame(img)
	assert.ErrorIs(t, a.WriteGIF(&buf, animation.GIFOptions{Scale: 0}), animation.ErrScale)
}

// TestSaveGIF writes to disk.
func TestSaveGIF(t *testing.T) {
	img, _ := raster.New(1, 1, hsla.Blue)
	a := animation.New()
	a.AddFrame(img)

	path := filepath.Join(t.TempDir(), "fill.gif")
	require.NoError(t, a.SaveGIF(path, animation.DefaultGIFOptions()))

	err := a.SaveGIF(filepath.Join(t.TempDir(), "no", "such", "dir.gif"), animation.DefaultGIFOptions())
	assert.Error(t, err)
}
