package animation

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"io"
	"os"

	"github.com/ericpauley/go-quantize/quantize"
	xdraw "golang.org/x/image/draw"
)

// maxPalette is the largest palette a GIF frame can carry.
const maxPalette = 256

// GIFOptions controls GIF export.
type GIFOptions struct {
	// Delay between frames in hundredths of a second.
	Delay int
	// Scale is the integer upscale factor applied to every frame.
	Scale int
	// LoopCount follows image/gif: 0 loops forever, -1 plays once.
	LoopCount int
}

// DefaultGIFOptions returns Delay=10 (100ms), Scale=1, looping forever.
func DefaultGIFOptions() GIFOptions {
	return GIFOptions{Delay: 10, Scale: 1, LoopCount: 0}
}

// WriteGIF encodes every frame to w as one animated GIF.
func (a *Animation) WriteGIF(w io.Writer, opts GIFOptions) error {
	if len(a.frames) == 0 {
		return ErrNoFrames
	}
	if opts.Scale < 1 {
		return fmt.Errorf("%w: got %d", ErrScale, opts.Scale)
	}

	rgba := make([]*image.NRGBA, len(a.frames))
	for i, f := range a.frames {
		rgba[i] = upscale(f.ToImage(), opts.Scale)
	}

	pal, exact := exactPalette(rgba)
	if !exact {
		pal = medianCut(rgba)
	}

	out := &gif.GIF{
		Image:     make([]*image.Paletted, len(rgba)),
		Delay:     make([]int, len(rgba)),
		LoopCount: opts.LoopCount,
	}
	for i, src := range rgba {
		dst := image.NewPaletted(src.Bounds(), pal)
		draw.Draw(dst, dst.Bounds(), src, image.Point{}, draw.Src)
		out.Image[i] = dst
		out.Delay[i] = opts.Delay
	}
	return gif.EncodeAll(w, out)
}

// SaveGIF writes the animation to a GIF file at path.
func (a *Animation) SaveGIF(path string, opts GIFOptions) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("animation: create %s: %w", path, err)
	}
	if err := a.WriteGIF(f, opts); err != nil {
		_ = f.Close()
		return fmt.Errorf("animation: encode %s: %w", path, err)
	}
	return f.Close()
}

// upscale enlarges src by factor using nearest-neighbor sampling,
// which keeps the set of colors unchanged.
func upscale(src *image.NRGBA, factor int) *image.NRGBA {
	if factor == 1 {
		return src
	}
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	return dst
}

// exactPalette gathers the distinct colors of all frames. It reports false
// once more than maxPalette colors are seen.
func exactPalette(frames []*image.NRGBA) (color.Palette, bool) {
	seen := make(map[color.NRGBA]struct{}, maxPalette)
	var pal color.Palette
	for _, f := range frames {
		for i := 0; i < len(f.Pix); i += 4 {
			c := color.NRGBA{R: f.Pix[i], G: f.Pix[i+1], B: f.Pix[i+2], A: f.Pix[i+3]}
			if _, ok := seen[c]; ok {
				continue
			}
			if len(seen) == maxPalette {
				return nil, false
			}
			seen[c] = struct{}{}
			pal = append(pal, c)
		}
	}
	return pal, true
}

// medianCut builds one palette for the whole animation by quantizing every
// frame stacked into a single strip, so a color keeps its palette entry from
// frame to frame.
func medianCut(frames []*image.NRGBA) color.Palette {
	b := frames[0].Bounds()
	strip := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()*len(frames)))
	off := 0
	for _, f := range frames {
		off += copy(strip.Pix[off:], f.Pix)
	}
	q := quantize.MedianCutQuantizer{Aggregation: quantize.Mean}
	return q.Quantize(make(color.Palette, 0, maxPalette), strip)
}
