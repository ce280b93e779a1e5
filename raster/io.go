package raster

import (
	"bufio"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	"image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder

	"github.com/leofk/algorithm-2/hsla"
)

// FromImage converts src into an HSLA image. The source origin is mapped to (0,0).
func FromImage(src image.Image) (*Image, error) {
	b := src.Bounds()
	img, err := New(b.Dx(), b.Dy(), hsla.Transparent)
	if err != nil {
		return nil, err
	}
	for y := 0; y < img.height; y++ {
		for x := 0; x < img.width; x++ {
			img.pix[img.index(x, y)] = hsla.FromColor(src.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return img, nil
}

// ToImage renders m as a non-premultiplied RGBA image.
func (m *Image) ToImage() *image.NRGBA {
	dst := image.NewNRGBA(m.Bounds())
	for i, c := range m.pix {
		x, y := m.Coordinate(i)
		dst.SetNRGBA(x, y, c.NRGBA())
	}
	return dst
}

// Decode reads any registered image format from r.
func Decode(r io.Reader) (*Image, string, error) {
	src, format, err := image.Decode(bufio.NewReader(r))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrDecode, err)
	}
	img, err := FromImage(src)
	if err != nil {
		return nil, format, err
	}
	return img, format, nil
}

// Load decodes the image stored at path.
func Load(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("raster: open %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	img, _, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("raster: load %s: %w", path, err)
	}
	return img, nil
}

// EncodePNG writes m to w as PNG.
func (m *Image) EncodePNG(w io.Writer) error {
	return png.Encode(w, m.ToImage())
}

// SavePNG writes m to a PNG file at path.
func (m *Image) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("raster: create %s: %w", path, err)
	}
	if err := m.EncodePNG(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("raster: encode %s: %w", path, err)
	}
	return f.Close()
}
