package raster

import (
	"image"

	"github.com/leofk/algorithm-2/hsla"
)

// New returns a width×height image with every pixel set to fill.
func New(width, height int, fill hsla.Color) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyImage
	}
	img := &Image{width: width, height: height, pix: make([]hsla.Color, width*height)}
	for i := range img.pix {
		img.pix[i] = fill
	}
	return img, nil
}

// From2D builds an image from rows[y][x]. The input is copied.
func From2D(rows [][]hsla.Color) (*Image, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyImage
	}
	h, w := len(rows), len(rows[0])
	img := &Image{width: w, height: h, pix: make([]hsla.Color, 0, w*h)}
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		img.pix = append(img.pix, row...)
	}
	return img, nil
}

// Width returns the number of columns.
func (m *Image) Width() int { return m.width }

// Height returns the number of rows.
func (m *Image) Height() int { return m.height }

// Bounds returns the image rectangle anchored at the origin.
func (m *Image) Bounds() image.Rectangle { return image.Rect(0, 0, m.width, m.height) }

// InBounds reports whether (x,y) lies within the image.
func (m *Image) InBounds(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// At returns the pixel at (x,y), or hsla.Transparent outside the image.
func (m *Image) At(x, y int) hsla.Color {
	if !m.InBounds(x, y) {
		return hsla.Transparent
	}
	return m.pix[m.index(x, y)]
}

// Set writes c at (x,y). Writes outside the image are ignored.
func (m *Image) Set(x, y int, c hsla.Color) {
	if !m.InBounds(x, y) {
		return
	}
	m.pix[m.index(x, y)] = c
}

// Clone returns a deep copy that shares no pixel storage with m.
func (m *Image) Clone() *Image {
	pix := make([]hsla.Color, len(m.pix))
	copy(pix, m.pix)
	return &Image{width: m.width, height: m.height, pix: pix}
}

// Equal reports whether both images have the same size and identical pixels.
func (m *Image) Equal(other *Image) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.width != other.width || m.height != other.height {
		return false
	}
	for i := range m.pix {
		if m.pix[i] != other.pix[i] {
			return false
		}
	}
	return true
}

// Count returns how many pixels satisfy keep.
func (m *Image) Count(keep func(c hsla.Color) bool) int {
	n := 0
	for _, c := range m.pix {
		if keep(c) {
			n++
		}
	}
	return n
}

// index maps (x,y) to a row-major index: y*width + x.
func (m *Image) index(x, y int) int {
	return y*m.width + x
}

// Coordinate converts a row-major index back to (x,y).
func (m *Image) Coordinate(idx int) (x, y int) {
	return idx % m.width, idx / m.width
}
