package raster

import (
	"errors"

	"github.com/leofk/algorithm-2/hsla"
)

var (
	// ErrEmptyImage indicates a width or height below one.
	ErrEmptyImage = errors.New("raster: image must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("raster: all rows must have the same length")
	// ErrDecode indicates the input stream is not a decodable image.
	ErrDecode = errors.New("raster: cannot decode image")
)

// Image is a rectangular grid of HSLA pixels. Pixel (x,y) lives at
// pix[y*width+x]. Images are not safe for concurrent mutation.
type Image struct {
	width, height int
	pix           []hsla.Color
}
