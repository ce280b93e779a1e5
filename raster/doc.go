// Package raster holds the in-memory image the flood fill works on: a fixed
// width×height grid of hsla.Color values stored row-major.
//
// What:
//
//   - Image: bounds-checked At/Set, InBounds, Clone, Equal.
//   - From2D builds an image from a rectangular [][]hsla.Color.
//   - FromImage / ToImage convert to and from the standard image package.
//   - Decode / Load read PNG, JPEG, GIF, BMP, TIFF and WebP files.
//   - SavePNG / EncodePNG write the image back out.
//
// Complexity:
//
//   - At, Set, InBounds: O(1).
//   - Clone, Equal, FromImage, ToImage: O(W×H).
//
// Errors:
//
//   - ErrEmptyImage: width or height is not positive.
//   - ErrNonRectangular: rows of a 2D slice have differing lengths.
//   - ErrDecode: the input could not be decoded as an image.
package raster
