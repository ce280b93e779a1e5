// Package hsla models pixel colors in the hue/saturation/lightness/alpha space
// used by the flood fill, together with the distance metrics that decide
// whether two colors are "close enough" to belong to one fill region.
//
// What:
//
//   - Color: H in [0,360), S, L, A in [0,1].
//   - Conversions to and from image/color values (via go-colorful).
//   - Distance: the default metric, Euclidean distance in the HSL double cone,
//     normalized to [0,1].
//   - LabDistance, CIEDE2000Distance: perceptual alternatives.
//   - Parse: "h,s,l", "h,s,l,a" or "#rrggbb" strings.
//
// Complexity:
//
//   - Every operation is O(1).
//
// Errors:
//
//   - ErrParse: a color string could not be understood.
package hsla
