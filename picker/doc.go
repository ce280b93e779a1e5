// Package picker provides the color strategies a flood fill paints with.
//
// A Picker maps a pixel coordinate to the color written there. Every
// implementation in this package is a pure function of its construction
// parameters and the coordinate, so picking the same (x,y) twice always
// returns the same color and the fill engine never needs to know which
// variant it was handed.
//
// Variants:
//
//   - Solid:    one fixed color everywhere.
//   - Grid:     Color on every Spacing-th row and column, Background elsewhere.
//   - Gradient: From at Center fading linearly to To at Radius, To beyond.
//   - Rainbow:  hue sweeps along the x+y diagonal at Frequency cycles per pixel.
//   - Func:     adapts a plain function.
package picker
