// Package floodfill is an animated flood fill over raster images: start at a
// seed pixel, spread through every 4-connected pixel whose color stays within
// a tolerance of the seed's original color, repaint each one with a color
// strategy, and record snapshots of the canvas as the fill grows.
//
// Under the hood, everything is organized into small subpackages:
//
//	hsla/      — HSLA color values, conversions, distance metrics
//	raster/    — the pixel grid, plus decoding and PNG encoding
//	picker/    — color strategies: solid, grid, gradient, rainbow
//	frontier/  — stack (depth-first) and queue (breadth-first) orderings
//	animation/ — frame sink and animated GIF export
//	fill/      — reachability check and the fill engine itself
//
// Quick example:
//
//	img, _ := raster.Load("originals/test.png")
//	anim, _ := fill.GradientDFS(img, 50, 50, hsla.Red, hsla.Blue, 70, 0.02, 100)
//	_ = anim.SaveGIF("images/test.gif", animation.DefaultGIFOptions())
//
// The cmd/floodfill command wraps the same steps behind flags.
package floodfill
