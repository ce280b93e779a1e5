package fill

import (
	"image"

	"github.com/leofk/algorithm-2/hsla"
	"github.com/leofk/algorithm-2/raster"
)

// neighborOffsets lists the 4-neighborhood in examination order:
// right (+x), down (+y), left (-x), up (-y).
var neighborOffsets = [4]image.Point{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}, {X: 0, Y: -1}}

// ProcessedSet records which coordinates have been admitted to a frontier.
// A mark is never cleared.
type ProcessedSet struct {
	width, height int
	seen          []bool
	n             int
}

// NewProcessedSet returns an empty set covering a width×height image.
func NewProcessedSet(width, height int) *ProcessedSet {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &ProcessedSet{width: width, height: height, seen: make([]bool, width*height)}
}

// Has reports whether p was marked. Coordinates outside the image never are.
func (s *ProcessedSet) Has(p image.Point) bool {
	if !s.covers(p) {
		return false
	}
	return s.seen[p.Y*s.width+p.X]
}

// Mark records p. Coordinates outside the image are ignored.
func (s *ProcessedSet) Mark(p image.Point) {
	if !s.covers(p) {
		return
	}
	i := p.Y*s.width + p.X
	if !s.seen[i] {
		s.seen[i] = true
		s.n++
	}
}

// Len returns the number of marked coordinates.
func (s *ProcessedSet) Len() int { return s.n }

func (s *ProcessedSet) covers(p image.Point) bool {
	return p.X >= 0 && p.X < s.width && p.Y >= 0 && p.Y < s.height
}

// Admit reports whether p may join the frontier: it must lie inside img, its
// color must be within tolerance of seed under metric (a nil metric means
// hsla.Distance), and it must not be processed yet. A nil img or processed
// set admits nothing. Admit has no side effects.
func Admit(p image.Point, img *raster.Image, tolerance float64, processed *ProcessedSet, seed hsla.Color, metric hsla.Metric) bool {
	if img == nil || processed == nil || !img.InBounds(p.X, p.Y) {
		return false
	}
	if metric == nil {
		metric = hsla.Color.Dist
	}
	if metric(seed, img.At(p.X, p.Y)) > tolerance {
		return false
	}
	return !processed.Has(p)
}
