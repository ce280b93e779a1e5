package animation

import (
	"errors"

	"github.com/leofk/algorithm-2/raster"
)

var (
	// ErrNoFrames is returned when exporting an empty animation.
	ErrNoFrames = errors.New("animation: no frames to export")
	// ErrScale is returned for a scale factor below one.
	ErrScale = errors.New("animation: scale must be at least 1")
)

// Animation is an append-only sequence of image snapshots.
type Animation struct {
	frames []*raster.Image
}

// New returns an empty animation.
func New() *Animation {
	return &Animation{}
}

// AddFrame appends a snapshot of img.
func (a *Animation) AddFrame(img *raster.Image) {
	a.frames = append(a.frames, img.Clone())
}

// Len returns the number of frames.
func (a *Animation) Len() int { return len(a.frames) }

// Frame returns frame i. It panics if i is out of range.
func (a *Animation) Frame(i int) *raster.Image { return a.frames[i] }

// Last returns the final frame, or nil for an empty animation.
func (a *Animation) Last() *raster.Image {
	if len(a.frames) == 0 {
		return nil
	}
	return a.frames[len(a.frames)-1]
}

// Frames returns the frames in order. The slice is a copy; the images are not.
func (a *Animation) Frames() []*raster.Image {
	out := make([]*raster.Image, len(a.frames))
	copy(out, a.frames)
	return out
}
