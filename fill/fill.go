package fill

import (
	"image"

	"github.com/leofk/algorithm-2/animation"
	"github.com/leofk/algorithm-2/frontier"
	"github.com/leofk/algorithm-2/hsla"
	"github.com/leofk/algorithm-2/picker"
	"github.com/leofk/algorithm-2/raster"
)

// walker encapsulates the mutable state of one fill.
type walker struct {
	img       *raster.Image // private working copy
	pick      picker.Picker
	opts      Options
	seed      hsla.Color // seed color before repainting
	pending   frontier.Frontier
	processed *ProcessedSet
	anim      *animation.Animation
	counter   int // admitted pixels since the last snapshot
	filled    int // admitted pixels, seed excluded
}

// Fill flood-fills img from (seedX, seedY) with colors from p and returns
// the recorded animation. img itself is never modified; the final frame of
// the animation holds the filled image.
//
// Returns ErrImageNil, ErrPickerNil, ErrSeedOutOfBounds for invalid input and
// ErrOptionViolation for invalid options.
func Fill(img *raster.Image, seedX, seedY int, p picker.Picker, opts ...Option) (*animation.Animation, error) {
	if img == nil {
		return nil, ErrImageNil
	}
	if p == nil {
		return nil, ErrPickerNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !img.InBounds(seedX, seedY) {
		return nil, ErrSeedOutOfBounds
	}

	pending, err := frontier.New(o.Ordering)
	if err != nil {
		return nil, err
	}
	w := &walker{
		img:       img.Clone(),
		pick:      p,
		opts:      o,
		seed:      img.At(seedX, seedY),
		pending:   pending,
		processed: NewProcessedSet(img.Width(), img.Height()),
		anim:      animation.New(),
	}

	Logger().Debug("fill: start",
		"seed", image.Pt(seedX, seedY),
		"ordering", o.Ordering.String(),
		"tolerance", o.Tolerance,
		"frameFrequency", o.FrameFrequency)

	w.start(image.Pt(seedX, seedY))
	w.loop()
	w.anim.AddFrame(w.img)

	Logger().Debug("fill: done", "filled", w.filled, "frames", w.anim.Len())
	return w.anim, nil
}

// start repaints and marks the seed, queues it and records frame 0.
func (w *walker) start(seed image.Point) {
	w.paint(seed)
	w.anim.AddFrame(w.img)
}

// loop drains the frontier, admitting neighbors in right, down, left, up order.
func (w *walker) loop() {
	for !w.pending.IsEmpty() {
		curr := w.pending.Remove()
		for _, d := range neighborOffsets {
			next := curr.Add(d)
			if !Admit(next, w.img, w.opts.Tolerance, w.processed, w.seed, w.opts.Metric) {
				continue
			}
			w.paint(next)
			w.filled++
			w.counter++
			if w.counter == w.opts.FrameFrequency {
				w.counter = 0
				w.anim.AddFrame(w.img)
			}
		}
	}
}

// paint recolors pt, marks it processed and adds it to the frontier.
func (w *walker) paint(pt image.Point) {
	w.img.Set(pt.X, pt.Y, w.pick.Pick(pt.X, pt.Y))
	w.processed.Mark(pt)
	w.pending.Add(pt)
	w.opts.OnFill(pt)
}
