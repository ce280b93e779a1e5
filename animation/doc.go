// Package animation collects the frames a flood fill emits and exports them
// as an animated GIF.
//
// Frames are stored as independent snapshots: AddFrame clones its argument,
// so later writes to the caller's image never alter a recorded frame.
//
// Export picks an exact palette when every frame together uses at most 256
// distinct colors. Otherwise one median-cut palette is quantized from all
// frames together and every pixel maps to its nearest entry. Frames can be upscaled by an integer factor with
// nearest-neighbor sampling so small fills stay readable.
//
// Errors:
//
//   - ErrNoFrames: exporting an animation that has no frames.
//   - ErrScale:    a scale factor below one.
package animation
