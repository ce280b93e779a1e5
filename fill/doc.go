// Package fill implements an animated flood fill over a raster.Image.
//
// What:
//
//   - Fill starts at a seed pixel and expands through 4-connected neighbors
//     whose color lies within Tolerance of the seed's original color,
//     repainting each admitted pixel with a picker.Picker.
//   - The traversal order is chosen with WithOrdering: frontier.DFS (stack)
//     or frontier.BFS (queue). Both run the same loop body.
//   - Every FrameFrequency admitted pixels a snapshot is appended to the
//     returned animation. Frame 0 shows the repainted seed and the last
//     frame always shows the settled result.
//   - Admit is the reachability check used by the loop, exposed on its own.
//   - SolidDFS, GridBFS, GradientDFS, RainbowBFS and friends wrap Fill with a
//     ready-made picker.
//
// Ordering contract:
//
//   - Neighbors are examined right (+x), down (+y), left (-x), up (-y).
//   - A pixel is repainted and marked processed when it is admitted to the
//     frontier, not when it is removed. Both rules shape the intermediate
//     frames and must not change.
//   - Tolerance is always measured against the seed's color before the fill,
//     never against the neighbor that led to a pixel.
//
// Complexity:
//
//   - Time:   O(W×H) pixel checks plus O(F×W×H) for F snapshots.
//   - Memory: O(W×H) for the working copy, processed set and frontier,
//     plus O(F×W×H) for the animation.
//
// Errors:
//
//   - ErrImageNil, ErrPickerNil: missing inputs.
//   - ErrSeedOutOfBounds: the seed is not inside the image.
//   - ErrOptionViolation: FrameFrequency < 1, negative or NaN Tolerance,
//     unknown Ordering, nil Metric.
package fill
