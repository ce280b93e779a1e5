// Package frontier provides the ordered pending-work collections that drive
// a flood fill: a LIFO Stack for depth-first fills and a FIFO Queue for
// breadth-first fills, both behind the Frontier interface.
//
// A frontier performs no duplicate suppression; callers decide what may be
// added. Remove on an empty frontier is a programming error and panics.
//
// Complexity:
//
//   - Add, Remove, IsEmpty, Len: amortized O(1).
package frontier
