package frontier

import (
	"errors"
	"fmt"
	"image"
	"strings"
)

// ErrUnknownOrdering indicates an Ordering value outside DFS and BFS.
var ErrUnknownOrdering = errors.New("frontier: unknown ordering")

// Frontier is an ordered collection of pending coordinates.
type Frontier interface {
	// Add inserts p.
	Add(p image.Point)
	// Remove takes the next coordinate according to the ordering.
	// It panics when the frontier is empty.
	Remove() image.Point
	// IsEmpty reports whether nothing is pending.
	IsEmpty() bool
	// Len returns the number of pending coordinates.
	Len() int
}

// Ordering selects how a frontier hands coordinates back.
type Ordering int

const (
	// DFS removes the most recently added coordinate first (Stack).
	DFS Ordering = iota
	// BFS removes the least recently added coordinate first (Queue).
	BFS
)

// String returns "dfs" or "bfs".
func (o Ordering) String() string {
	switch o {
	case DFS:
		return "dfs"
	case BFS:
		return "bfs"
	default:
		return fmt.Sprintf("Ordering(%d)", int(o))
	}
}

// ParseOrdering accepts "dfs" or "bfs" in any case.
func ParseOrdering(s string) (Ordering, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dfs":
		return DFS, nil
	case "bfs":
		return BFS, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOrdering, s)
}

// New returns an empty frontier for o.
func New(o Ordering) (Frontier, error) {
	switch o {
	case DFS:
		return NewStack(), nil
	case BFS:
		return NewQueue(), nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownOrdering, int(o))
}
