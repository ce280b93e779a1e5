package frontier

import "image"

// Queue is a first-in-first-out frontier.
// Removed slots at the head are reclaimed once they make up half the buffer.
type Queue struct {
	items []image.Point
	head  int
}

// NewQueue returns an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Add appends p at the tail.
func (q *Queue) Add(p image.Point) {
	q.items = append(q.items, p)
}

// Remove dequeues the head coordinate.
func (q *Queue) Remove() image.Point {
	if q.head == len(q.items) {
		panic("frontier: Remove on empty queue")
	}
	p := q.items[q.head]
	q.head++
	if q.head == len(q.items) {
		q.items = q.items[:0]
		q.head = 0
	} else if q.head > len(q.items)/2 {
		n := copy(q.items, q.items[q.head:])
		q.items = q.items[:n]
		q.head = 0
	}
	return p
}

// IsEmpty reports whether the queue holds nothing.
func (q *Queue) IsEmpty() bool { return q.head == len(q.items) }

// Len returns the number of queued coordinates.
func (q *Queue) Len() int { return len(q.items) - q.head }
