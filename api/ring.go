// Package api
// Author: momentics@gmail.com
//
// Bounded FIFO contract whose live elements are also index-addressable.

package api

// Ring is a fixed-capacity FIFO. At(0) is the oldest element.
type Ring[T any] interface {
	Container[T]
	// Enqueue adds an item, returns false if full.
	Enqueue(item T) bool
	// Dequeue removes oldest item, returns false if empty.
	Dequeue() (T, bool)
	// Cap returns buffer capacity.
	Cap() int
}
