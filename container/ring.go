// File: container/ring.go
// Author: momentics <momentics@gmail.com>
//
// Fixed-capacity ring buffer (power-of-two size) with indexed reads.
// Not safe for concurrent use.

package container

import (
	"github.com/momentics/hioload-generics/api"
)

var _ api.Ring[int] = (*Ring[int])(nil)

// Ring is a bounded FIFO; At(0) is the oldest live element.
type Ring[E any] struct {
	data []E
	mask uint64
	head uint64
	tail uint64
}

// NewRing allocates a ring of size slots; size must be a power of two.
func NewRing[E any](size uint64) (*Ring[E], error) {
	if size == 0 || (size&(size-1)) != 0 {
		return nil, api.NewError(api.ErrCodeInvalidArgument, "ring size must be power of two").
			WithContext("size", size)
	}
	return &Ring[E]{
		data: make([]E, size),
		mask: size - 1,
	}, nil
}

// Enqueue adds an item; returns false if full.
func (r *Ring[E]) Enqueue(val E) bool {
	if r.tail-r.head == uint64(len(r.data)) {
		return false
	}
	r.data[r.tail&r.mask] = val
	r.tail++
	return true
}

// Dequeue removes and returns (item, ok); ok==false if empty.
func (r *Ring[E]) Dequeue() (res E, ok bool) {
	if r.head == r.tail {
		return res, false
	}
	idx := r.head & r.mask
	res = r.data[idx]
	var zero E
	r.data[idx] = zero
	r.head++
	return res, true
}

// Len returns number of items in the buffer.
func (r *Ring[E]) Len() int { return int(r.tail - r.head) }

// Cap returns logical buffer capacity.
func (r *Ring[E]) Cap() int { return len(r.data) }

func (r *Ring[E]) At(index int) (E, error) {
	if err := api.CheckIndex(index, r.Len()); err != nil {
		var zero E
		return zero, err
	}
	return r.data[(r.head+uint64(index))&r.mask], nil
}
