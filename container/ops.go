// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package container

import (
	"iter"

	"golang.org/x/exp/constraints"

	"github.com/momentics/hioload-generics/api"
)

// Number is any element type Sum and Product can fold.
type Number interface {
	constraints.Integer | constraints.Float
}

// IndexOf returns the lowest index holding e. An element that cannot be
// read ends the scan.
func IndexOf[E comparable](c api.Container[E], e E) (int, bool) {
	for i := range c.Len() {
		v, err := c.At(i)
		if err != nil {
			return -1, false
		}
		if v == e {
			return i, true
		}
	}
	return -1, false
}

// CountFunc returns how many elements satisfy pred. A read error stops the
// count and is returned unchanged.
func CountFunc[E any](c api.Container[E], pred func(E) bool) (int, error) {
	n := 0
	for i := range c.Len() {
		v, err := c.At(i)
		if err != nil {
			return 0, err
		}
		if pred(v) {
			n++
		}
	}
	return n, nil
}

// Contains reports whether e occurs in c.
func Contains[E comparable](c api.Container[E], e E) bool {
	_, ok := IndexOf(c, e)
	return ok
}

// Equal reports whether a and b have the same length and equal elements.
func Equal[E comparable](a, b api.Container[E]) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := range a.Len() {
		x, err := a.At(i)
		if err != nil {
			return false
		}
		y, err := b.At(i)
		if err != nil || x != y {
			return false
		}
	}
	return true
}

// ToSlice copies c into a new slice in index order.
func ToSlice[E any](c api.Container[E]) ([]E, error) {
	out := make([]E, 0, c.Len())
	for i := range c.Len() {
		v, err := c.At(i)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// All yields index/element pairs and stops at the first unreadable index.
func All[E any](c api.Container[E]) iter.Seq2[int, E] {
	return func(yield func(int, E) bool) {
		for i := range c.Len() {
			v, err := c.At(i)
			if err != nil || !yield(i, v) {
				return
			}
		}
	}
}

// Sum adds every element; an empty container sums to 0.
func Sum[E Number](c api.Container[E]) (E, error) {
	var total E
	for i := range c.Len() {
		v, err := c.At(i)
		if err != nil {
			return 0, err
		}
		total += v
	}
	return total, nil
}

// Product multiplies every element; an empty container yields 1.
func Product[E Number](c api.Container[E]) (E, error) {
	total := E(1)
	for i := range c.Len() {
		v, err := c.At(i)
		if err != nil {
			return 0, err
		}
		total *= v
	}
	return total, nil
}
