// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT

package container

import (
	"slices"

	"github.com/momentics/hioload-generics/api"
)

var _ api.Container[int] = Slice[int](nil)

// Slice is a plain Go slice viewed as a Container.
type Slice[E any] []E

// NewSlice copies elems into a new Slice owned by the caller.
func NewSlice[E any](elems ...E) Slice[E] {
	return Slice[E](slices.Clone(elems))
}

func (s Slice[E]) Len() int { return len(s) }

func (s Slice[E]) At(index int) (E, error) {
	if err := api.CheckIndex(index, len(s)); err != nil {
		var zero E
		return zero, err
	}
	return s[index], nil
}
