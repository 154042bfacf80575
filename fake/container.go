// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT

package fake

import "github.com/momentics/hioload-generics/api"

var _ api.Container[int] = (*Container[int])(nil)

// Container is a slice-backed api.Container that counts reads and can be
// told to fail at chosen indexes.
type Container[E any] struct {
	Elems  []E
	FailAt map[int]error
	Reads  int
}

// NewContainer wraps elems.
func NewContainer[E any](elems ...E) *Container[E] {
	return &Container[E]{Elems: elems, FailAt: make(map[int]error)}
}

func (c *Container[E]) Len() int { return len(c.Elems) }

func (c *Container[E]) At(index int) (E, error) {
	c.Reads++
	var zero E
	if err, ok := c.FailAt[index]; ok {
		return zero, err
	}
	if err := api.CheckIndex(index, len(c.Elems)); err != nil {
		return zero, err
	}
	return c.Elems[index], nil
}
