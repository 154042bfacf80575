// File: container/interleaved.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Interleaved presents two containers as one alternating sequence:
// [1 2 3] + [4 5 6 7] reads as [1 4 2 5 3 6 7].

package container

import (
	"strings"

	"github.com/momentics/hioload-generics/api"
)

var _ api.Container[int] = (*Interleaved[int])(nil)

// Interleaved is a read-only view over two bases sharing the element type E.
// Elements alternate base1, base2, base1, ... until the shorter base runs
// out, then the rest of the longer base follows in order.
type Interleaved[E any] struct {
	base1 api.Container[E]
	base2 api.Container[E]
}

// NewInterleaved composes base1 and base2. Both must be non-nil and the
// caller must not mutate them while the composite is in use.
func NewInterleaved[E any](base1, base2 api.Container[E]) *Interleaved[E] {
	return &Interleaved[E]{base1: base1, base2: base2}
}

// Len is base1.Len() + base2.Len().
func (c *Interleaved[E]) Len() int {
	return c.base1.Len() + c.base2.Len()
}

// At maps index onto one of the bases. Errors from the bases are returned
// unchanged.
func (c *Interleaved[E]) At(index int) (E, error) {
	n1, n2 := c.base1.Len(), c.base2.Len()
	if err := api.CheckIndex(index, n1+n2); err != nil {
		var zero E
		return zero, err
	}

	half := index / 2
	minCount := min(n1, n2)
	if half >= minCount {
		// Past the interleaved prefix; the longer base continues one step
		// at a time.
		offset := index - minCount
		if n1 > n2 {
			return c.base1.At(offset)
		}
		return c.base2.At(offset)
	}
	if index%2 == 0 {
		return c.base1.At(half)
	}
	return c.base2.At(half)
}

// Joined concatenates the elements of c in interleaved order with no separator.
func Joined[S ~string](c *Interleaved[S]) (S, error) {
	var b strings.Builder
	for i := range c.Len() {
		s, err := c.At(i)
		if err != nil {
			return "", err
		}
		b.WriteString(string(s))
	}
	return S(b.String()), nil
}
