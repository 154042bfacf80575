// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package generator

import (
	"github.com/momentics/hioload-generics/api"
	"github.com/momentics/hioload-generics/container"
)

var _ api.Generator[int] = (*Stride[int])(nil)

// Stride yields start, start+step, start+2*step, ...
type Stride[N container.Number] struct {
	next N
	step N
}

func NewStride[N container.Number](start, step N) *Stride[N] {
	return &Stride[N]{next: start, step: step}
}

func (g *Stride[N]) Next() N {
	v := g.next
	g.next += g.step
	return v
}
