// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package generator

import (
	"github.com/momentics/hioload-generics/api"
	"github.com/momentics/hioload-generics/vector"
)

var _ api.Generator[vector.Vector2[int]] = (*Vector2Gen[int])(nil)

// Vector2Gen builds vectors from two component generators, which may be of
// different concrete types as long as both yield C.
type Vector2Gen[C vector.Number] struct {
	dx api.Generator[C]
	dy api.Generator[C]
}

func NewVector2[C vector.Number](dx, dy api.Generator[C]) *Vector2Gen[C] {
	return &Vector2Gen[C]{dx: dx, dy: dy}
}

// Next draws DX before DY.
func (g *Vector2Gen[C]) Next() vector.Vector2[C] {
	dx := g.dx.Next()
	return vector.Vector2[C]{DX: dx, DY: g.dy.Next()}
}
