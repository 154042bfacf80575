// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT

package generator

import (
	"github.com/momentics/hioload-generics/api"
	"github.com/momentics/hioload-generics/internal/random"
)

// RGB is a colour with components in [0, 1].
type RGB struct {
	Red, Green, Blue float64
}

var _ api.Generator[RGB] = (*Color)(nil)

// Color yields random RGB values.
type Color struct {
	src api.Source
}

func NewColor(src api.Source) *Color { return &Color{src: random.Or(src)} }

func (g *Color) Next() RGB {
	return RGB{Red: g.src.Float64(), Green: g.src.Float64(), Blue: g.src.Float64()}
}
