// File: generator/norepeat.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Uniform ints in [0, upperBound) that never repeat the previous value.

package generator

import (
	"github.com/momentics/hioload-generics/api"
	"github.com/momentics/hioload-generics/internal/random"
)

var _ api.Generator[int] = (*NoRepeat)(nil)

// NoRepeat yields values in [0, upperBound) with no two consecutive values
// equal. Each value after the first is uniform over the upperBound-1
// candidates that differ from its predecessor.
type NoRepeat struct {
	upperBound int
	src        api.Source
	previous   int
	started    bool
}

// NewNoRepeat requires upperBound > 1; with a single candidate every draw
// would repeat.
func NewNoRepeat(upperBound int, src api.Source) (*NoRepeat, error) {
	if upperBound <= 1 {
		return nil, api.NewError(api.ErrCodeInvalidArgument, "no-repeat upper bound must be > 1").
			WithContext("upper_bound", upperBound)
	}
	return &NoRepeat{upperBound: upperBound, src: random.Or(src)}, nil
}

func (g *NoRepeat) Next() int {
	var next int
	if g.started {
		// Draw from one fewer value and shift past previous.
		next = g.src.IntN(g.upperBound - 1)
		if next >= g.previous {
			next++
		}
	} else {
		next = g.src.IntN(g.upperBound)
		g.started = true
	}
	g.previous = next
	return next
}

// Previous returns the last value produced and whether one exists.
func (g *NoRepeat) Previous() (int, bool) { return g.previous, g.started }
