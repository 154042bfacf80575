// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package generator

import (
	"github.com/momentics/hioload-generics/api"
	"github.com/momentics/hioload-generics/internal/random"
)

var _ api.Generator[int] = (*IntN)(nil)

// IntN draws uniformly from [0, upperBound).
type IntN struct {
	upperBound int
	src        api.Source
}

// NewIntN requires upperBound > 0.
func NewIntN(upperBound int, src api.Source) (*IntN, error) {
	if upperBound <= 0 {
		return nil, api.NewError(api.ErrCodeInvalidArgument, "upper bound must be > 0").
			WithContext("upper_bound", upperBound)
	}
	return &IntN{upperBound: upperBound, src: random.Or(src)}, nil
}

func (g *IntN) Next() int { return g.src.IntN(g.upperBound) }

// UpperBound returns the exclusive bound.
func (g *IntN) UpperBound() int { return g.upperBound }
