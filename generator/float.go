// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package generator

import (
	"math"

	"github.com/momentics/hioload-generics/api"
	"github.com/momentics/hioload-generics/internal/random"
)

var _ api.Generator[float64] = (*Float64Range)(nil)

// closedSteps is the resolution of a closed draw: u = k/closedSteps with
// k uniform in [0, closedSteps], so u reaches 1.
const closedSteps = 1 << 30

// Float64Range draws lo + (hi-lo)*u with u uniform in [0, 1].
// Results never exceed hi.
type Float64Range struct {
	lo, hi float64
	src    api.Source
}

// NewFloat64Closed draws from [lo, hi]; both bounds are reachable.
// lo == hi always yields lo.
func NewFloat64Closed(lo, hi float64, src api.Source) (*Float64Range, error) {
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) || lo > hi ||
		math.IsInf(hi-lo, 0) {
		return nil, api.NewError(api.ErrCodeInvalidArgument, "invalid closed range").
			WithContext("lo", lo).WithContext("hi", hi)
	}
	return &Float64Range{lo: lo, hi: hi, src: random.Or(src)}, nil
}

// NewFloat64HalfOpen covers [lo, hi) by closing the range at the float
// just below hi. The range must be non-empty.
func NewFloat64HalfOpen(lo, hi float64, src api.Source) (*Float64Range, error) {
	if !(lo < hi) {
		return nil, api.NewError(api.ErrCodeInvalidArgument, "cannot draw from an empty range").
			WithContext("lo", lo).WithContext("hi", hi)
	}
	return NewFloat64Closed(lo, math.Nextafter(hi, math.Inf(-1)), src)
}

func (g *Float64Range) Next() float64 {
	k := g.src.IntN(closedSteps + 1)
	if k == closedSteps {
		return g.hi
	}
	v := g.lo + (g.hi-g.lo)*(float64(k)/closedSteps)
	// hi-lo may round up.
	return min(v, g.hi)
}

// Bounds returns the inclusive bounds.
func (g *Float64Range) Bounds() (lo, hi float64) { return g.lo, g.hi }
