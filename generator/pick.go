// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package generator

import (
	"github.com/momentics/hioload-generics/api"
	"github.com/momentics/hioload-generics/internal/random"
)

// PickRandom returns a or b with equal probability.
func PickRandom[T any](src api.Source, a, b T) T {
	if random.Or(src).IntN(2) == 0 {
		return a
	}
	return b
}

// PickRandomLazy is PickRandom for values that are costly to build:
// only the chosen function runs.
func PickRandomLazy[T any](src api.Source, a, b func() T) T {
	if random.Or(src).IntN(2) == 0 {
		return a()
	}
	return b()
}
