// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package generator

import (
	"github.com/momentics/hioload-generics/api"
	"github.com/momentics/hioload-generics/container"
)

// Take calls g.Next exactly n times, in order, and returns the results.
func Take[E any](g api.Generator[E], n int) (container.Slice[E], error) {
	if n < 0 {
		return nil, api.NewError(api.ErrCodeInvalidArgument, "count must be >= 0").WithContext("count", n)
	}
	out := make(container.Slice[E], n)
	for i := range out {
		out[i] = g.Next()
	}
	return out, nil
}
