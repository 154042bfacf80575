// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package generator

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/momentics/hioload-generics/api"
)

// Instrument wraps g so every Next increments draws.
func Instrument[E any](g api.Generator[E], draws prometheus.Counter) api.Generator[E] {
	return api.GeneratorFunc[E](func() E {
		draws.Inc()
		return g.Next()
	})
}
