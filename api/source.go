// Package api
// Author: momentics@gmail.com
//
// Randomness contract shared by generators.

package api

// Source is the randomness a generator draws from.
// *math/rand/v2.Rand satisfies it, so a seeded PCG can be injected for tests.
// Constructors treat a nil Source, including a typed nil pointer, as the
// process-wide default.
type Source interface {
	// IntN returns a uniform value in [0, n). n must be > 0.
	IntN(n int) int
	// Float64 returns a uniform value in [0.0, 1.0).
	Float64() float64
}
