// File: api/container.go
// Package api defines the Container and Generator contracts.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

// Container is a read-only, index-addressable sequence of E.
type Container[E any] interface {
	// Len returns the element count; stable between calls unless the
	// implementation documents itself as mutable.
	Len() int
	// At returns the element at index, or an error satisfying
	// errors.Is(err, ErrIndexOutOfRange) when index is outside [0, Len()).
	At(index int) (E, error)
}

// Generator produces one value per call. Implementations may keep state
// between calls and may draw from a Source.
type Generator[E any] interface {
	Next() E
}

// GeneratorFunc adapts a plain function to Generator.
type GeneratorFunc[E any] func() E

// Next calls f.
func (f GeneratorFunc[E]) Next() E { return f() }
