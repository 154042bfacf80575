// Package fake
// Author: momentics <momentics@gmail.com>
//
// Fake implementations for testing and development.
// Provides predictable, controllable behavior for the core contracts.

package fake

import (
	"github.com/eapache/queue"

	"github.com/momentics/hioload-generics/api"
)

var _ api.Source = (*Source)(nil)

// Source replays scripted draws. Once a script runs dry it returns 0.
type Source struct {
	ints   *queue.Queue
	floats *queue.Queue
	// IntNCalls records the n argument of every IntN call, in order.
	IntNCalls []int
}

// NewSource creates a source that answers IntN with ints, in order.
func NewSource(ints ...int) *Source {
	s := &Source{ints: queue.New(), floats: queue.New()}
	s.ScriptInts(ints...)
	return s
}

// ScriptInts appends values to the IntN script.
func (s *Source) ScriptInts(vals ...int) {
	for _, v := range vals {
		s.ints.Add(v)
	}
}

// ScriptFloats appends values to the Float64 script.
func (s *Source) ScriptFloats(vals ...float64) {
	for _, v := range vals {
		s.floats.Add(v)
	}
}

// IntN returns the next scripted int reduced modulo n.
func (s *Source) IntN(n int) int {
	s.IntNCalls = append(s.IntNCalls, n)
	if s.ints.Length() == 0 {
		return 0
	}
	return s.ints.Remove().(int) % n
}

// Float64 returns the next scripted float.
func (s *Source) Float64() float64 {
	if s.floats.Length() == 0 {
		return 0
	}
	return s.floats.Remove().(float64)
}

// Pending reports how many scripted ints are still unread.
func (s *Source) Pending() int { return s.ints.Length() }
