// File: container/queue.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// FIFO container on top of eapache/queue's power-of-two ring buffer.

package container

import (
	"github.com/eapache/queue"

	"github.com/momentics/hioload-generics/api"
)

var _ api.Container[int] = (*Queue[int])(nil)

// Queue is a FIFO whose elements stay addressable by position, 0 being
// the oldest. Not safe for concurrent use.
type Queue[E any] struct {
	q *queue.Queue
}

// NewQueue returns a queue pre-filled with elems, oldest first.
func NewQueue[E any](elems ...E) *Queue[E] {
	q := &Queue[E]{q: queue.New()}
	for _, e := range elems {
		q.Add(e)
	}
	return q
}

// Add appends e at the back.
func (q *Queue[E]) Add(e E) { q.q.Add(e) }

// Remove pops the oldest element.
func (q *Queue[E]) Remove() (E, error) {
	if q.q.Length() == 0 {
		var zero E
		return zero, api.NewError(api.ErrCodeEmpty, "queue is empty").WithContext("op", "remove")
	}
	return elem[E](q.q.Remove()), nil
}

// Peek returns the oldest element without removing it.
func (q *Queue[E]) Peek() (E, error) {
	if q.q.Length() == 0 {
		var zero E
		return zero, api.NewError(api.ErrCodeEmpty, "queue is empty").WithContext("op", "peek")
	}
	return elem[E](q.q.Peek()), nil
}

func (q *Queue[E]) Len() int { return q.q.Length() }

func (q *Queue[E]) At(index int) (E, error) {
	// queue.Get accepts negative indexes from the back; Container does not.
	if err := api.CheckIndex(index, q.q.Length()); err != nil {
		var zero E
		return zero, err
	}
	return elem[E](q.q.Get(index)), nil
}

// elem converts a stored value back to E; a nil interface yields the zero E.
func elem[E any](v any) E {
	e, _ := v.(E)
	return e
}
