// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT

package container

import (
	"iter"

	"github.com/momentics/hioload-generics/api"
)

var _ api.Container[string] = (*List[string])(nil)

type listNode[E any] struct {
	elem E
	next *listNode[E]
}

// List is a singly linked list with O(1) append and O(n) indexed reads.
// The zero value is an empty list ready to use.
type List[E any] struct {
	head *listNode[E]
	tail *listNode[E]
	n    int
}

// NewList builds a list holding elems in order.
func NewList[E any](elems ...E) *List[E] {
	l := &List[E]{}
	for _, e := range elems {
		l.Append(e)
	}
	return l
}

// Append adds e after the current tail.
func (l *List[E]) Append(e E) {
	nd := &listNode[E]{elem: e}
	if l.tail != nil {
		l.tail.next = nd
	} else {
		l.head = nd
	}
	l.tail = nd
	l.n++
}

func (l *List[E]) Len() int { return l.n }

func (l *List[E]) At(index int) (E, error) {
	if err := api.CheckIndex(index, l.n); err != nil {
		var zero E
		return zero, err
	}
	nd := l.head
	for i := 0; i < index; i++ {
		nd = nd.next
	}
	return nd.elem, nil
}

// All iterates the elements from head to tail.
func (l *List[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for nd := l.head; nd != nil; nd = nd.next {
			if !yield(nd.elem) {
				return
			}
		}
	}
}
