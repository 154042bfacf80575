// Package container
// Author: momentics <momentics@gmail.com>
//
// Concrete api.Container implementations and the operations defined over them.
// Slice is array-backed, List is a singly linked list, Queue grows on
// eapache/queue, Ring is a fixed-capacity FIFO, and Interleaved composes two
// containers of one element type.
// Operations that need more than `any` from the element type (Contains,
// Sum, Joined, ...) are free functions whose type parameters carry the
// extra constraint, so misuse fails to compile.
package container
