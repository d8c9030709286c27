// Package shared implements shared ownership of mutable learning
// components.
//
// A critic or policy may be referenced by more than one holder, for
// example by a learning algorithm and by a diagnostic consumer which
// inspects it between episodes. A Handle gives each holder access to
// the same value while allowing at most one exclusive borrow to be live
// at any time. Handles do not block: a second concurrent borrow is a
// programmer error and is reported immediately.
package shared

import (
	"errors"
	"fmt"
	"sync/atomic"
)

// ErrBorrowed is returned when a Handle is borrowed while another
// borrow of the same Handle is still live
var ErrBorrowed = errors.New("value already borrowed")

// Handle is a shared-ownership cell with runtime-checked exclusive
// borrowing
type Handle[T any] struct {
	value    T
	borrowed atomic.Bool
}

// New returns a new Handle owning value
func New[T any](value T) *Handle[T] {
	return &Handle[T]{value: value}
}

// TryBorrowMut exclusively borrows the value in the Handle. The
// returned release function must be called to end the borrow. If the
// Handle is already borrowed, ErrBorrowed is returned.
func (h *Handle[T]) TryBorrowMut() (T, func(), error) {
	if !h.borrowed.CompareAndSwap(false, true) {
		var zero T
		return zero, nil, fmt.Errorf("tryBorrowMut: %T: %w", h.value,
			ErrBorrowed)
	}

	released := false
	release := func() {
		if released {
			panic("release: borrow released twice")
		}
		released = true
		h.borrowed.Store(false)
	}
	return h.value, release, nil
}

// BorrowMut is like TryBorrowMut, but panics if the Handle is already
// borrowed
func (h *Handle[T]) BorrowMut() (T, func()) {
	value, release, err := h.TryBorrowMut()
	if err != nil {
		panic(err)
	}
	return value, release
}

// With borrows the value for the duration of f
func (h *Handle[T]) With(f func(T)) {
	value, release := h.BorrowMut()
	defer release()
	f(value)
}

// Borrowed returns whether a borrow of the Handle is currently live
func (h *Handle[T]) Borrowed() bool {
	return h.borrowed.Load()
}
