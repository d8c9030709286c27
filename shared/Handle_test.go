package shared

import (
	"errors"
	"testing"
)

type counter struct {
	n int
}

func TestBorrowAndRelease(t *testing.T) {
	h := New(&counter{})

	c, release := h.BorrowMut()
	c.n++
	if !h.Borrowed() {
		t.Errorf("handle should report a live borrow")
	}
	release()

	if h.Borrowed() {
		t.Errorf("handle should not report a borrow after release")
	}

	h.With(func(c *counter) { c.n++ })
	h.With(func(c *counter) {
		if c.n != 2 {
			t.Errorf("holders should share state \n\twant(2) \n\thave(%d)",
				c.n)
		}
	})
}

func TestDoubleBorrow(t *testing.T) {
	h := New(&counter{})

	_, release := h.BorrowMut()
	defer release()

	if _, _, err := h.TryBorrowMut(); !errors.Is(err, ErrBorrowed) {
		t.Errorf("expected ErrBorrowed, have %v", err)
	}

	defer func() {
		if recover() == nil {
			t.Errorf("BorrowMut should panic on a live borrow")
		}
	}()
	h.BorrowMut()
}

func TestWithReleasesOnPanic(t *testing.T) {
	h := New(&counter{})

	func() {
		defer func() { recover() }()
		h.With(func(*counter) { panic("boom") })
	}()

	if h.Borrowed() {
		t.Errorf("borrow should be released when f panics")
	}
}
