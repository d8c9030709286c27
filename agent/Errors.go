package agent

import (
	"errors"
	"fmt"
)

// ErrUnsupported indicates that a component cannot perform some
// operation, for example a composed policy whose probabilities have no
// closed form
var ErrUnsupported = errors.New("unsupported operation")

// UnsupportedError records which operation of which component is not
// supported
type UnsupportedError struct {
	Op        string
	Component string
}

// NewUnsupportedError returns an *UnsupportedError for operation op on
// component, where component is usually a value of the type which does
// not support op
func NewUnsupportedError(op string, component interface{}) *UnsupportedError {
	return &UnsupportedError{Op: op, Component: fmt.Sprintf("%T", component)}
}

func (u *UnsupportedError) Error() string {
	return fmt.Sprintf("%v: %v: %v", u.Op, u.Component, ErrUnsupported)
}

// Unwrap allows errors.Is(err, ErrUnsupported)
func (u *UnsupportedError) Unwrap() error {
	return ErrUnsupported
}
