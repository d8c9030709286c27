// Package param implements scalar hyperparameters that may decay as
// episodes complete.
//
// A Schedule is an immutable value. Calling Step() never changes the
// receiver; it returns the Schedule that should be used for the next
// episode. Algorithms replace their Schedules with the result of Step()
// at episode boundaries only, so that a hyperparameter never changes
// in the middle of an episode.
package param

import (
	"fmt"
	"math"
)

// Schedule is a scalar hyperparameter with a decay rule
type Schedule interface {
	// Value returns the current value of the hyperparameter
	Value() float64

	// Step returns the Schedule for the next episode
	Step() Schedule

	fmt.Stringer
}

// Fixed is a hyperparameter which never changes
type Fixed float64

// Value implements the Schedule interface
func (f Fixed) Value() float64 {
	return float64(f)
}

// Step implements the Schedule interface
func (f Fixed) Step() Schedule {
	return f
}

func (f Fixed) String() string {
	return fmt.Sprintf("Fixed(%v)", float64(f))
}

// Linear is a hyperparameter which decreases by a constant amount
// each episode until it reaches a floor
type Linear struct {
	value float64
	rate  float64
	floor float64
}

// NewLinear returns a new Linear schedule starting at value and
// decreasing by rate each step, never dropping below floor
func NewLinear(value, rate, floor float64) (Linear, error) {
	if rate < 0 {
		return Linear{}, fmt.Errorf("newLinear: rate must be non-negative "+
			"\n\thave(%v)", rate)
	}
	return Linear{value, rate, floor}, nil
}

// Value implements the Schedule interface
func (l Linear) Value() float64 {
	return l.value
}

// Step implements the Schedule interface
func (l Linear) Step() Schedule {
	next := l
	next.value = math.Max(l.value-l.rate, l.floor)

	// A value which starts below the floor is left alone
	next.value = math.Min(next.value, l.value)
	return next
}

func (l Linear) String() string {
	return fmt.Sprintf("Linear(%v, rate=%v, floor=%v)", l.value, l.rate,
		l.floor)
}

// Exponential is a hyperparameter which is multiplied by a constant
// rate in (0, 1] each episode until it reaches a floor
type Exponential struct {
	value float64
	rate  float64
	floor float64
}

// NewExponential returns a new Exponential schedule starting at value
// and multiplied by rate each step, never dropping below floor
func NewExponential(value, rate, floor float64) (Exponential, error) {
	if rate <= 0 || rate > 1 {
		return Exponential{}, fmt.Errorf("newExponential: rate must be in "+
			"(0, 1] \n\thave(%v)", rate)
	}
	return Exponential{value, rate, floor}, nil
}

// Value implements the Schedule interface
func (e Exponential) Value() float64 {
	return e.value
}

// Step implements the Schedule interface
func (e Exponential) Step() Schedule {
	next := e
	next.value = math.Max(e.value*e.rate, e.floor)
	next.value = math.Min(next.value, e.value)
	return next
}

func (e Exponential) String() string {
	return fmt.Sprintf("Exponential(%v, rate=%v, floor=%v)", e.value,
		e.rate, e.floor)
}
