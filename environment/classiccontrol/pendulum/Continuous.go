package pendulum

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/goactorcritic/environment"
	ts "github.com/samuelfneumann/goactorcritic/timestep"
)

// Continuous implements the Pendulum environment with continuous
// actions. Actions are 1-dimensional and determine the torque to apply
// to the pendulum at its fixed base. Actions are bounded by
// [MinContinuousAction, MaxContinuousAction] = [-2, 2]. Actions outside
// of this region are clipped to stay within these bounds.
//
// Continuous implements the environment.Environment interface
type Continuous struct {
	*base
}

// NewContinuous creates and returns a new Continuous environment
func NewContinuous(t environment.Task) *Continuous {
	return &Continuous{newBase(t)}
}

// Step takes one environmental step given action and returns the
// resulting transition
func (p *Continuous) Step(action mat.Vector) (ts.Transition, error) {
	if action.Len() != ActionDims {
		return ts.Transition{}, fmt.Errorf("step: actions should be "+
			"%d-dimensional \n\thave(%d)", ActionDims, action.Len())
	}

	return p.step(action, action.AtVec(0))
}

// ActionSpec returns the action specification of the environment
func (p *Continuous) ActionSpec() environment.Spec {
	shape := mat.NewVecDense(ActionDims, nil)

	lowerBound := mat.NewVecDense(ActionDims, []float64{p.torqueBounds.Min})
	upperBound := mat.NewVecDense(ActionDims, []float64{p.torqueBounds.Max})

	return environment.NewSpec(shape, environment.Action, lowerBound,
		upperBound, environment.Continuous)
}
