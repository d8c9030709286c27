package pendulum

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/goactorcritic/environment"
	ts "github.com/samuelfneumann/goactorcritic/timestep"
)

// torques maps discrete actions to the torque applied at the base
var torques = []float64{
	MinContinuousAction,
	MinContinuousAction / 2.0,
	0.0,
	MaxContinuousAction / 2.0,
	MaxContinuousAction,
}

// Discrete implements the Pendulum environment with discrete actions.
// Actions are 1-dimensional and in {0, 1, 2, 3, 4}, selecting full
// negative torque, half negative torque, no torque, half positive
// torque, and full positive torque respectively.
//
// Discrete implements the environment.Environment interface
type Discrete struct {
	*base
}

// NewDiscrete creates and returns a new Discrete environment
func NewDiscrete(t environment.Task) *Discrete {
	return &Discrete{newBase(t)}
}

// Step takes one environmental step given action and returns the
// resulting transition
func (p *Discrete) Step(action mat.Vector) (ts.Transition, error) {
	if action.Len() != ActionDims {
		return ts.Transition{}, fmt.Errorf("step: actions should be "+
			"%d-dimensional \n\thave(%d)", ActionDims, action.Len())
	}

	a := int(action.AtVec(0))
	if a < 0 || a >= len(torques) || float64(a) != action.AtVec(0) {
		return ts.Transition{}, fmt.Errorf("step: illegal action %v",
			action.AtVec(0))
	}

	return p.step(action, torques[a])
}

// ActionSpec returns the action specification of the environment
func (p *Discrete) ActionSpec() environment.Spec {
	shape := mat.NewVecDense(ActionDims, nil)

	lowerBound := mat.NewVecDense(ActionDims, []float64{MinDiscreteAction})
	upperBound := mat.NewVecDense(ActionDims, []float64{MaxDiscreteAction})

	return environment.NewSpec(shape, environment.Action, lowerBound,
		upperBound, environment.Discrete)
}
