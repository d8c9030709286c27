// Package pendulum implements the pendulum classic control environment
package pendulum

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r1"

	"github.com/samuelfneumann/goactorcritic/environment"
	ts "github.com/samuelfneumann/goactorcritic/timestep"
	"github.com/samuelfneumann/goactorcritic/utils/floatutils"
)

// default physical constants
const (
	AngleBound  float64 = math.Pi // +/- Angle bounds
	SpeedBound  float64 = 8.0     // +/- Speed bounds
	TorqueBound float64 = 2.0     // +/- Torque bounds

	MaxContinuousAction float64 = TorqueBound
	MinContinuousAction float64 = -MaxContinuousAction

	MaxDiscreteAction float64 = 4.0
	MinDiscreteAction float64 = 0.0

	dt              float64 = 0.05
	Gravity         float64 = 9.8
	Mass            float64 = 1.0
	Length          float64 = 1.0
	ActionDims      int     = 1
	ObservationDims int     = 2
)

// base implements the dynamics shared by the Continuous and Discrete
// pendulum environments. A pendulum is attached to a fixed base. An
// agent can swing the pendulum back and forth, but the swinging torque
// is underpowered. In order to be able to swing the pendulum straight
// up, it must first be rocked back and forth, using the momentum to
// gradually climb higher.
//
// State features consist of the angle of the pendulum from the
// positive y-axis and the angular velocity of the pendulum. The angular
// velocity is clipped to [-SpeedBound, SpeedBound]. Angles are
// normalized to stay within [-AngleBound, AngleBound] = [-π, π].
type base struct {
	environment.Task
	angleBounds  r1.Interval
	speedBounds  r1.Interval
	torqueBounds r1.Interval

	state *mat.VecDense
	steps int
	done  bool
}

// newBase creates and returns a new base environment
func newBase(t environment.Task) *base {
	return &base{
		Task:         t,
		angleBounds:  r1.Interval{Min: -AngleBound, Max: AngleBound},
		speedBounds:  r1.Interval{Min: -SpeedBound, Max: SpeedBound},
		torqueBounds: r1.Interval{Min: -TorqueBound, Max: TorqueBound},
		done:         true,
	}
}

// Reset resets the environment and returns a starting state drawn
// from the Starter
func (p *base) Reset() (ts.Observation, error) {
	start := p.Start()
	if err := validateState(start, p.angleBounds, p.speedBounds); err != nil {
		return ts.Observation{}, fmt.Errorf("reset: %v", err)
	}

	p.state = mat.VecDenseCopyOf(start)
	p.steps = 0
	p.done = false

	return ts.Full(mat.VecDenseCopyOf(p.state)), nil
}

// step applies torque to the pendulum and returns the resulting
// transition. action is the action the agent selected, which is
// recorded in the transition.
func (p *base) step(action mat.Vector, torque float64) (ts.Transition,
	error) {
	if p.done {
		return ts.Transition{}, fmt.Errorf("step: episode has ended, " +
			"call Reset() first")
	}

	from := ts.Full(mat.VecDenseCopyOf(p.state))
	next := p.nextState(torque)
	reward := p.GetReward(p.state, action, next)

	p.steps++
	p.state = next

	var to ts.Observation
	if p.End(p.steps, next) {
		p.done = true
		to = ts.Terminal(mat.VecDenseCopyOf(next))
	} else {
		to = ts.Full(mat.VecDenseCopyOf(next))
	}

	return ts.NewTransition(from, mat.VecDenseCopyOf(action), reward, to), nil
}

// nextState computes the next state of the environment given an amount
// of torque to apply to the fixed base of the pendulum. The torque is
// first clipped to the appropriate torque bounds.
func (p *base) nextState(torque float64) *mat.VecDense {
	th, thdot := p.state.AtVec(0), p.state.AtVec(1)

	torque = floatutils.ClipInterval(torque, p.torqueBounds)

	newthdot := thdot + (-3*Gravity/(2*Length)*math.Sin(th+math.Pi)+
		3.0/(Mass*math.Pow(Length, 2))*torque)*dt
	newthdot = floatutils.ClipInterval(newthdot, p.speedBounds)

	newth := floatutils.Wrap(th+newthdot*dt, p.angleBounds)

	return mat.NewVecDense(ObservationDims, []float64{newth, newthdot})
}

// ObservationSpec returns the observation specification of the
// environment
func (p *base) ObservationSpec() environment.Spec {
	shape := mat.NewVecDense(ObservationDims, nil)

	minObs := []float64{p.angleBounds.Min, p.speedBounds.Min}
	lowerBound := mat.NewVecDense(ObservationDims, minObs)

	maxObs := []float64{p.angleBounds.Max, p.speedBounds.Max}
	upperBound := mat.NewVecDense(ObservationDims, maxObs)

	return environment.NewSpec(shape, environment.Observation, lowerBound,
		upperBound, environment.Continuous)
}

// String converts the environment to a string representation
func (p *base) String() string {
	if p.state == nil {
		return "Pendulum  |  not started"
	}
	str := "Pendulum  |  theta: %v  |  theta dot: %v"
	return fmt.Sprintf(str, p.state.AtVec(0), p.state.AtVec(1))
}

// validateState validates the state to ensure that the angle and
// angular velocity are within the environmental limits
func validateState(obs mat.Vector, angleBounds, speedBounds r1.Interval) error {
	if obs.Len() != ObservationDims {
		return fmt.Errorf("state should have %d features \n\thave(%d)",
			ObservationDims, obs.Len())
	}
	if th := obs.AtVec(0); th > angleBounds.Max || th < angleBounds.Min {
		return fmt.Errorf("theta %v is not within bounds %v", th, angleBounds)
	}
	if thdot := obs.AtVec(1); thdot > speedBounds.Max || thdot < speedBounds.Min {
		return fmt.Errorf("theta dot %v is not within bounds %v", thdot,
			speedBounds)
	}
	return nil
}
