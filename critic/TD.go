// Package critic implements linear critics which estimate the values of
// states and actions
package critic

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/goactorcritic/initwfn"
	"github.com/samuelfneumann/goactorcritic/param"
	ts "github.com/samuelfneumann/goactorcritic/timestep"
)

// TD implements a linear state-value critic learned with TD(λ) using
// accumulating eligibility traces. The learning rate and discount are
// stepped at the end of each episode, when traces are also cleared.
type TD struct {
	weights *mat.VecDense
	trace   *mat.VecDense

	learningRate param.Schedule
	discount     param.Schedule
	decay        float64
}

// NewTD returns a new TD critic over states with the given number of
// features. If init is nil, weights are initialized to zero.
func NewTD(features int, learningRate, discount param.Schedule,
	decay float64, init *initwfn.InitWFn) (*TD, error) {
	if features <= 0 {
		return nil, fmt.Errorf("newTD: features must be positive but got %v",
			features)
	}
	if decay < 0 || decay > 1 {
		return nil, fmt.Errorf("newTD: trace decay must be in [0, 1] but "+
			"got %v", decay)
	}
	if learningRate == nil || discount == nil {
		return nil, fmt.Errorf("newTD: learning rate and discount must be " +
			"non-nil")
	}

	data := make([]float64, features)
	if init != nil {
		init.Initialize(mat.NewDense(1, features, data))
	}

	return &TD{
		weights:      mat.NewVecDense(features, data),
		trace:        mat.NewVecDense(features, nil),
		learningRate: learningRate,
		discount:     discount,
		decay:        decay,
	}, nil
}

// PredictV predicts the value of state s
func (t *TD) PredictV(s mat.Vector) float64 {
	return mat.Dot(t.weights, s)
}

// TDError returns the TD error of a transition. Terminal transitions
// are not bootstrapped.
func (t *TD) TDError(transition ts.Transition) float64 {
	target := transition.Reward
	if !transition.Terminated() {
		target += t.discount.Value() * t.PredictV(transition.To.State())
	}
	return target - t.PredictV(transition.From.State())
}

// HandleTransition updates the critic with a single transition
func (t *TD) HandleTransition(transition ts.Transition) {
	state := transition.From.State()
	tdError := t.TDError(transition)

	t.trace.AddScaledVec(state, t.discount.Value()*t.decay, t.trace)
	t.weights.AddScaledVec(t.weights, t.learningRate.Value()*tdError,
		t.trace)
}

// HandleTerminal clears the eligibility traces and steps the learning
// rate and discount
func (t *TD) HandleTerminal() {
	t.trace.Zero()
	t.learningRate = t.learningRate.Step()
	t.discount = t.discount.Step()
}

// Weights returns a view of the weights of the critic
func (t *TD) Weights() *mat.VecDense {
	return t.weights
}

func (t *TD) String() string {
	return fmt.Sprintf("TD(λ=%v, α=%v, γ=%v)", t.decay, t.learningRate,
		t.discount)
}
