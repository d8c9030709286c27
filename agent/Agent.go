// Package agent defines the interfaces implemented by learning
// algorithms and their components
package agent

import (
	"gonum.org/v1/gonum/mat"

	ts "github.com/samuelfneumann/goactorcritic/timestep"
)

// Algorithm is any component which must be notified at episode
// boundaries.
//
// HandleTerminal is called exactly once per completed episode, after
// the last transition of the episode has been handled and before the
// first transition of the next episode is handled.
type Algorithm interface {
	HandleTerminal()
}

// OnlineLearner learns from a stream of transitions, one at a time
type OnlineLearner interface {
	Algorithm

	// HandleTransition updates the learner using a single transition
	HandleTransition(t ts.Transition)
}

// BatchLearner is an OnlineLearner which can also learn from a whole
// sequence of transitions at once
type BatchLearner interface {
	OnlineLearner

	// HandleSequence updates the learner using a sequence of
	// transitions, usually a full trajectory
	HandleSequence(t []ts.Transition)
}

// ValuePredictor predicts the value of states
type ValuePredictor interface {
	PredictV(s mat.Vector) float64
}

// ActionValuePredictor predicts the value of state-action pairs
type ActionValuePredictor interface {
	// PredictQs returns the value of each action in state s. Predictors
	// over continuous actions return an *UnsupportedError.
	PredictQs(s mat.Vector) (*mat.VecDense, error)

	// PredictQsa returns the value of taking action a in state s
	PredictQsa(s, a mat.Vector) (float64, error)
}

// Parameterised is a component with a learned parameter vector.
//
// Weights returns a view of the parameters: the returned vector shares
// its backing data with the component, so modifying the vector modifies
// the component.
type Parameterised interface {
	Weights() *mat.VecDense
}

// Critic estimates state values and learns from transitions
type Critic interface {
	ValuePredictor
	OnlineLearner
}

// ParameterisedCritic is a Critic which exposes its parameter vector
type ParameterisedCritic interface {
	Critic
	Parameterised
}

// Controller selects actions. The target policy is the policy being
// learned, while the behaviour policy is the policy used to select
// actions while learning.
type Controller interface {
	SampleTarget(s mat.Vector) mat.Vector
	SampleBehaviour(s mat.Vector) mat.Vector
}

// Agent is a Controller which learns online. The Controller chooses
// which actions are taken, and the OnlineLearner uses the resulting
// transitions to improve the Controller.
type Agent interface {
	Controller
	OnlineLearner
}
