// Package policy implements policies which map states to actions
package policy

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/goactorcritic/agent"
)

// ErrUnsupported is returned, wrapped in an *UnsupportedError, when a
// policy cannot compute some quantity
var ErrUnsupported = agent.ErrUnsupported

// UnsupportedError records the operation a policy does not support
type UnsupportedError = agent.UnsupportedError

// Policy selects actions in states. Actions of policies over a finite
// set of actions are length-1 vectors holding the action index.
type Policy interface {
	agent.Algorithm

	// Sample samples an action in state s
	Sample(s mat.Vector) mat.Vector

	// Probability returns the probability (or density) of selecting
	// action a in state s
	Probability(s, a mat.Vector) (float64, error)
}

// Finite is a Policy over a finite set of actions
type Finite interface {
	Policy

	// Probabilities returns the probability of selecting each action in
	// state s
	Probabilities(s mat.Vector) (*mat.VecDense, error)

	NumActions() int
}

// Differentiable is a Policy whose log-probability can be
// differentiated with respect to its parameters
type Differentiable interface {
	Policy

	// GradLog returns the gradient of log π(a|s), laid out as the
	// policy's parameter vector
	GradLog(s, a mat.Vector) *mat.VecDense
}

// Parameterised is a differentiable policy with a learned parameter
// vector, updated in place
type Parameterised interface {
	Differentiable
	agent.Parameterised

	// Update moves the parameters of the policy in direction, given
	// that action a was taken in state s. How direction maps onto the
	// parameters depends on the policy.
	Update(s, a, direction mat.Vector)
}

// Continuous is a Parameterised policy over a continuous action space
type Continuous interface {
	Parameterised

	// MPA returns the most probable action in state s
	MPA(s mat.Vector) *mat.VecDense
}

// actionIndex returns the index of the discrete action a, which must
// be a length-1 vector holding an integer in [0, n)
func actionIndex(a mat.Vector, n int) (int, error) {
	if a.Len() != 1 {
		return 0, fmt.Errorf("actionIndex: discrete actions should have "+
			"length 1 but got length %v", a.Len())
	}

	action := a.AtVec(0)
	if action != math.Floor(action) || action < 0 || int(action) >= n {
		return 0, fmt.Errorf("actionIndex: illegal action %v, expected an "+
			"integer in [0, %v)", action, n)
	}
	return int(action), nil
}

// checkState panics if the length of s differs from features
func checkState(s mat.Vector, features int) {
	if s.Len() != features {
		panic(fmt.Sprintf("policy: state has %v features, expected %v",
			s.Len(), features))
	}
}
