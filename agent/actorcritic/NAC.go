package actorcritic

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/goactorcritic/agent"
	"github.com/samuelfneumann/goactorcritic/param"
	"github.com/samuelfneumann/goactorcritic/policy"
	ts "github.com/samuelfneumann/goactorcritic/timestep"
)

// NAC implements a natural actor-critic:
//
// https://www.sciencedirect.com/science/article/pii/S0925231208000532
//
// The critic learns weights which are proportional to the natural
// gradient of the policy, for example a critic with features compatible
// with the policy. After each critic update, the critic weights scaled
// by alpha are added to the policy weights. Target and behaviour
// actions are both sampled from the single policy.
type NAC struct {
	critic agent.ParameterisedCritic
	policy policy.Parameterised

	alpha param.Schedule
}

// NewNAC returns a new NAC. The critic and policy must have weight
// vectors of the same dimension.
func NewNAC(critic agent.ParameterisedCritic, p policy.Parameterised,
	alpha param.Schedule) (*NAC, error) {
	if critic == nil || p == nil {
		return nil, fmt.Errorf("newNAC: critic and policy must be non-nil")
	}
	if alpha == nil {
		return nil, fmt.Errorf("newNAC: alpha must be non-nil")
	}

	criticDims, policyDims := critic.Weights().Len(), p.Weights().Len()
	if criticDims != policyDims {
		return nil, fmt.Errorf("newNAC: critic weights must have the same "+
			"dimension as policy weights \n\twant(%v) \n\thave(%v)",
			policyDims, criticDims)
	}

	return &NAC{critic: critic, policy: p, alpha: alpha}, nil
}

// blend adds the critic weights scaled by alpha to the policy weights
func (n *NAC) blend() {
	weights := n.policy.Weights()
	weights.AddScaledVec(weights, n.alpha.Value(), n.critic.Weights())
}

// HandleTransition updates the critic with a single transition, then
// moves the policy along the critic weights
func (n *NAC) HandleTransition(t ts.Transition) {
	n.critic.HandleTransition(t)
	n.blend()
}

// HandleSequence updates the critic with a whole sequence of
// transitions, then moves the policy along the critic weights once. If
// the critic cannot learn from sequences, it is given each transition
// in turn.
func (n *NAC) HandleSequence(transitions []ts.Transition) {
	if batch, ok := n.critic.(agent.BatchLearner); ok {
		batch.HandleSequence(transitions)
	} else {
		for _, t := range transitions {
			n.critic.HandleTransition(t)
		}
	}
	n.blend()
}

// HandleTerminal steps alpha and notifies the critic and policy of the
// end of the episode
func (n *NAC) HandleTerminal() {
	n.alpha = n.alpha.Step()

	n.critic.HandleTerminal()
	n.policy.HandleTerminal()
}

// PredictV predicts the value of state s
func (n *NAC) PredictV(s mat.Vector) float64 {
	return n.critic.PredictV(s)
}

// PredictQs predicts the value of each action in state s, if the critic
// predicts action values
func (n *NAC) PredictQs(s mat.Vector) (*mat.VecDense, error) {
	q, ok := n.critic.(agent.ActionValuePredictor)
	if !ok {
		return nil, agent.NewUnsupportedError("predictQs", n.critic)
	}
	return q.PredictQs(s)
}

// PredictQsa predicts the value of action a in state s, if the critic
// predicts action values
func (n *NAC) PredictQsa(s, a mat.Vector) (float64, error) {
	q, ok := n.critic.(agent.ActionValuePredictor)
	if !ok {
		return 0, agent.NewUnsupportedError("predictQsa", n.critic)
	}
	return q.PredictQsa(s, a)
}

// SampleTarget samples an action from the policy
func (n *NAC) SampleTarget(s mat.Vector) mat.Vector {
	return n.policy.Sample(s)
}

// SampleBehaviour samples an action from the policy
func (n *NAC) SampleBehaviour(s mat.Vector) mat.Vector {
	return n.policy.Sample(s)
}

func (n *NAC) String() string {
	return fmt.Sprintf("NAC(α=%v, critic: %v, policy: %v)", n.alpha,
		n.critic, n.policy)
}
