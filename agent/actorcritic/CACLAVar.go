// Package actorcritic implements linear actor-critic algorithms
package actorcritic

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/goactorcritic/agent"
	"github.com/samuelfneumann/goactorcritic/param"
	"github.com/samuelfneumann/goactorcritic/policy"
	"github.com/samuelfneumann/goactorcritic/shared"
	ts "github.com/samuelfneumann/goactorcritic/timestep"
)

// MinVariance bounds the running variance estimate of CACLAVar from
// below when scaling policy updates
const MinVariance float64 = 1e-8

// CACLAVar implements the Continuous Actor-Critic Learning Automaton
// with variance-scaled updates:
//
// https://link.springer.com/chapter/10.1007/978-3-642-27645-3_7
//
// The target policy is moved toward an action only when the bootstrapped
// return of the action exceeds the value the critic predicted before
// the transition. The size of each update is scaled by the number of
// standard deviations of the bootstrapped return, estimated by a running
// average of its square which is reset at the start of each episode.
//
// The critic and policies are shared: each is held in a shared.Handle
// and borrowed for the duration of each call to the algorithm.
type CACLAVar struct {
	critic    *shared.Handle[agent.Critic]
	target    *shared.Handle[policy.Continuous]
	behaviour *shared.Handle[policy.Policy]

	variance float64

	alpha param.Schedule
	beta  param.Schedule
	gamma param.Schedule
}

// NewCACLAVar returns a new CACLAVar algorithm. The step size alpha
// scales policy updates, beta is the step size of the running variance
// estimate, and gamma is the discount factor.
func NewCACLAVar(critic *shared.Handle[agent.Critic],
	target *shared.Handle[policy.Continuous],
	behaviour *shared.Handle[policy.Policy],
	alpha, beta, gamma param.Schedule) (*CACLAVar, error) {
	if critic == nil || target == nil || behaviour == nil {
		return nil, fmt.Errorf("newCACLAVar: critic, target policy, and " +
			"behaviour policy must be non-nil")
	}
	if alpha == nil || beta == nil || gamma == nil {
		return nil, fmt.Errorf("newCACLAVar: alpha, beta, and gamma must " +
			"be non-nil")
	}

	return &CACLAVar{
		critic:    critic,
		target:    target,
		behaviour: behaviour,
		variance:  1.0,
		alpha:     alpha,
		beta:      beta,
		gamma:     gamma,
	}, nil
}

// HandleTransition updates the critic and, if the action taken was
// better than expected, the target policy
func (c *CACLAVar) HandleTransition(t ts.Transition) {
	critic, releaseCritic := c.critic.BorrowMut()
	defer releaseCritic()
	target, releaseTarget := c.target.BorrowMut()
	defer releaseTarget()

	s := t.From.State()
	v := critic.PredictV(s)

	tdError := t.Reward
	if !t.Terminated() {
		tdError += c.gamma.Value() * critic.PredictV(t.To.State())
	}

	critic.HandleTransition(t)
	c.variance += c.beta.Value() * (tdError*tdError - c.variance)

	if tdError > v {
		mpa := target.MPA(s)
		scaler := math.Ceil(tdError / math.Sqrt(math.Max(c.variance,
			MinVariance)))

		direction := mat.VecDenseCopyOf(t.Action)
		direction.SubVec(direction, mpa)
		direction.ScaleVec(c.alpha.Value()*scaler, direction)

		target.Update(s, t.Action, direction)
	}
}

// HandleTerminal steps alpha and gamma, notifies the critic and both
// policies of the end of the episode, and resets the variance estimate
func (c *CACLAVar) HandleTerminal() {
	c.alpha = c.alpha.Step()
	c.gamma = c.gamma.Step()

	c.critic.With(func(critic agent.Critic) { critic.HandleTerminal() })
	c.variance = 1.0

	c.target.With(func(p policy.Continuous) { p.HandleTerminal() })
	c.behaviour.With(func(p policy.Policy) { p.HandleTerminal() })
}

// Variance returns the running variance estimate
func (c *CACLAVar) Variance() float64 {
	return c.variance
}

// PredictV predicts the value of state s
func (c *CACLAVar) PredictV(s mat.Vector) float64 {
	critic, release := c.critic.BorrowMut()
	defer release()
	return critic.PredictV(s)
}

// PredictQs predicts the value of each action in state s, if the critic
// predicts action values
func (c *CACLAVar) PredictQs(s mat.Vector) (*mat.VecDense, error) {
	critic, release := c.critic.BorrowMut()
	defer release()

	q, ok := critic.(agent.ActionValuePredictor)
	if !ok {
		return nil, agent.NewUnsupportedError("predictQs", critic)
	}
	return q.PredictQs(s)
}

// PredictQsa predicts the value of action a in state s, if the critic
// predicts action values
func (c *CACLAVar) PredictQsa(s, a mat.Vector) (float64, error) {
	critic, release := c.critic.BorrowMut()
	defer release()

	q, ok := critic.(agent.ActionValuePredictor)
	if !ok {
		return 0, agent.NewUnsupportedError("predictQsa", critic)
	}
	return q.PredictQsa(s, a)
}

// SampleTarget samples an action from the target policy
func (c *CACLAVar) SampleTarget(s mat.Vector) mat.Vector {
	p, release := c.target.BorrowMut()
	defer release()
	return p.Sample(s)
}

// SampleBehaviour samples an action from the behaviour policy
func (c *CACLAVar) SampleBehaviour(s mat.Vector) mat.Vector {
	p, release := c.behaviour.BorrowMut()
	defer release()
	return p.Sample(s)
}

func (c *CACLAVar) String() string {
	return fmt.Sprintf("CACLAVar(α=%v, β=%v, γ=%v, variance=%v)", c.alpha,
		c.beta, c.gamma, c.variance)
}
