package critic

import (
	"fmt"
	"math"
	"os"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/goactorcritic/agent"
	"github.com/samuelfneumann/goactorcritic/param"
	"github.com/samuelfneumann/goactorcritic/policy"
	ts "github.com/samuelfneumann/goactorcritic/timestep"
	"github.com/samuelfneumann/goactorcritic/utils/matutils"
)

// Compatible implements a critic with features compatible with a
// differentiable policy. The critic learns a linear state-value
// function v(s) = vᵀs and a linear advantage function
// A(s, a) = wᵀ∇log π(a|s). The advantage weights w then estimate the
// natural gradient of the policy.
//
// Online, the critic follows the TD error δ:
//
//	v ← v + β δ s
//	w ← w + β (δ - wᵀψ) ψ,	ψ = ∇log π(a|s)
//
// On a sequence of transitions, both weight vectors are fit jointly by
// regularized LSTD.
type Compatible struct {
	policy    policy.Parameterised
	value     *mat.VecDense
	advantage *mat.VecDense

	learningRate   param.Schedule
	discount       param.Schedule
	regularization float64
}

// NewCompatible returns a new Compatible critic for policy p over
// states with the given number of features. The regularization is
// added to the diagonal of the LSTD system solved in HandleSequence.
func NewCompatible(p policy.Parameterised, features int, learningRate,
	discount param.Schedule, regularization float64) (*Compatible, error) {
	if p == nil {
		return nil, fmt.Errorf("newCompatible: policy must be non-nil")
	}
	if features <= 0 {
		return nil, fmt.Errorf("newCompatible: features must be positive "+
			"but got %v", features)
	}
	if learningRate == nil || discount == nil {
		return nil, fmt.Errorf("newCompatible: learning rate and discount " +
			"must be non-nil")
	}
	if regularization < 0 {
		return nil, fmt.Errorf("newCompatible: regularization must be "+
			"non-negative but got %v", regularization)
	}

	return &Compatible{
		policy:         p,
		value:          mat.NewVecDense(features, nil),
		advantage:      mat.NewVecDense(p.Weights().Len(), nil),
		learningRate:   learningRate,
		discount:       discount,
		regularization: regularization,
	}, nil
}

// PredictV predicts the value of state s
func (c *Compatible) PredictV(s mat.Vector) float64 {
	return mat.Dot(c.value, s)
}

// Advantage predicts the advantage of action a in state s
func (c *Compatible) Advantage(s, a mat.Vector) float64 {
	return mat.Dot(c.advantage, c.policy.GradLog(s, a))
}

// PredictQsa predicts the value of action a in state s
func (c *Compatible) PredictQsa(s, a mat.Vector) (float64, error) {
	return c.PredictV(s) + c.Advantage(s, a), nil
}

// PredictQs predicts the value of each action in state s. PredictQs is
// only supported when the policy has a finite number of actions.
func (c *Compatible) PredictQs(s mat.Vector) (*mat.VecDense, error) {
	finite, ok := c.policy.(policy.Finite)
	if !ok {
		return nil, agent.NewUnsupportedError("predictQs", c)
	}

	values := mat.NewVecDense(finite.NumActions(), nil)
	for i := 0; i < values.Len(); i++ {
		action := mat.NewVecDense(1, []float64{float64(i)})
		values.SetVec(i, c.PredictV(s)+c.Advantage(s, action))
	}
	return values, nil
}

// tdError returns the TD error of a transition
func (c *Compatible) tdError(t ts.Transition) float64 {
	target := t.Reward
	if !t.Terminated() {
		target += c.discount.Value() * c.PredictV(t.To.State())
	}
	return target - c.PredictV(t.From.State())
}

// HandleTransition updates the critic with a single transition
func (c *Compatible) HandleTransition(t ts.Transition) {
	state := t.From.State()
	gradLog := c.policy.GradLog(state, t.Action)

	tdError := c.tdError(t)
	advantageError := tdError - mat.Dot(c.advantage, gradLog)

	beta := c.learningRate.Value()
	c.value.AddScaledVec(c.value, beta*tdError, state)
	c.advantage.AddScaledVec(c.advantage, beta*advantageError, gradLog)
}

// HandleSequence fits the critic to a sequence of transitions using
// LSTD with features x = [s; ∇log π(a|s)]. Successor features are
// [s'; 0], or zero for terminal transitions. If the system cannot be
// solved, the transitions are handled one at a time instead.
func (c *Compatible) HandleSequence(transitions []ts.Transition) {
	if len(transitions) == 0 {
		return
	}

	features := c.value.Len()
	dims := features + c.advantage.Len()
	gamma := c.discount.Value()

	a := mat.NewDense(dims, dims, nil)
	b := mat.NewVecDense(dims, nil)
	diff := mat.NewVecDense(dims, nil)
	zeroes := mat.NewVecDense(c.advantage.Len(), nil)

	for _, t := range transitions {
		state := t.From.State()
		x := matutils.Concat(state, c.policy.GradLog(state, t.Action))

		diff.CopyVec(x)
		if !t.Terminated() {
			next := matutils.Concat(t.To.State(), zeroes)
			diff.AddScaledVec(diff, -gamma, next)
		}

		a.RankOne(a, 1.0, x, diff)
		b.AddScaledVec(b, t.Reward, x)
	}

	for i := 0; i < dims; i++ {
		a.Set(i, i, a.At(i, i)+c.regularization)
	}

	var theta mat.VecDense
	if err := theta.SolveVec(a, b); err != nil {
		if cond, ok := err.(mat.Condition); !ok || math.IsInf(float64(cond), 1) {
			fmt.Fprintf(os.Stderr, "warning: handleSequence: could not "+
				"solve LSTD system, falling back to online updates: %v\n", err)
			for _, t := range transitions {
				c.HandleTransition(t)
			}
			return
		}
	}

	c.value.CopyVec(theta.SliceVec(0, features))
	c.advantage.CopyVec(theta.SliceVec(features, dims))
}

// HandleTerminal steps the learning rate and discount
func (c *Compatible) HandleTerminal() {
	c.learningRate = c.learningRate.Step()
	c.discount = c.discount.Step()
}

// Weights returns a view of the advantage weights, which have the
// same layout as the weights of the policy
func (c *Compatible) Weights() *mat.VecDense {
	return c.advantage
}

// ValueWeights returns a view of the state-value weights
func (c *Compatible) ValueWeights() *mat.VecDense {
	return c.value
}

func (c *Compatible) String() string {
	return fmt.Sprintf("Compatible(policy: %v, β=%v, γ=%v)", c.policy,
		c.learningRate, c.discount)
}
