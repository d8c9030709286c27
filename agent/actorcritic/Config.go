package actorcritic

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmv"

	"github.com/samuelfneumann/goactorcritic/agent"
	"github.com/samuelfneumann/goactorcritic/critic"
	"github.com/samuelfneumann/goactorcritic/environment"
	"github.com/samuelfneumann/goactorcritic/initwfn"
	"github.com/samuelfneumann/goactorcritic/param"
	"github.com/samuelfneumann/goactorcritic/policy"
	"github.com/samuelfneumann/goactorcritic/shared"
)

func init() {
	// Register Config types so that they can be typed using
	// agent.TypedConfig to help with serialization/deserialization.
	agent.Register(agent.CACLAVarLinear, CACLAVarConfig{})
	agent.Register(agent.NACLinear, NACConfig{})
}

// CACLAVarConfig represents a configuration of a linear CACLAVar agent
// with a linear Gaussian target policy and a TD(λ) critic. The
// behaviour policy perturbs the actions of the target policy with
// zero-mean Gaussian noise.
type CACLAVarConfig struct {
	Alpha param.Config `yaml:"alpha" json:"alpha"`
	Beta  param.Config `yaml:"beta" json:"beta"`
	Gamma param.Config `yaml:"gamma" json:"gamma"`

	CriticLearningRate param.Config `yaml:"critic_learning_rate" json:"critic_learning_rate"`
	TraceDecay         float64      `yaml:"trace_decay" json:"trace_decay"`

	// StdDev is the standard deviation of the target policy and
	// Exploration the standard deviation of the behaviour noise. With
	// no exploration the behaviour policy is the target policy.
	StdDev      float64 `yaml:"std_dev" json:"std_dev"`
	Exploration float64 `yaml:"exploration" json:"exploration"`

	Init *initwfn.InitWFn `yaml:"init,omitempty" json:"init,omitempty"`
}

// CreateAgent creates the agent from the Config
func (c CACLAVarConfig) CreateAgent(env environment.Environment,
	seed uint64) (agent.Agent, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("createAgent: %v", err)
	}

	actionSpec := env.ActionSpec()
	if actionSpec.Cardinality != environment.Continuous {
		return nil, fmt.Errorf("createAgent: actions must be continuous")
	}
	features := env.ObservationSpec().Shape.Len()
	actionDims := actionSpec.Shape.Len()

	schedules, err := createSchedules(c.Alpha, c.Beta, c.Gamma,
		c.CriticLearningRate)
	if err != nil {
		return nil, fmt.Errorf("createAgent: %v", err)
	}
	alpha, beta, gamma, criticLR := schedules[0], schedules[1],
		schedules[2], schedules[3]

	target, err := policy.NewGaussian(features, actionDims, c.StdDev, c.Init,
		seed)
	if err != nil {
		return nil, fmt.Errorf("createAgent: could not create policy: %v", err)
	}
	targetHandle := shared.New[policy.Continuous](target)

	behaviour := policy.Lend(targetHandle)
	if c.Exploration > 0 {
		noise, err := newNoise(actionDims, c.Exploration, seed+1)
		if err != nil {
			return nil, fmt.Errorf("createAgent: %v", err)
		}
		behaviour = policy.NewPerturbed(behaviour, noise)
	}

	td, err := critic.NewTD(features, criticLR, gamma, c.TraceDecay, nil)
	if err != nil {
		return nil, fmt.Errorf("createAgent: could not create critic: %v", err)
	}

	return NewCACLAVar(shared.New[agent.Critic](td), targetHandle,
		shared.New(behaviour), alpha, beta, gamma)
}

// Validate ensures that the Config is valid
func (c CACLAVarConfig) Validate() error {
	for _, schedule := range []param.Config{c.Alpha, c.Beta, c.Gamma,
		c.CriticLearningRate} {
		if err := schedule.Validate(); err != nil {
			return fmt.Errorf("validate: %v", err)
		}
	}

	if beta := c.Beta.Value; beta <= 0 || beta > 1 {
		return fmt.Errorf("validate: beta must be in (0, 1] but got %v", beta)
	}
	if c.TraceDecay < 0 || c.TraceDecay > 1 {
		return fmt.Errorf("validate: trace decay must be in [0, 1] but got "+
			"%v", c.TraceDecay)
	}
	if c.StdDev <= 0 {
		return fmt.Errorf("validate: standard deviation must be positive "+
			"but got %v", c.StdDev)
	}
	if c.Exploration < 0 {
		return fmt.Errorf("validate: exploration must be non-negative but "+
			"got %v", c.Exploration)
	}
	return nil
}

// Type returns the type of the agent constructed by the Config
func (c CACLAVarConfig) Type() agent.Type {
	return agent.CACLAVarLinear
}

// NACConfig represents a configuration of a linear NAC agent with a
// critic compatible with its policy. The policy is a Softmax policy in
// environments with discrete actions and a Gaussian policy otherwise.
type NACConfig struct {
	Alpha param.Config `yaml:"alpha" json:"alpha"`
	Gamma param.Config `yaml:"gamma" json:"gamma"`

	CriticLearningRate param.Config `yaml:"critic_learning_rate" json:"critic_learning_rate"`
	Regularization     float64      `yaml:"regularization" json:"regularization"`

	// StdDev is the standard deviation of the Gaussian policy used
	// with continuous actions
	StdDev float64 `yaml:"std_dev" json:"std_dev"`

	Init *initwfn.InitWFn `yaml:"init,omitempty" json:"init,omitempty"`
}

// CreateAgent creates the agent from the Config
func (c NACConfig) CreateAgent(env environment.Environment,
	seed uint64) (agent.Agent, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("createAgent: %v", err)
	}
	features := env.ObservationSpec().Shape.Len()

	schedules, err := createSchedules(c.Alpha, c.Gamma, c.CriticLearningRate)
	if err != nil {
		return nil, fmt.Errorf("createAgent: %v", err)
	}
	alpha, gamma, criticLR := schedules[0], schedules[1], schedules[2]

	var p policy.Parameterised
	actionSpec := env.ActionSpec()
	switch actionSpec.Cardinality {
	case environment.Discrete:
		numActions, err := actionSpec.NumActions()
		if err != nil {
			return nil, fmt.Errorf("createAgent: %v", err)
		}
		p, err = policy.NewSoftmax(features, numActions, c.Init, seed)
		if err != nil {
			return nil, fmt.Errorf("createAgent: could not create policy: %v",
				err)
		}

	case environment.Continuous:
		if c.StdDev <= 0 {
			return nil, fmt.Errorf("createAgent: standard deviation must be "+
				"positive with continuous actions but got %v", c.StdDev)
		}
		p, err = policy.NewGaussian(features, actionSpec.Shape.Len(),
			c.StdDev, c.Init, seed)
		if err != nil {
			return nil, fmt.Errorf("createAgent: could not create policy: %v",
				err)
		}

	default:
		return nil, fmt.Errorf("createAgent: unknown action cardinality %v",
			actionSpec.Cardinality)
	}

	compatible, err := critic.NewCompatible(p, features, criticLR, gamma,
		c.Regularization)
	if err != nil {
		return nil, fmt.Errorf("createAgent: could not create critic: %v", err)
	}

	return NewNAC(compatible, p, alpha)
}

// Validate ensures that the Config is valid
func (c NACConfig) Validate() error {
	for _, schedule := range []param.Config{c.Alpha, c.Gamma,
		c.CriticLearningRate} {
		if err := schedule.Validate(); err != nil {
			return fmt.Errorf("validate: %v", err)
		}
	}

	if c.Regularization < 0 {
		return fmt.Errorf("validate: regularization must be non-negative "+
			"but got %v", c.Regularization)
	}
	if c.StdDev < 0 {
		return fmt.Errorf("validate: standard deviation must be "+
			"non-negative but got %v", c.StdDev)
	}
	return nil
}

// Type returns the type of the agent constructed by the Config
func (c NACConfig) Type() agent.Type {
	return agent.NACLinear
}

// createSchedules creates the schedules described by configs in order
func createSchedules(configs ...param.Config) ([]param.Schedule, error) {
	schedules := make([]param.Schedule, len(configs))
	for i, config := range configs {
		schedule, err := config.Create()
		if err != nil {
			return nil, fmt.Errorf("createSchedules: %v", err)
		}
		schedules[i] = schedule
	}
	return schedules, nil
}

// newNoise returns zero-mean Gaussian noise with standard deviation
// std in each of dims dimensions
func newNoise(dims int, std float64, seed uint64) (*distmv.Normal, error) {
	variance := make([]float64, dims)
	for i := range variance {
		variance[i] = std * std
	}

	noise, ok := distmv.NewNormal(make([]float64, dims),
		mat.NewDiagDense(dims, variance), rand.NewSource(seed))
	if !ok {
		return nil, fmt.Errorf("newNoise: non-positive-definite covariance "+
			"with standard deviation %v", std)
	}
	return noise, nil
}
