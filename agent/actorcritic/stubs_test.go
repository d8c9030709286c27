package actorcritic

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/goactorcritic/environment"
	ts "github.com/samuelfneumann/goactorcritic/timestep"
)

func vec(values ...float64) *mat.VecDense {
	return mat.NewVecDense(len(values), values)
}

// stubCritic predicts fixed values for states keyed on their first
// feature and counts the calls made to it
type stubCritic struct {
	values      map[float64]float64
	weights     *mat.VecDense
	transitions int
	sequences   int
	terminals   int
}

func (c *stubCritic) PredictV(s mat.Vector) float64 {
	return c.values[s.AtVec(0)]
}

func (c *stubCritic) HandleTransition(_ ts.Transition) { c.transitions++ }

func (c *stubCritic) HandleTerminal() { c.terminals++ }

func (c *stubCritic) Weights() *mat.VecDense { return c.weights }

// batchCritic is a stubCritic which can learn from sequences
type batchCritic struct {
	*stubCritic
}

func (c batchCritic) HandleSequence(_ []ts.Transition) { c.sequences++ }

// stubPolicy is a continuous policy with a fixed most probable action
// which records the updates made to it
type stubPolicy struct {
	mpa        *mat.VecDense
	weights    *mat.VecDense
	updates    int
	directions []*mat.VecDense
	terminals  int
}

func (p *stubPolicy) Sample(_ mat.Vector) mat.Vector {
	return mat.VecDenseCopyOf(p.mpa)
}

func (p *stubPolicy) Probability(_, _ mat.Vector) (float64, error) {
	return 0, nil
}

func (p *stubPolicy) HandleTerminal() { p.terminals++ }

func (p *stubPolicy) GradLog(_, _ mat.Vector) *mat.VecDense {
	return mat.NewVecDense(p.weights.Len(), nil)
}

func (p *stubPolicy) Weights() *mat.VecDense { return p.weights }

func (p *stubPolicy) Update(_, _, direction mat.Vector) {
	p.updates++
	p.directions = append(p.directions, mat.VecDenseCopyOf(direction))
}

func (p *stubPolicy) MPA(_ mat.Vector) *mat.VecDense {
	return mat.VecDenseCopyOf(p.mpa)
}

// specEnv is an environment which only describes its specifications
type specEnv struct {
	observation environment.Spec
	action      environment.Spec
}

func newSpecEnv(features int, action environment.Spec) specEnv {
	zeroes := mat.NewVecDense(features, nil)
	obs := environment.NewSpec(zeroes, environment.Observation, zeroes,
		zeroes, environment.Continuous)
	return specEnv{obs, action}
}

func (e specEnv) Reset() (ts.Observation, error) {
	return ts.Observation{}, fmt.Errorf("reset: not implemented")
}

func (e specEnv) Step(_ mat.Vector) (ts.Transition, error) {
	return ts.Transition{}, fmt.Errorf("step: not implemented")
}

func (e specEnv) ObservationSpec() environment.Spec { return e.observation }

func (e specEnv) ActionSpec() environment.Spec { return e.action }
