package policy

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmv"

	"github.com/samuelfneumann/goactorcritic/agent"
)

// Perturbed adds noise to the actions of a base policy. It is
// generally used as an exploratory behaviour policy around a target
// policy.
//
// The distribution of a Perturbed policy generally has no closed form,
// and so Probability returns an *UnsupportedError. HandleTerminal does
// not notify the base policy, which is owned elsewhere.
type Perturbed struct {
	base  Policy
	noise distmv.Rander
}

// NewPerturbed returns a new Perturbed policy which adds noise drawn
// from noise to actions sampled from base. The noise distribution
// should hold its own seeded source.
func NewPerturbed(base Policy, noise distmv.Rander) *Perturbed {
	return &Perturbed{base: base, noise: noise}
}

// Sample samples an action from the base policy and perturbs it
func (p *Perturbed) Sample(s mat.Vector) mat.Vector {
	action := mat.VecDenseCopyOf(p.base.Sample(s))

	perturbation := p.noise.Rand(nil)
	if len(perturbation) != action.Len() {
		panic(fmt.Sprintf("sample: noise has dimension %v but actions "+
			"have dimension %v", len(perturbation), action.Len()))
	}

	action.AddVec(action, mat.NewVecDense(len(perturbation), perturbation))
	return action
}

// Probability is not supported
func (p *Perturbed) Probability(_, _ mat.Vector) (float64, error) {
	return 0, agent.NewUnsupportedError("probability", p)
}

// HandleTerminal is a no-op
func (p *Perturbed) HandleTerminal() {}

// FinitePerturbed is a Perturbed policy around a Finite base policy
type FinitePerturbed struct {
	*Perturbed
	base Finite
}

// NewFinitePerturbed returns a new FinitePerturbed policy
func NewFinitePerturbed(base Finite, noise distmv.Rander) *FinitePerturbed {
	return &FinitePerturbed{Perturbed: NewPerturbed(base, noise), base: base}
}

// NumActions returns the number of actions of the base policy
func (f *FinitePerturbed) NumActions() int {
	return f.base.NumActions()
}

// Probabilities is not supported
func (f *FinitePerturbed) Probabilities(_ mat.Vector) (*mat.VecDense, error) {
	return nil, agent.NewUnsupportedError("probabilities", f)
}
