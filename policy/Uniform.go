package policy

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/samuelfneumann/goactorcritic/utils/matutils"
)

// Uniform selects each of a finite number of actions with equal
// probability, regardless of state
type Uniform struct {
	numActions int
	dist       distuv.Categorical
}

// NewUniform returns a new Uniform policy over numActions actions
func NewUniform(numActions int, seed uint64) (*Uniform, error) {
	if numActions <= 0 {
		return nil, fmt.Errorf("newUniform: number of actions must be "+
			"positive but got %v", numActions)
	}

	weights := matutils.VecOnes(numActions).RawVector().Data
	source := rand.NewSource(seed)
	dist := distuv.NewCategorical(weights, source)

	return &Uniform{numActions: numActions, dist: dist}, nil
}

// Sample samples an action
func (u *Uniform) Sample(_ mat.Vector) mat.Vector {
	return mat.NewVecDense(1, []float64{u.dist.Rand()})
}

// Probability returns the probability of selecting action a, which is
// the same for every legal action
func (u *Uniform) Probability(_, a mat.Vector) (float64, error) {
	if _, err := actionIndex(a, u.numActions); err != nil {
		return 0, fmt.Errorf("probability: %v", err)
	}
	return 1.0 / float64(u.numActions), nil
}

// Probabilities returns the probability of selecting each action
func (u *Uniform) Probabilities(_ mat.Vector) (*mat.VecDense, error) {
	probs := matutils.VecOnes(u.numActions)
	probs.ScaleVec(1.0/float64(u.numActions), probs)
	return probs, nil
}

// NumActions returns the number of actions
func (u *Uniform) NumActions() int {
	return u.numActions
}

// HandleTerminal is a no-op
func (u *Uniform) HandleTerminal() {}

func (u *Uniform) String() string {
	return fmt.Sprintf("Uniform(%v)", u.numActions)
}
