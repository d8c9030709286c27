package policy

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/samuelfneumann/goactorcritic/initwfn"
	"github.com/samuelfneumann/goactorcritic/utils/matutils"
)

// Softmax implements a linear Gibbs policy over a finite number of
// actions, π(b|s) ∝ exp(w_b · s), where w_b is the row of weights
// for action b.
type Softmax struct {
	actionWeights *mat.Dense
	weights       *mat.VecDense // view of actionWeights

	numActions int
	features   int
	source     rand.Source
}

// NewSoftmax returns a new Softmax policy over numActions actions in
// states with the given number of features. If init is nil, weights
// are initialized to zero.
func NewSoftmax(features, numActions int, init *initwfn.InitWFn,
	seed uint64) (*Softmax, error) {
	if features <= 0 || numActions <= 0 {
		return nil, fmt.Errorf("newSoftmax: features and actions must be "+
			"positive but got %v and %v", features, numActions)
	}

	data := make([]float64, numActions*features)
	actionWeights := mat.NewDense(numActions, features, data)
	if init != nil {
		init.Initialize(actionWeights)
	}

	return &Softmax{
		actionWeights: actionWeights,
		weights:       mat.NewVecDense(len(data), data),
		numActions:    numActions,
		features:      features,
		source:        rand.NewSource(seed),
	}, nil
}

// probabilities returns the action probabilities in state s
func (p *Softmax) probabilities(s mat.Vector) *mat.VecDense {
	checkState(s, p.features)

	logits := mat.NewVecDense(p.numActions, nil)
	logits.MulVec(p.actionWeights, s)

	data := logits.RawVector().Data
	normalizer := floats.LogSumExp(data)
	for i := range data {
		data[i] = math.Exp(data[i] - normalizer)
	}
	return logits
}

// Probabilities returns the probability of selecting each action in
// state s
func (p *Softmax) Probabilities(s mat.Vector) (*mat.VecDense, error) {
	return p.probabilities(s), nil
}

// Probability returns the probability of selecting action a in
// state s
func (p *Softmax) Probability(s, a mat.Vector) (float64, error) {
	action, err := actionIndex(a, p.numActions)
	if err != nil {
		return 0, fmt.Errorf("probability: %v", err)
	}
	return p.probabilities(s).AtVec(action), nil
}

// Sample samples an action in state s
func (p *Softmax) Sample(s mat.Vector) mat.Vector {
	probs := p.probabilities(s).RawVector().Data
	dist := distuv.NewCategorical(probs, p.source)

	return mat.NewVecDense(1, []float64{dist.Rand()})
}

// GradLog returns the gradient of log π(a|s), (e_a - π(s)) ⊗ s,
// flattened in the same layout as Weights
func (p *Softmax) GradLog(s, a mat.Vector) *mat.VecDense {
	action, err := actionIndex(a, p.numActions)
	if err != nil {
		panic(fmt.Sprintf("gradLog: %v", err))
	}

	diff := p.probabilities(s)
	diff.ScaleVec(-1, diff)
	diff.SetVec(action, diff.AtVec(action)+1)

	return matutils.Outer(diff, s)
}

// Update moves the weights along the gradient of log π(a|s) scaled by
// the first element of direction
func (p *Softmax) Update(s, a, direction mat.Vector) {
	if direction.Len() != 1 {
		panic(fmt.Sprintf("update: direction should have length 1 but "+
			"got length %v", direction.Len()))
	}
	p.weights.AddScaledVec(p.weights, direction.AtVec(0), p.GradLog(s, a))
}

// Weights returns the action weights flattened in row-major order. The
// returned vector is a view of the weights of the policy.
func (p *Softmax) Weights() *mat.VecDense {
	return p.weights
}

// NumActions returns the number of actions
func (p *Softmax) NumActions() int {
	return p.numActions
}

// HandleTerminal is a no-op
func (p *Softmax) HandleTerminal() {}

func (p *Softmax) String() string {
	return fmt.Sprintf("Softmax(actions: %v, features: %v)", p.numActions,
		p.features)
}
