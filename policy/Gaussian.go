package policy

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmv"

	"github.com/samuelfneumann/goactorcritic/initwfn"
	"github.com/samuelfneumann/goactorcritic/utils/matutils"
)

// Gaussian implements a multi-dimensional linear Gaussian policy with
// a fixed standard deviation. The mean of the policy in state s is
// W s, where W has one row per action dimension and one column per
// state feature.
type Gaussian struct {
	meanWeights *mat.Dense
	weights     *mat.VecDense // view of meanWeights
	covariance  *mat.DiagDense
	std         float64

	actionDims int
	features   int
	source     rand.Source
}

// NewGaussian returns a new Gaussian policy over actionDims dimensional
// actions in states with the given number of features. If init is nil,
// weights are initialized to zero.
func NewGaussian(features, actionDims int, std float64,
	init *initwfn.InitWFn, seed uint64) (*Gaussian, error) {
	if features <= 0 || actionDims <= 0 {
		return nil, fmt.Errorf("newGaussian: features and action dimensions "+
			"must be positive but got %v and %v", features, actionDims)
	}
	if std <= 0 {
		return nil, fmt.Errorf("newGaussian: standard deviation must be "+
			"positive but got %v", std)
	}

	data := make([]float64, actionDims*features)
	meanWeights := mat.NewDense(actionDims, features, data)
	if init != nil {
		init.Initialize(meanWeights)
	}

	variance := make([]float64, actionDims)
	for i := range variance {
		variance[i] = std * std
	}

	return &Gaussian{
		meanWeights: meanWeights,
		weights:     mat.NewVecDense(len(data), data),
		covariance:  mat.NewDiagDense(actionDims, variance),
		std:         std,
		actionDims:  actionDims,
		features:    features,
		source:      rand.NewSource(seed),
	}, nil
}

// MPA returns the most probable action in state s, the mean of the
// policy
func (g *Gaussian) MPA(s mat.Vector) *mat.VecDense {
	checkState(s, g.features)

	mean := mat.NewVecDense(g.actionDims, nil)
	mean.MulVec(g.meanWeights, s)
	return mean
}

// dist returns the action distribution in state s
func (g *Gaussian) dist(s mat.Vector) *distmv.Normal {
	mean := g.MPA(s)

	dist, ok := distmv.NewNormal(mean.RawVector().Data, g.covariance,
		g.source)
	if !ok {
		panic(fmt.Sprintf("dist: *Normal has non-positive-definite "+
			"covariance %v", matutils.Format(g.covariance)))
	}
	return dist
}

// Sample samples an action in state s
func (g *Gaussian) Sample(s mat.Vector) mat.Vector {
	return mat.NewVecDense(g.actionDims, g.dist(s).Rand(nil))
}

// Probability returns the density of action a in state s
func (g *Gaussian) Probability(s, a mat.Vector) (float64, error) {
	if a.Len() != g.actionDims {
		return 0, fmt.Errorf("probability: action has dimension %v, "+
			"expected %v", a.Len(), g.actionDims)
	}
	return g.dist(s).Prob(mat.VecDenseCopyOf(a).RawVector().Data), nil
}

// GradLog returns the gradient of log π(a|s) with respect to the mean
// weights, (a - μ(s)) sᵀ / σ², flattened in the same layout as Weights
func (g *Gaussian) GradLog(s, a mat.Vector) *mat.VecDense {
	diff := mat.VecDenseCopyOf(a)
	diff.SubVec(diff, g.MPA(s))
	diff.ScaleVec(1/(g.std*g.std), diff)

	return matutils.Outer(diff, s)
}

// Update adds direction sᵀ to the mean weights, moving the mean
// action in state s by direction scaled by the squared norm of s
func (g *Gaussian) Update(s, _, direction mat.Vector) {
	checkState(s, g.features)
	if direction.Len() != g.actionDims {
		panic(fmt.Sprintf("update: direction has dimension %v, expected %v",
			direction.Len(), g.actionDims))
	}

	g.weights.AddVec(g.weights, matutils.Outer(direction, s))
}

// Weights returns the mean weights flattened in row-major order. The
// returned vector is a view of the weights of the policy.
func (g *Gaussian) Weights() *mat.VecDense {
	return g.weights
}

// HandleTerminal is a no-op
func (g *Gaussian) HandleTerminal() {}

// StdDev returns the standard deviation of each action dimension
func (g *Gaussian) StdDev() float64 {
	return g.std
}

func (g *Gaussian) String() string {
	return fmt.Sprintf("Gaussian(actions: %v, features: %v, σ: %v)",
		g.actionDims, g.features, g.std)
}
