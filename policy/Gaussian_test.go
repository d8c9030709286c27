package policy

import (
	"testing"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/samuelfneumann/goactorcritic/initwfn"
	"github.com/samuelfneumann/goactorcritic/utils/matutils"
)

func TestGaussianUpdate(t *testing.T) {
	g, err := NewGaussian(2, 1, 0.5, nil, 1)
	if err != nil {
		t.Fatal(err)
	}

	state := mat.NewVecDense(2, []float64{1, 2})
	if mpa := g.MPA(state); mpa.AtVec(0) != 0 {
		t.Errorf("unexpected initial mean \n\twant(0) \n\thave(%v)",
			mpa.AtVec(0))
	}

	g.Update(state, nil, mat.NewVecDense(1, []float64{0.1}))

	wantWeights := mat.NewVecDense(2, []float64{0.1, 0.2})
	if !floats.EqualApprox(g.Weights().RawVector().Data,
		wantWeights.RawVector().Data, 1e-12) {
		t.Errorf("unexpected weights \n\twant(%v) \n\thave(%v)",
			matutils.Format(wantWeights.T()), matutils.Format(g.Weights().T()))
	}

	// Mean moves by direction scaled by the squared norm of the state
	if mpa := g.MPA(state).AtVec(0); !scalar.EqualWithinAbs(mpa, 0.5, 1e-12) {
		t.Errorf("unexpected mean \n\twant(0.5) \n\thave(%v)", mpa)
	}
}

func TestGaussianWeightsView(t *testing.T) {
	g, err := NewGaussian(3, 2, 1, initwfn.NewZeroes(), 1)
	if err != nil {
		t.Fatal(err)
	}

	g.Weights().SetVec(4, 2)

	state := mat.NewVecDense(3, []float64{0, 1, 0})
	want := mat.NewVecDense(2, []float64{0, 2})
	if have := g.MPA(state); !mat.Equal(have, want) {
		t.Errorf("weights view not shared with policy \n\twant(%v) "+
			"\n\thave(%v)", matutils.Format(want.T()), matutils.Format(have.T()))
	}
}

func TestGaussianGradLog(t *testing.T) {
	g, _ := NewGaussian(2, 1, 0.5, initwfn.NewConstant(1), 1)

	state := mat.NewVecDense(2, []float64{1, -1})
	action := mat.NewVecDense(1, []float64{0.5})

	// mean = 0, so ∇ log π = (0.5 / 0.25) * s
	want := []float64{2, -2}
	have := g.GradLog(state, action).RawVector().Data
	if !floats.EqualApprox(have, want, 1e-12) {
		t.Errorf("unexpected gradient \n\twant(%v) \n\thave(%v)", want, have)
	}
}

func TestGaussianProbability(t *testing.T) {
	g, _ := NewGaussian(1, 1, 0.5, initwfn.NewConstant(1), 1)

	state := mat.NewVecDense(1, []float64{2})
	normal := distuv.Normal{Mu: 2, Sigma: 0.5}

	for _, a := range []float64{2, 1.5, 3} {
		p, err := g.Probability(state, mat.NewVecDense(1, []float64{a}))
		if err != nil {
			t.Fatal(err)
		}
		if !scalar.EqualWithinAbs(p, normal.Prob(a), 1e-9) {
			t.Errorf("unexpected density at %v \n\twant(%v) \n\thave(%v)", a,
				normal.Prob(a), p)
		}
	}

	if _, err := g.Probability(state, mat.NewVecDense(2, nil)); err == nil {
		t.Errorf("expected error for action of wrong dimension")
	}
}

func TestGaussianSample(t *testing.T) {
	g, _ := NewGaussian(1, 1, 0.1, initwfn.NewConstant(3), 1)
	state := mat.NewVecDense(1, []float64{1})

	const samples = 5000
	var sum float64
	for i := 0; i < samples; i++ {
		sum += g.Sample(state).AtVec(0)
	}
	if mean := sum / samples; !scalar.EqualWithinAbs(mean, 3, 0.01) {
		t.Errorf("unexpected sample mean \n\twant(3) \n\thave(%v)", mean)
	}
}

func TestNewGaussianErrors(t *testing.T) {
	if _, err := NewGaussian(0, 1, 1, nil, 1); err == nil {
		t.Errorf("expected error for zero features")
	}
	if _, err := NewGaussian(1, 1, 0, nil, 1); err == nil {
		t.Errorf("expected error for zero standard deviation")
	}
}
