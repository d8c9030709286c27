package critic

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/samuelfneumann/goactorcritic/param"
	"github.com/samuelfneumann/goactorcritic/policy"
	ts "github.com/samuelfneumann/goactorcritic/timestep"
)

func newSoftmaxCritic(t *testing.T, beta float64) *Compatible {
	p, err := policy.NewSoftmax(1, 2, nil, 1)
	if err != nil {
		t.Fatal(err)
	}

	critic, err := NewCompatible(p, 1, param.Fixed(beta), param.Fixed(1),
		1e-6)
	if err != nil {
		t.Fatal(err)
	}
	return critic
}

func TestCompatibleHandleTransition(t *testing.T) {
	critic := newSoftmaxCritic(t, 0.1)

	if critic.Weights().Len() != 2 {
		t.Fatalf("critic weights should match policy weights \n\twant(2) "+
			"\n\thave(%v)", critic.Weights().Len())
	}

	// ∇log π(0|s) = [0.5, -0.5] under a uniform softmax
	transition := ts.NewTransition(ts.Full(vec(1)), vec(0), 1,
		ts.Terminal(vec(1)))
	critic.HandleTransition(transition)

	if v := critic.PredictV(vec(1)); !scalar.EqualWithinAbs(v, 0.1, 1e-12) {
		t.Errorf("unexpected value \n\twant(0.1) \n\thave(%v)", v)
	}

	want := []float64{0.05, -0.05}
	have := critic.Weights().RawVector().Data
	if !floats.EqualApprox(have, want, 1e-12) {
		t.Errorf("unexpected advantage weights \n\twant(%v) \n\thave(%v)",
			want, have)
	}

	qs, err := critic.PredictQs(vec(1))
	if err != nil {
		t.Fatal(err)
	}
	if qs.AtVec(0) <= qs.AtVec(1) {
		t.Errorf("rewarded action should have higher value: %v",
			qs.RawVector().Data)
	}
}

func TestCompatibleHandleSequence(t *testing.T) {
	critic := newSoftmaxCritic(t, 0.1)

	// A single-state bandit where action 0 pays 1 and action 1 pays 0
	var transitions []ts.Transition
	for i := 0; i < 10; i++ {
		action := float64(i % 2)
		transitions = append(transitions, ts.NewTransition(ts.Full(vec(1)),
			vec(action), 1-action, ts.Terminal(vec(1))))
	}
	critic.HandleSequence(transitions)

	if v := critic.PredictV(vec(1)); !scalar.EqualWithinAbs(v, 0.5, 1e-3) {
		t.Errorf("unexpected value \n\twant(0.5) \n\thave(%v)", v)
	}
	for a, want := range []float64{1, 0} {
		q, err := critic.PredictQsa(vec(1), vec(float64(a)))
		if err != nil {
			t.Fatal(err)
		}
		if !scalar.EqualWithinAbs(q, want, 1e-3) {
			t.Errorf("unexpected value of action %v \n\twant(%v) \n\thave(%v)",
				a, want, q)
		}
	}

	want := []float64{0.5, -0.5}
	have := critic.Weights().RawVector().Data
	if !floats.EqualApprox(have, want, 1e-3) {
		t.Errorf("unexpected advantage weights \n\twant(%v) \n\thave(%v)",
			want, have)
	}

	// Empty sequences leave the critic unchanged
	critic.HandleSequence(nil)
	if !floats.EqualApprox(critic.Weights().RawVector().Data, want, 1e-3) {
		t.Errorf("empty sequence changed weights")
	}
}

func TestCompatibleContinuous(t *testing.T) {
	p, _ := policy.NewGaussian(2, 1, 1, nil, 1)
	critic, err := NewCompatible(p, 2, param.Fixed(0.1), param.Fixed(0.9), 0)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := critic.PredictQs(vec(1, 1)); !errors.Is(err,
		policy.ErrUnsupported) {
		t.Errorf("expected unsupported error but got %v", err)
	}

	if _, err := NewCompatible(nil, 2, param.Fixed(0.1), param.Fixed(0.9),
		0); err == nil {
		t.Errorf("expected error for nil policy")
	}
}
