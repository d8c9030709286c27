package actorcritic

import (
	"testing"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/goactorcritic/critic"
	"github.com/samuelfneumann/goactorcritic/param"
	"github.com/samuelfneumann/goactorcritic/policy"
	ts "github.com/samuelfneumann/goactorcritic/timestep"
)

func TestNACHandleTransition(t *testing.T) {
	c := &stubCritic{weights: vec(1, -2, 0.5)}
	p := &stubPolicy{mpa: vec(0), weights: vec(1, 1, 1)}

	nac, err := NewNAC(c, p, param.Fixed(0.1))
	if err != nil {
		t.Fatal(err)
	}

	transition := ts.NewTransition(ts.Full(vec(0)), vec(0), 1,
		ts.Full(vec(0)))
	nac.HandleTransition(transition)

	want := []float64{1.1, 0.8, 1.05}
	if have := p.weights.RawVector().Data; !floats.EqualApprox(have, want,
		1e-12) {
		t.Errorf("unexpected policy weights \n\twant(%v) \n\thave(%v)", want,
			have)
	}
	if c.transitions != 1 {
		t.Errorf("critic not updated \n\twant(1) \n\thave(%v)", c.transitions)
	}
}

func TestNACHandleSequence(t *testing.T) {
	transitions := []ts.Transition{
		ts.NewTransition(ts.Full(vec(0)), vec(0), 1, ts.Full(vec(0))),
		ts.NewTransition(ts.Full(vec(0)), vec(0), 1, ts.Terminal(vec(0))),
	}

	// A critic which learns from sequences is given the whole sequence
	c := &stubCritic{weights: vec(1, 2)}
	p := &stubPolicy{mpa: vec(0), weights: vec(0, 0)}
	nac, err := NewNAC(batchCritic{c}, p, param.Fixed(0.5))
	if err != nil {
		t.Fatal(err)
	}

	nac.HandleSequence(transitions)
	if c.sequences != 1 || c.transitions != 0 {
		t.Errorf("critic should handle a single sequence, handled %v "+
			"sequences and %v transitions", c.sequences, c.transitions)
	}
	want := []float64{0.5, 1}
	if have := p.weights.RawVector().Data; !floats.EqualApprox(have, want,
		1e-12) {
		t.Errorf("policy weights should be blended once \n\twant(%v) "+
			"\n\thave(%v)", want, have)
	}

	// Other critics are given each transition in turn
	c = &stubCritic{weights: vec(1, 2)}
	p = &stubPolicy{mpa: vec(0), weights: vec(0, 0)}
	nac, _ = NewNAC(c, p, param.Fixed(0.5))

	nac.HandleSequence(transitions)
	if c.transitions != 2 {
		t.Errorf("unexpected number of critic transitions \n\twant(2) "+
			"\n\thave(%v)", c.transitions)
	}
	if have := p.weights.RawVector().Data; !floats.EqualApprox(have, want,
		1e-12) {
		t.Errorf("policy weights should be blended once \n\twant(%v) "+
			"\n\thave(%v)", want, have)
	}
}

func TestNACHandleTerminal(t *testing.T) {
	alpha, _ := param.NewExponential(0.4, 0.5, 0.1)
	c := &stubCritic{weights: vec(1)}
	p := &stubPolicy{mpa: vec(0), weights: vec(0)}
	nac, _ := NewNAC(c, p, alpha)

	nac.HandleTerminal()
	nac.HandleTerminal()
	nac.HandleTerminal()

	if c.terminals != 3 || p.terminals != 3 {
		t.Errorf("critic and policy should be notified of 3 episode ends, "+
			"got %v and %v", c.terminals, p.terminals)
	}
	if a := nac.alpha.Value(); a != 0.1 {
		t.Errorf("unexpected alpha \n\twant(0.1) \n\thave(%v)", a)
	}
}

func TestNewNACDimensionMismatch(t *testing.T) {
	c := &stubCritic{weights: vec(1, 2, 3)}
	p := &stubPolicy{mpa: vec(0), weights: vec(1, 2)}

	if _, err := NewNAC(c, p, param.Fixed(0.1)); err == nil {
		t.Errorf("expected error for mismatched weight dimensions")
	}
}

func TestNACBandit(t *testing.T) {
	// A single-state bandit where action 0 pays 1 and action 1 pays 0
	p, err := policy.NewSoftmax(1, 2, nil, 1)
	if err != nil {
		t.Fatal(err)
	}
	c, err := critic.NewCompatible(p, 1, param.Fixed(0.1), param.Fixed(1),
		0)
	if err != nil {
		t.Fatal(err)
	}
	nac, err := NewNAC(c, p, param.Fixed(0.1))
	if err != nil {
		t.Fatal(err)
	}

	state := vec(1)
	for i := 0; i < 500; i++ {
		action := nac.SampleBehaviour(state)
		transition := ts.NewTransition(ts.Full(state), action,
			1-action.AtVec(0), ts.Terminal(state))
		nac.HandleTransition(transition)
		nac.HandleTerminal()
	}

	probs, _ := p.Probabilities(state)
	if probs.AtVec(0) <= 0.9 {
		t.Errorf("rewarded action has probability %v after learning",
			probs.AtVec(0))
	}

	qs, err := nac.PredictQs(state)
	if err != nil {
		t.Fatal(err)
	}
	if qs.AtVec(0) <= qs.AtVec(1) {
		t.Errorf("rewarded action should have higher value: %v",
			mat.Formatted(qs.T()))
	}
}
