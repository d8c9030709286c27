package pendulum

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r1"

	"github.com/samuelfneumann/goactorcritic/environment"
)

func newTask(cutoff int) *SwingUp {
	bounds := []r1.Interval{{Min: -0.1, Max: 0.1}, {Min: -0.1, Max: 0.1}}
	s := environment.NewUniformStarter(bounds, 42)
	return NewSwingUp(s, cutoff)
}

func TestEpisodeEndsAtCutoff(t *testing.T) {
	env := NewContinuous(newTask(5))
	obs, err := env.Reset()
	if err != nil {
		t.Fatal(err)
	}

	action := mat.NewVecDense(1, []float64{1.0})
	for i := 1; i <= 5; i++ {
		trans, err := env.Step(action)
		if err != nil {
			t.Fatal(err)
		}
		if !mat.Equal(trans.From.State(), obs.State()) {
			t.Errorf("transition should start from the last observation")
		}
		if trans.Terminated() != (i == 5) {
			t.Errorf("step %d: unexpected termination %v", i,
				trans.Terminated())
		}
		if want := math.Cos(trans.To.State().AtVec(0)); trans.Reward != want {
			t.Errorf("unexpected reward \n\twant(%v) \n\thave(%v)", want,
				trans.Reward)
		}
		obs = trans.To
	}

	if _, err := env.Step(action); err == nil {
		t.Errorf("stepping after the episode ended should fail")
	}
}

func TestDiscreteIllegalAction(t *testing.T) {
	env := NewDiscrete(newTask(10))
	if _, err := env.Reset(); err != nil {
		t.Fatal(err)
	}

	if _, err := env.Step(mat.NewVecDense(1, []float64{5})); err == nil {
		t.Errorf("expected error for out of range action")
	}
	if _, err := env.Step(mat.NewVecDense(1, []float64{1.5})); err == nil {
		t.Errorf("expected error for non-integer action")
	}
	if _, err := env.Step(mat.NewVecDense(1, []float64{4})); err != nil {
		t.Errorf("unexpected error for legal action: %v", err)
	}

	n, err := env.ActionSpec().NumActions()
	if err != nil {
		t.Fatal(err)
	}
	if n != len(torques) {
		t.Errorf("unexpected number of actions \n\twant(%d) \n\thave(%d)",
			len(torques), n)
	}
}
