package initwfn

import (
	"testing"

	"gonum.org/v1/gonum/mat"
	"gopkg.in/yaml.v3"
)

func TestInitialize(t *testing.T) {
	w := mat.NewDense(2, 3, nil)
	NewConstant(0.5).Initialize(w)

	want := mat.NewDense(2, 3, []float64{0.5, 0.5, 0.5, 0.5, 0.5, 0.5})
	if !mat.Equal(w, want) {
		t.Errorf("unexpected weights \n\twant(%v) \n\thave(%v)",
			mat.Formatted(want), mat.Formatted(w))
	}

	NewUniform(-0.1, 0.1).Initialize(w)
	for _, v := range w.RawMatrix().Data {
		if v < -0.1 || v > 0.1 {
			t.Errorf("uniform weight %v out of bounds", v)
		}
	}

	NewZeroes().Initialize(w)
	if !mat.Equal(w, mat.NewDense(2, 3, nil)) {
		t.Errorf("zeroes did not zero weights")
	}
}

func TestYAML(t *testing.T) {
	data := []byte("type: Gaussian\nconfig:\n  mean: 1\n  stddev: 0.5\n")

	var w InitWFn
	if err := yaml.Unmarshal(data, &w); err != nil {
		t.Fatal(err)
	}
	if w.Type != Gaussian {
		t.Errorf("unexpected type \n\twant(%v) \n\thave(%v)", Gaussian,
			w.Type)
	}
	config, ok := w.Config.(GaussianConfig)
	if !ok || config.Mean != 1 || config.StdDev != 0.5 {
		t.Errorf("unexpected config %#v", w.Config)
	}

	out, err := yaml.Marshal(w)
	if err != nil {
		t.Fatal(err)
	}
	var again InitWFn
	if err := yaml.Unmarshal(out, &again); err != nil {
		t.Fatal(err)
	}
	if again.Config != w.Config {
		t.Errorf("config changed after marshalling \n\twant(%v) "+
			"\n\thave(%v)", w.Config, again.Config)
	}

	if err := yaml.Unmarshal([]byte("type: Orthogonal\n"), &w); err == nil {
		t.Errorf("expected error for unknown initializer")
	}
}
