package floatutils

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r1"
)

func TestClip(t *testing.T) {
	tests := []struct {
		value, min, max, want float64
	}{
		{0.5, 0, 1, 0.5},
		{-1, 0, 1, 0},
		{3, 0, 1, 1},
		{1, 1, 1, 1},
	}

	for _, test := range tests {
		if have := Clip(test.value, test.min, test.max); have != test.want {
			t.Errorf("Clip(%v, %v, %v) \n\twant(%v) \n\thave(%v)", test.value,
				test.min, test.max, test.want, have)
		}

		interval := r1.Interval{Min: test.min, Max: test.max}
		if have := ClipInterval(test.value, interval); have != test.want {
			t.Errorf("ClipInterval(%v, %v) \n\twant(%v) \n\thave(%v)",
				test.value, interval, test.want, have)
		}
	}
}

func TestWrap(t *testing.T) {
	bounds := r1.Interval{Min: -math.Pi, Max: math.Pi}
	for _, th := range []float64{0.5, math.Pi + 0.5, -math.Pi - 0.5, 7 * math.Pi} {
		have := Wrap(th, bounds)
		if have < bounds.Min || have >= bounds.Max {
			t.Errorf("angle %v wrapped out of bounds to %v", th, have)
		}
		if math.Abs(math.Cos(have)-math.Cos(th)) > 1e-9 {
			t.Errorf("wrapping changed the angle %v -> %v", th, have)
		}
	}

	if have := Wrap(2.5, r1.Interval{Min: 0, Max: 1}); math.Abs(have-0.5) > 1e-12 {
		t.Errorf("unexpected wrapped value \n\twant(0.5) \n\thave(%v)", have)
	}
}
