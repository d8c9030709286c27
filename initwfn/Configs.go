package initwfn

import G "gorgonia.org/gorgonia"

// ZeroesConfig implements a configuration of a zero weight initializer
type ZeroesConfig struct{}

// NewZeroes returns a new zeroes weight initializer
func NewZeroes() *InitWFn {
	return New(ZeroesConfig{})
}

// Type returns the type of the weight initializer
func (z ZeroesConfig) Type() Type { return Zeroes }

// Create creates the Gorgonia weight initializer
func (z ZeroesConfig) Create() G.InitWFn { return G.Zeroes() }

// OnesConfig implements a configuration of a weight initializer that
// initializes all weights to 1.
type OnesConfig struct{}

// NewOnes returns a new ones weight initializer
func NewOnes() *InitWFn {
	return New(OnesConfig{})
}

// Type returns the type of the weight initializer
func (o OnesConfig) Type() Type { return Ones }

// Create creates the Gorgonia weight initializer
func (o OnesConfig) Create() G.InitWFn { return G.Ones() }

// ConstantConfig implements a configuration of a weight initializer
// that initializes all weights to a constant value.
type ConstantConfig struct {
	Value float64 `yaml:"value" json:"value"`
}

// NewConstant returns a new constant weight initializer
func NewConstant(value float64) *InitWFn {
	return New(ConstantConfig{value})
}

// Type returns the type of the weight initializer
func (c ConstantConfig) Type() Type { return Constant }

// Create creates the Gorgonia weight initializer
func (c ConstantConfig) Create() G.InitWFn { return G.ValuesOf(c.Value) }

// UniformConfig implements a configuration of a weight initializer
// that draws weights from a uniform distribution
type UniformConfig struct {
	Low  float64 `yaml:"low" json:"low"`
	High float64 `yaml:"high" json:"high"`
}

// NewUniform returns a new uniform weight initializer
func NewUniform(low, high float64) *InitWFn {
	return New(UniformConfig{Low: low, High: high})
}

// Type returns the type of the weight initializer
func (u UniformConfig) Type() Type { return Uniform }

// Create creates the Gorgonia weight initializer
func (u UniformConfig) Create() G.InitWFn { return G.Uniform(u.Low, u.High) }

// GaussianConfig implements a configuration of a weight initializer
// that draws weights from a gaussian distribution
type GaussianConfig struct {
	Mean   float64 `yaml:"mean" json:"mean"`
	StdDev float64 `yaml:"stddev" json:"stddev"`
}

// NewGaussian returns a new gaussian weight initializer
func NewGaussian(mean, stddev float64) *InitWFn {
	return New(GaussianConfig{Mean: mean, StdDev: stddev})
}

// Type returns the type of the weight initializer
func (g GaussianConfig) Type() Type { return Gaussian }

// Create creates the Gorgonia weight initializer
func (g GaussianConfig) Create() G.InitWFn { return G.Gaussian(g.Mean, g.StdDev) }

// GlorotUConfig implements a configuration of the Glorot Uniform
// initialization algorithm.
type GlorotUConfig struct {
	Gain float64 `yaml:"gain" json:"gain"`
}

// NewGlorotU returns a new Glorot Uniform weight initializer
func NewGlorotU(gain float64) *InitWFn {
	return New(GlorotUConfig{Gain: gain})
}

// Type returns the type of the weight initializer
func (g GlorotUConfig) Type() Type { return GlorotU }

// Create creates the Gorgonia weight initializer
func (g GlorotUConfig) Create() G.InitWFn { return G.GlorotU(g.Gain) }

// GlorotNConfig implements a configuration of the Glorot Normal
// initialization algorithm.
type GlorotNConfig struct {
	Gain float64 `yaml:"gain" json:"gain"`
}

// NewGlorotN returns a new Glorot Normal weight initializer.
func NewGlorotN(gain float64) *InitWFn {
	return New(GlorotNConfig{Gain: gain})
}

// Type returns the type of the weight initializer
func (g GlorotNConfig) Type() Type { return GlorotN }

// Create creates the Gorgonia weight initializer
func (g GlorotNConfig) Create() G.InitWFn { return G.GlorotN(g.Gain) }

// HeUConfig implements a configuration of the He Uniform
// initialization algorithm.
type HeUConfig struct {
	Gain float64 `yaml:"gain" json:"gain"`
}

// NewHeU returns a new He Uniform weight initializer
func NewHeU(gain float64) *InitWFn {
	return New(HeUConfig{Gain: gain})
}

// Type returns the type of the weight initializer
func (h HeUConfig) Type() Type { return HeU }

// Create creates the Gorgonia weight initializer
func (h HeUConfig) Create() G.InitWFn { return G.HeU(h.Gain) }

// HeNConfig implements a configuration of the He Normal
// initialization algorithm.
type HeNConfig struct {
	Gain float64 `yaml:"gain" json:"gain"`
}

// NewHeN returns a new He Normal weight initializer
func NewHeN(gain float64) *InitWFn {
	return New(HeNConfig{Gain: gain})
}

// Type returns the type of the weight initializer
func (h HeNConfig) Type() Type { return HeN }

// Create creates the Gorgonia weight initializer
func (h HeNConfig) Create() G.InitWFn { return G.HeN(h.Gain) }
