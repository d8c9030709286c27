// Package initwfn implements weight initializers for linear function
// approximators. Initializers wrap Gorgonia InitWFns so that they can
// be serialized into configuration files and applied to gonum
// matrices.
package initwfn

import (
	"encoding/json"
	"fmt"
	"reflect"

	"gonum.org/v1/gonum/mat"
	"gopkg.in/yaml.v3"
	G "gorgonia.org/gorgonia"
	"gorgonia.org/tensor"
)

// Type describes different types of InitWFn that are available.
// Type is used to implement a basic type system of InitWFn's.
type Type string

// Available InitWFn types
const (
	GlorotU  Type = "GlorotU"
	GlorotN  Type = "GlorotN"
	HeU      Type = "HeU"
	HeN      Type = "HeN"
	Zeroes   Type = "Zeroes"
	Ones     Type = "Ones"
	Constant Type = "Constant"
	Uniform  Type = "Uniform"
	Gaussian Type = "Gaussian"
)

// configTypes maps each Type to its concrete Config type
var configTypes = map[Type]reflect.Type{
	GlorotU:  reflect.TypeOf(GlorotUConfig{}),
	GlorotN:  reflect.TypeOf(GlorotNConfig{}),
	HeU:      reflect.TypeOf(HeUConfig{}),
	HeN:      reflect.TypeOf(HeNConfig{}),
	Zeroes:   reflect.TypeOf(ZeroesConfig{}),
	Ones:     reflect.TypeOf(OnesConfig{}),
	Constant: reflect.TypeOf(ConstantConfig{}),
	Uniform:  reflect.TypeOf(UniformConfig{}),
	Gaussian: reflect.TypeOf(GaussianConfig{}),
}

// Config implements a Gorgonia InitWFn configuration and can be used to
// create the described Gorgonia InitWFn's.
type Config interface {
	// Create returns the Gorgonia InitWFn that the Config describes
	Create() G.InitWFn

	// Type returns the type of Gorgonia InitWFn that is returned
	Type() Type
}

// InitWFn initializes weight matrices with values drawn from a Gorgonia
// InitWFn. An InitWFn can be JSON or YAML marshalled and unmarshalled.
type InitWFn struct {
	initWFn G.InitWFn
	Type
	Config
}

// New returns a new InitWFn described by c
func New(c Config) *InitWFn {
	return &InitWFn{initWFn: c.Create(), Type: c.Type(), Config: c}
}

// InitWFn returns the wrapped Gorgonia InitWFn
func (i *InitWFn) InitWFn() G.InitWFn {
	return i.initWFn
}

// Initialize fills weights with values drawn from the InitWFn
func (i *InitWFn) Initialize(weights *mat.Dense) {
	if weights == nil || weights.IsEmpty() {
		return
	}
	r, c := weights.Dims()

	values, ok := i.initWFn(tensor.Float64, r, c).([]float64)
	if !ok || len(values) != r*c {
		panic(fmt.Sprintf("initialize: %v did not produce %d float64 "+
			"values", i.Type, r*c))
	}

	for row := 0; row < r; row++ {
		weights.SetRow(row, values[row*c:(row+1)*c])
	}
}

// String implements the fmt.Stringer interface
func (i *InitWFn) String() string {
	return fmt.Sprintf("{%v InitWFn: %v}", i.Type, i.Config)
}

// newConfig returns a pointer to a new zero Config of type t
func newConfig(t Type) (reflect.Value, error) {
	ty, ok := configTypes[t]
	if !ok {
		return reflect.Value{}, fmt.Errorf("no such InitWFn type %v", t)
	}
	return reflect.New(ty), nil
}

// set sets the receiver to the InitWFn described by the Config pointed
// to by config
func (i *InitWFn) set(t Type, config reflect.Value) {
	i.Type = t
	i.Config = config.Elem().Interface().(Config)
	i.initWFn = i.Config.Create()
}

// UnmarshalYAML implements the yaml.Unmarshaler interface
func (i *InitWFn) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		Type   Type      `yaml:"type"`
		Config yaml.Node `yaml:"config"`
	}
	if err := value.Decode(&raw); err != nil {
		return fmt.Errorf("unmarshalYAML: %v", err)
	}

	config, err := newConfig(raw.Type)
	if err != nil {
		return fmt.Errorf("unmarshalYAML: %v", err)
	}
	if !raw.Config.IsZero() {
		if err := raw.Config.Decode(config.Interface()); err != nil {
			return fmt.Errorf("unmarshalYAML: %v", err)
		}
	}

	i.set(raw.Type, config)
	return nil
}

// MarshalYAML implements the yaml.Marshaler interface
func (i InitWFn) MarshalYAML() (interface{}, error) {
	return struct {
		Type   Type   `yaml:"type"`
		Config Config `yaml:"config"`
	}{i.Type, i.Config}, nil
}

// UnmarshalJSON implements the json.Unmarshaler interface
func (i *InitWFn) UnmarshalJSON(data []byte) error {
	var raw struct {
		Type   Type            `json:"type"`
		Config json.RawMessage `json:"config"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("unmarshalJSON: %v", err)
	}

	config, err := newConfig(raw.Type)
	if err != nil {
		return fmt.Errorf("unmarshalJSON: %v", err)
	}
	if len(raw.Config) > 0 {
		if err := json.Unmarshal(raw.Config, config.Interface()); err != nil {
			return fmt.Errorf("unmarshalJSON: %v", err)
		}
	}

	i.set(raw.Type, config)
	return nil
}

// MarshalJSON implements the json.Marshaler interface
func (i InitWFn) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type   Type   `json:"type"`
		Config Config `json:"config"`
	}{i.Type, i.Config})
}
