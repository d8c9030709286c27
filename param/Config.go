package param

import "fmt"

// Type describes the decay rule of a Schedule
type Type string

// Available Schedule types
const (
	FixedType       Type = "Fixed"
	LinearType      Type = "Linear"
	ExponentialType Type = "Exponential"
)

// Config is a serializable description of a Schedule. Rate and Floor
// are ignored for Fixed schedules. An empty Type is treated as Fixed.
type Config struct {
	Type  Type    `yaml:"type" json:"type"`
	Value float64 `yaml:"value" json:"value"`
	Rate  float64 `yaml:"rate,omitempty" json:"rate,omitempty"`
	Floor float64 `yaml:"floor,omitempty" json:"floor,omitempty"`
}

// Validate returns an error if the Config does not describe a valid
// Schedule
func (c Config) Validate() error {
	_, err := c.Create()
	return err
}

// Create returns the Schedule described by the Config
func (c Config) Create() (Schedule, error) {
	switch c.Type {
	case FixedType, "":
		return Fixed(c.Value), nil

	case LinearType:
		l, err := NewLinear(c.Value, c.Rate, c.Floor)
		if err != nil {
			return nil, fmt.Errorf("create: %v", err)
		}
		return l, nil

	case ExponentialType:
		e, err := NewExponential(c.Value, c.Rate, c.Floor)
		if err != nil {
			return nil, fmt.Errorf("create: %v", err)
		}
		return e, nil
	}

	return nil, fmt.Errorf("create: no such schedule type %v", c.Type)
}

// MustCreate is like Create but panics on an invalid Config
func (c Config) MustCreate() Schedule {
	s, err := c.Create()
	if err != nil {
		panic(err)
	}
	return s
}
