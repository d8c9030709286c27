package agent

import (
	"encoding/json"
	"fmt"
	"reflect"

	"gopkg.in/yaml.v3"
)

// Registered types with the package. Once a Type has been registered
// with this map, a TypedConfig with that type can be deserialized.
//
// No Type's are registered with this package upon initialization.
// Each separate package is in charge of registering its Type with
// the package separately to avoid circular imports.
var registeredTypes = make(map[Type]reflect.Type)

// Register registers an agent's Type with a concrete Config type so
// that upon deserialization of a TypedConfig, Configs of type
// agentType are deserialized into the concrete type of config.
func Register(agentType Type, config Config) {
	registeredTypes[agentType] = reflect.TypeOf(config)
}

// TypedConfig implements functionality for typing a Config. In this
// way, a Config can explicitly have its type stored so that when
// deserializing the Config, we can deserialize it into its concrete
// type without knowing beforehand or declaring beforehand a variable of
// its concrete type.
//
// Serialized TypedConfigs look like:
//
//	type: CACLAVar-Linear
//	config:
//	  alpha: {type: Fixed, value: 0.01}
//	  ...
type TypedConfig struct {
	Type
	Config
}

// NewTypedConfig types the argument Config and returns it as a
// TypedConfig which explicitly holds its Type.
func NewTypedConfig(c Config) TypedConfig {
	return TypedConfig{Type: c.Type(), Config: c}
}

// newConfig returns a pointer to a new zero Config of the registered
// concrete type for t
func newConfig(t Type) (reflect.Value, error) {
	ty, ok := registeredTypes[t]
	if !ok {
		return reflect.Value{}, fmt.Errorf("no agent type %v registered", t)
	}
	return reflect.New(ty), nil
}

// UnmarshalYAML implements the yaml.Unmarshaler interface
func (t *TypedConfig) UnmarshalYAML(value *yaml.Node) error {
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

	t.Type = raw.Type
	t.Config = config.Elem().Interface().(Config)
	return nil
}

// MarshalYAML implements the yaml.Marshaler interface
func (t TypedConfig) MarshalYAML() (interface{}, error) {
	return struct {
		Type   Type   `yaml:"type"`
		Config Config `yaml:"config"`
	}{t.Type, t.Config}, nil
}

// UnmarshalJSON implements the json.Unmarshaler interface
func (t *TypedConfig) UnmarshalJSON(data []byte) error {
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

	t.Type = raw.Type
	t.Config = config.Elem().Interface().(Config)
	return nil
}

// MarshalJSON implements the json.Marshaler interface
func (t TypedConfig) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type   Type   `json:"type"`
		Config Config `json:"config"`
	}{t.Type, t.Config})
}

// Validate validates the underlying Config and ensures its Type
// matches the stored Type
func (t TypedConfig) Validate() error {
	if t.Config == nil {
		return fmt.Errorf("validate: no config for agent type %v", t.Type)
	}
	if t.Config.Type() != t.Type {
		return fmt.Errorf("validate: config has type %v but is stored "+
			"as type %v", t.Config.Type(), t.Type)
	}
	return t.Config.Validate()
}
