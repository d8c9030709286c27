package agent

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/samuelfneumann/goactorcritic/environment"
)

const testType Type = "Test"

type testConfig struct {
	Rate float64 `yaml:"rate" json:"rate"`
}

func (t testConfig) CreateAgent(environment.Environment, uint64) (Agent,
	error) {
	return nil, fmt.Errorf("createAgent: not implemented")
}

func (t testConfig) Validate() error {
	if t.Rate < 0 {
		return fmt.Errorf("validate: negative rate")
	}
	return nil
}

func (t testConfig) Type() Type { return testType }

func init() {
	Register(testType, testConfig{})
}

func TestTypedConfigYAML(t *testing.T) {
	typed := NewTypedConfig(testConfig{Rate: 0.5})

	data, err := yaml.Marshal(typed)
	if err != nil {
		t.Fatal(err)
	}

	var decoded TypedConfig
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded.Type != testType {
		t.Errorf("unexpected type \n\twant(%v) \n\thave(%v)", testType,
			decoded.Type)
	}
	if decoded.Config != (testConfig{Rate: 0.5}) {
		t.Errorf("unexpected config \n\twant(%v) \n\thave(%v)",
			testConfig{Rate: 0.5}, decoded.Config)
	}
	if err := decoded.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestTypedConfigJSON(t *testing.T) {
	var decoded TypedConfig
	data := []byte(`{"type": "Test", "config": {"rate": -1}}`)
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	if err := decoded.Validate(); err == nil {
		t.Errorf("expected validation error for negative rate")
	}

	data = []byte(`{"type": "Unknown", "config": {}}`)
	if err := json.Unmarshal(data, &decoded); err == nil {
		t.Errorf("expected error for unregistered type")
	}
}

func TestUnsupportedError(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", NewUnsupportedError("probability",
		testConfig{}))

	if !errors.Is(err, ErrUnsupported) {
		t.Errorf("expected errors.Is(err, ErrUnsupported)")
	}

	var unsupported *UnsupportedError
	if !errors.As(err, &unsupported) {
		t.Fatalf("expected errors.As to find *UnsupportedError")
	}
	if unsupported.Component != "agent.testConfig" {
		t.Errorf("unexpected component \n\twant(agent.testConfig) "+
			"\n\thave(%v)", unsupported.Component)
	}
}
