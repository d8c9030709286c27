package agent

import (
	"github.com/samuelfneumann/goactorcritic/environment"
)

// Config represents a configuration for creating an agent
type Config interface {
	// CreateAgent creates the agent that the config describes
	CreateAgent(env environment.Environment, seed uint64) (Agent, error)

	// Validate returns an error describing whether or not the
	// configuration is valid or not.
	Validate() error

	// Type returns the type of agent described by the Config
	Type() Type
}

// Type represents a specific type of an agent Config. Config's with
// this type can create Agents of the corresponding type.
type Type string

const (
	CACLAVarLinear Type = "CACLAVar-Linear"
	NACLinear      Type = "NAC-Linear"
)
