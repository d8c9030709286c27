// Package environment outlines the interfaces and structs needed to
// implement concrete environments.
//
// Environments are external sources of transitions. Learning algorithms
// never see an Environment directly; an experiment steps the
// Environment and forwards the resulting transitions to the agent.
package environment

import (
	"gonum.org/v1/gonum/mat"

	ts "github.com/samuelfneumann/goactorcritic/timestep"
)

// Starter implements a distribution of starting states and samples
// starting states for environments
type Starter interface {
	Start() mat.Vector
}

// Ender determines when episodes end
type Ender interface {
	// End returns whether the episode should end after step number
	// steps (counted from 1) arrived in state
	End(steps int, state mat.Vector) bool
}

// Task implements the reward scheme for taking actions in some
// environment, as well as the distribution of starting states and
// the conditions under which episodes end
type Task interface {
	Starter
	Ender
	GetReward(state, action, nextState mat.Vector) float64
}

// Environment implements a simulated environment, which includes a
// Task to complete
type Environment interface {
	// Reset starts a new episode and returns its first observation
	Reset() (ts.Observation, error)

	// Step takes action in the current state and returns the resulting
	// transition. If the transition is terminal, Reset must be called
	// before stepping again.
	Step(action mat.Vector) (ts.Transition, error)

	ObservationSpec() Spec
	ActionSpec() Spec
}
