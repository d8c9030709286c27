// Package timestep implements the observations and transitions of the
// agent-environment interaction
package timestep

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Observation is a single observation of an environment state. An
// Observation is either a full (non-terminal) observation or a terminal
// one, which marks the end of an episode.
type Observation struct {
	state    mat.Vector
	terminal bool
}

// Full returns a non-terminal Observation of state
func Full(state mat.Vector) Observation {
	return Observation{state: state}
}

// Terminal returns a terminal Observation of state
func Terminal(state mat.Vector) Observation {
	return Observation{state: state, terminal: true}
}

// State returns the observed state
func (o Observation) State() mat.Vector {
	return o.state
}

// IsTerminal returns whether the Observation ends an episode
func (o Observation) IsTerminal() bool {
	return o.terminal
}

func (o Observation) String() string {
	kind := "Full"
	if o.terminal {
		kind = "Terminal"
	}
	if o.state == nil {
		return fmt.Sprintf("%v(<nil>)", kind)
	}
	return fmt.Sprintf("%v(%v)", kind, mat.Formatted(o.state.T(), mat.Squeeze()))
}

// Transition packages together a single step of interaction with an
// environment: the state acted in, the action taken, the reward
// received, and the observation that followed.
//
// Transitions are produced by an environment and handed read-only to
// learning algorithms. They should not be modified after creation.
type Transition struct {
	From   Observation
	Action mat.Vector
	Reward float64
	To     Observation
}

// NewTransition returns a new Transition
func NewTransition(from Observation, action mat.Vector, reward float64,
	to Observation) Transition {
	return Transition{From: from, Action: action, Reward: reward, To: to}
}

// Terminated returns whether the transition ends the episode
func (t Transition) Terminated() bool {
	return t.To.IsTerminal()
}

func (t Transition) String() string {
	str := "Transition | From: %v  |  Action: %v  |  Reward: %.2f  |  To: %v"
	var action interface{} = "<nil>"
	if t.Action != nil {
		action = mat.Formatted(t.Action.T(), mat.Squeeze())
	}

	return fmt.Sprintf(str, t.From, action, t.Reward, t.To)
}

// Episode summarizes a single episode of interaction with an
// environment
type Episode struct {
	// Steps is the number of transitions in the episode
	Steps       int
	TotalReward float64
}

func (e Episode) String() string {
	return fmt.Sprintf("Episode | Steps: %d  |  Return: %.3f", e.Steps,
		e.TotalReward)
}
