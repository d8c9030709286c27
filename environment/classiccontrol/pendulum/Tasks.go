package pendulum

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/goactorcritic/environment"
)

// SwingUp implements a task where the agent must swing the pendulum up
// and hold it in a vertical position. Rewards are the cosine of the
// pendulum angle measured from the positive y-axis. The goal state
// is the pendulum sticking straight up, at which point the agent gets
// a reward of 1.0 on each timestep. Episodes end after a fixed number
// of steps.
type SwingUp struct {
	environment.Starter
	environment.Ender
}

// NewSwingUp creates and returns a new SwingUp task
func NewSwingUp(s environment.Starter, maxSteps int) *SwingUp {
	ender := environment.NewStepLimit(maxSteps)
	return &SwingUp{s, ender}
}

// GetReward gets the reward for the transition into nextState
func (s *SwingUp) GetReward(_, _, nextState mat.Vector) float64 {
	return math.Cos(nextState.AtVec(0))
}
