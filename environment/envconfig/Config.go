// Package envconfig provides configuration structs for configuring
// environments with default physical parameters and tasks. Environment
// configurations in this package are JSON and YAML serializable.
package envconfig

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r1"

	env "github.com/samuelfneumann/goactorcritic/environment"
	"github.com/samuelfneumann/goactorcritic/environment/classiccontrol/pendulum"
	"github.com/samuelfneumann/goactorcritic/environment/wrappers"
)

// EnvName stores the name of environments that can be configured with
// this package
type EnvName string

// Environments available for configuration
const (
	Pendulum EnvName = "Pendulum"
)

// TaskName stores the tasks that can be configured with this package.
// Note that not all tasks can be used with all environments. The tasks
// that can be used with each environment are as follows:
//
//	Environment			Task
//	Pendulum			SwingUp
type TaskName string

// Tasks available for configuration
const (
	SwingUp TaskName = "SwingUp"
)

// Tiling describes a tile coding of environment observations. Each of
// the Tilings tilings has Bins[i] tiles along observation dimension i.
type Tiling struct {
	Tilings int   `yaml:"tilings" json:"tilings"`
	Bins    []int `yaml:"bins" json:"bins"`
}

// bins returns the bins of each tiling
func (t Tiling) bins() [][]int {
	bins := make([][]int, t.Tilings)
	for i := range bins {
		bins[i] = append([]int(nil), t.Bins...)
	}
	return bins
}

// Config implements a specific configuration of a specific environment
// and specific task. Not all environments can have all tasks.
type Config struct {
	Environment       EnvName  `yaml:"environment" json:"environment"`
	Task              TaskName `yaml:"task" json:"task"`
	ContinuousActions bool     `yaml:"continuous_actions" json:"continuous_actions"`
	EpisodeCutoff     int      `yaml:"episode_cutoff" json:"episode_cutoff"`

	// Tiling tile codes observations when non-nil
	Tiling *Tiling `yaml:"tiling,omitempty" json:"tiling,omitempty"`
}

// Validate returns an error if the Config cannot create an environment
func (c Config) Validate() error {
	if c.Environment != Pendulum {
		return fmt.Errorf("validate: no such environment %v", c.Environment)
	}
	if c.Task != SwingUp {
		return fmt.Errorf("validate: %v environment has no task %v",
			c.Environment, c.Task)
	}
	if c.EpisodeCutoff <= 0 {
		return fmt.Errorf("validate: episode cutoff must be positive but "+
			"got %v", c.EpisodeCutoff)
	}
	if c.Tiling != nil && c.Tiling.Tilings <= 0 {
		return fmt.Errorf("validate: number of tilings must be positive "+
			"but got %v", c.Tiling.Tilings)
	}
	return nil
}

// Create returns the environment described by the Config
func (c Config) Create(seed uint64) (env.Environment, error) {
	return c.CreateWithTilingSeed(seed, seed)
}

// CreateWithTilingSeed is like Create, but seeds the tile coding
// separately from the environment. Environments created with the same
// tiling seed encode observations in the same way.
func (c Config) CreateWithTilingSeed(seed,
	tilingSeed uint64) (env.Environment, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("create: %v", err)
	}

	e := CreatePendulum(c.ContinuousActions, c.EpisodeCutoff, seed)
	if c.Tiling == nil {
		return e, nil
	}

	tc, err := wrappers.NewTileCoding(e, c.Tiling.bins(), tilingSeed)
	if err != nil {
		return nil, fmt.Errorf("create: %v", err)
	}
	return tc, nil
}

// CreatePendulum is a factory for creating the Pendulum environment
// with default physical parameters and the SwingUp task.
func CreatePendulum(continuousActions bool, cutoff int,
	seed uint64) env.Environment {
	angle := r1.Interval{Min: -pendulum.AngleBound, Max: pendulum.AngleBound}
	speed := r1.Interval{Min: -1.0, Max: 1.0}

	s := env.NewUniformStarter([]r1.Interval{angle, speed}, seed)
	task := pendulum.NewSwingUp(s, cutoff)

	if continuousActions {
		return pendulum.NewContinuous(task)
	}
	return pendulum.NewDiscrete(task)
}
