// Package experiment implements functionality for running an experiment
package experiment

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/samuelfneumann/goactorcritic/agent"
	"github.com/samuelfneumann/goactorcritic/environment/envconfig"
	"github.com/samuelfneumann/goactorcritic/experiment/tracker"
	ts "github.com/samuelfneumann/goactorcritic/timestep"
)

// Episode summarizes a single episode of an experiment
type Episode = ts.Episode

// Interface Experiment outlines structs that can run experiments.
// The RunEpisode() method runs a single episode and the Run() method
// runs a number of episodes in sequence.
//
// In order to save data, Experiments use Trackers. Trackers determine
// which data generated during the experiment is saved. Experiments
// send each finished Episode to Trackers using the Tracker's Track()
// method. The Save() method saves all tracked data.
type Experiment interface {
	RunEpisode() (Episode, error)
	Run(episodes int) ([]Episode, error)

	// Save all tracked data to disk
	Save() error

	// Adds a new tracker.Tracker to the (possibly already running)
	// experiment. Useful if you want to track data only after a
	// specified event.
	Register(t tracker.Tracker)
}

// Config represents a configuration of an experiment: an agent trained
// online for a number of episodes on an environment, then evaluated
// without learning on a separately seeded copy of the environment.
type Config struct {
	Agent agent.TypedConfig `yaml:"agent" json:"agent"`
	Env   envconfig.Config  `yaml:"env" json:"env"`

	Episodes     int `yaml:"episodes" json:"episodes"`
	StepLimit    int `yaml:"step_limit" json:"step_limit"`
	EvalEpisodes int `yaml:"eval_episodes" json:"eval_episodes"`

	// Batch hands each training episode to the agent as a whole
	// sequence of transitions
	Batch bool   `yaml:"batch" json:"batch"`
	Seed  uint64 `yaml:"seed" json:"seed"`

	// SaveFile, if set, is where training returns are saved
	SaveFile string `yaml:"save_file,omitempty" json:"save_file,omitempty"`
}

// Load loads a Config from a YAML file
func Load(filename string) (Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, fmt.Errorf("load: could not read config: %v", err)
	}

	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("load: could not decode config: %v", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, fmt.Errorf("load: %v", err)
	}
	return c, nil
}

// Validate returns an error if the Config is invalid
func (c Config) Validate() error {
	if err := c.Agent.Validate(); err != nil {
		return fmt.Errorf("validate: agent: %v", err)
	}
	if err := c.Env.Validate(); err != nil {
		return fmt.Errorf("validate: env: %v", err)
	}
	if c.Episodes < 0 || c.EvalEpisodes < 0 {
		return fmt.Errorf("validate: number of episodes must be "+
			"non-negative but got %v and %v", c.Episodes, c.EvalEpisodes)
	}
	if c.StepLimit <= 0 {
		return fmt.Errorf("validate: step limit must be positive but got %v",
			c.StepLimit)
	}
	return nil
}

// Create creates the training and evaluation experiments described by
// the Config. Both experiments share the same agent.
func (c Config) Create() (*Online, *Evaluation, error) {
	env, err := c.Env.Create(c.Seed)
	if err != nil {
		return nil, nil, fmt.Errorf("create: could not create environment: "+
			"%v", err)
	}

	a, err := c.Agent.CreateAgent(env, c.Seed)
	if err != nil {
		return nil, nil, fmt.Errorf("create: could not create agent: %v", err)
	}

	var trackers []tracker.Tracker
	if c.SaveFile != "" {
		trackers = append(trackers, tracker.NewReturn(c.SaveFile))
	}

	online, err := NewOnline(env, a, c.StepLimit, trackers...)
	if err != nil {
		return nil, nil, fmt.Errorf("create: %v", err)
	}
	if err := online.SetBatch(c.Batch); err != nil {
		return nil, nil, fmt.Errorf("create: %v", err)
	}

	// Evaluation episodes start from different states, but tile coding
	// must match the coding the agent was trained on
	evalEnv, err := c.Env.CreateWithTilingSeed(c.Seed+1, c.Seed)
	if err != nil {
		return nil, nil, fmt.Errorf("create: could not create evaluation "+
			"environment: %v", err)
	}

	return online, NewEvaluation(evalEnv, a), nil
}
