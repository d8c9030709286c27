package experiment

import (
	"fmt"

	"github.com/samuelfneumann/goactorcritic/agent"
	env "github.com/samuelfneumann/goactorcritic/environment"
	"github.com/samuelfneumann/goactorcritic/experiment/tracker"
	ts "github.com/samuelfneumann/goactorcritic/timestep"
)

// Online is an Experiment that trains an agent online. Actions are
// selected by the behaviour policy of the agent, and the agent learns
// from each transition as it is generated. At the end of each episode,
// whether through termination or the step limit, the agent is notified
// exactly once.
//
// In batch mode, the transitions of each episode are instead buffered
// and handed to the agent as a single sequence at the end of the
// episode.
type Online struct {
	env.Environment
	agent.Agent
	stepLimit int
	batch     bool
	trackers  []tracker.Tracker
}

// NewOnline creates and returns a new online experiment on a given
// environment with a given agent. The stepLimit parameter bounds the
// number of transitions in each episode, and the t parameter
// is a slice of tracker.Tracker which determine what data is saved.
func NewOnline(e env.Environment, a agent.Agent, stepLimit int,
	t ...tracker.Tracker) (*Online, error) {
	if stepLimit <= 0 {
		return nil, fmt.Errorf("newOnline: step limit must be positive but "+
			"got %v", stepLimit)
	}
	return &Online{e, a, stepLimit, false, t}, nil
}

// SetBatch sets whether or not the experiment runs in batch mode. Only
// agents which are agent.BatchLearners can be run in batch mode.
func (o *Online) SetBatch(batch bool) error {
	if _, ok := o.Agent.(agent.BatchLearner); batch && !ok {
		return fmt.Errorf("setBatch: agent %T cannot learn from sequences",
			o.Agent)
	}
	o.batch = batch
	return nil
}

// Register registers a tracker.Tracker with an Experiment so that data
// generated during the experiment can be tracked and saved
func (o *Online) Register(t tracker.Tracker) {
	o.trackers = append(o.trackers, t)
}

// RunEpisode runs a single episode of the experiment.
//
// If the environment cannot be reset or stepped, RunEpisode returns the
// error without notifying the agent of the end of the episode, so the
// agent may still hold per-episode state such as eligibility traces.
// Such an agent should be discarded rather than trained further.
func (o *Online) RunEpisode() (Episode, error) {
	var episode Episode

	obs, err := o.Environment.Reset()
	if err != nil {
		return episode, fmt.Errorf("runEpisode: could not reset: %v", err)
	}

	var transitions []ts.Transition
	for episode.Steps < o.stepLimit {
		action := o.Agent.SampleBehaviour(obs.State())
		t, err := o.Environment.Step(action)
		if err != nil {
			return episode, fmt.Errorf("runEpisode: could not step: %v", err)
		}

		episode.Steps++
		episode.TotalReward += t.Reward

		if o.batch {
			transitions = append(transitions, t)
		} else {
			o.Agent.HandleTransition(t)
		}

		if t.Terminated() {
			break
		}
		obs = t.To
	}

	if o.batch {
		o.Agent.(agent.BatchLearner).HandleSequence(transitions)
	}
	o.Agent.HandleTerminal()

	o.track(episode)
	return episode, nil
}

// Run runs the experiment for a number of episodes
func (o *Online) Run(episodes int) ([]Episode, error) {
	return run(o, episodes)
}

// Save saves all the data cached by the Trackers to disk
func (o *Online) Save() error {
	return save(o.trackers)
}

// track tracks an episode by caching its data in each tracker
func (o *Online) track(e Episode) {
	for _, t := range o.trackers {
		t.Track(e)
	}
}

// run runs episodes episodes of the experiment e
func run(e Experiment, episodes int) ([]Episode, error) {
	results := make([]Episode, 0, episodes)
	for i := 0; i < episodes; i++ {
		episode, err := e.RunEpisode()
		if err != nil {
			return results, fmt.Errorf("run: episode %v: %v", i, err)
		}
		results = append(results, episode)
	}
	return results, nil
}

// save saves the data of each tracker
func save(trackers []tracker.Tracker) error {
	for _, t := range trackers {
		if err := t.Save(); err != nil {
			return fmt.Errorf("save: %v", err)
		}
	}
	return nil
}
