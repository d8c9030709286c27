package experiment

import (
	"fmt"

	"github.com/samuelfneumann/goactorcritic/agent"
	env "github.com/samuelfneumann/goactorcritic/environment"
	"github.com/samuelfneumann/goactorcritic/experiment/tracker"
)

// Evaluation is an Experiment that assesses the target policy of an
// agent without learning. Episodes run until the environment
// terminates them; there is no step limit, so the environment must
// guarantee termination.
type Evaluation struct {
	env.Environment
	agent.Controller
	trackers []tracker.Tracker
}

// NewEvaluation returns a new evaluation experiment of the controller
// c on environment e
func NewEvaluation(e env.Environment, c agent.Controller,
	t ...tracker.Tracker) *Evaluation {
	return &Evaluation{e, c, t}
}

// Register registers a tracker.Tracker with the Experiment
func (e *Evaluation) Register(t tracker.Tracker) {
	e.trackers = append(e.trackers, t)
}

// RunEpisode runs a single evaluation episode
func (e *Evaluation) RunEpisode() (Episode, error) {
	var episode Episode

	obs, err := e.Environment.Reset()
	if err != nil {
		return episode, fmt.Errorf("runEpisode: could not reset: %v", err)
	}

	for {
		action := e.Controller.SampleTarget(obs.State())
		t, err := e.Environment.Step(action)
		if err != nil {
			return episode, fmt.Errorf("runEpisode: could not step: %v", err)
		}

		episode.Steps++
		episode.TotalReward += t.Reward

		if t.Terminated() {
			break
		}
		obs = t.To
	}

	for _, t := range e.trackers {
		t.Track(episode)
	}
	return episode, nil
}

// Run runs a number of evaluation episodes
func (e *Evaluation) Run(episodes int) ([]Episode, error) {
	return run(e, episodes)
}

// Save saves all the data cached by the Trackers to disk
func (e *Evaluation) Save() error {
	return save(e.trackers)
}
