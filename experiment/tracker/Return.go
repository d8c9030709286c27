package tracker

import (
	"fmt"

	ts "github.com/samuelfneumann/goactorcritic/timestep"
)

// Return tracks and saves the episodic return in an experiment.
//
// Note: If an environment is wrapped by some environment wrapper
// which modifies rewards, then this Tracker tracks the modified rewards
// returned by the wrapped environment.
type Return struct {
	episodeReturns []float64
	filename       string
}

// NewReturn creates and returns a new *Return Tracker
func NewReturn(filename string) *Return {
	return &Return{filename: filename}
}

// Track caches the return of an episode
func (r *Return) Track(e ts.Episode) {
	r.episodeReturns = append(r.episodeReturns, e.TotalReward)
}

// Data returns the returns tracked so far
func (r *Return) Data() []float64 {
	return r.episodeReturns
}

// Save saves the data tracked by the Return Tracker to disk.
func (r *Return) Save() error {
	if err := save(r.filename, r.episodeReturns); err != nil {
		return fmt.Errorf("save: return: %v", err)
	}
	return nil
}
