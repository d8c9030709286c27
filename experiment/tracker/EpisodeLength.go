package tracker

import (
	"fmt"

	ts "github.com/samuelfneumann/goactorcritic/timestep"
)

// EpisodeLength tracks and saves the lengths of episodes in an
// experiment. Lengths are saved as float64s so that they can be loaded
// with LoadData.
type EpisodeLength struct {
	episodeLengths []float64
	filename       string
}

// NewEpisodeLength returns a new EpisodeLength saver which will save
// its data at the specified location filename
func NewEpisodeLength(filename string) *EpisodeLength {
	return &EpisodeLength{filename: filename}
}

// Track caches the length of an episode
func (e *EpisodeLength) Track(episode ts.Episode) {
	e.episodeLengths = append(e.episodeLengths, float64(episode.Steps))
}

// Data returns the episode lengths tracked so far
func (e *EpisodeLength) Data() []float64 {
	return e.episodeLengths
}

// Save saves the data tracked by the EpisodeLength Tracker to disk.
func (e *EpisodeLength) Save() error {
	if err := save(e.filename, e.episodeLengths); err != nil {
		return fmt.Errorf("save: episode length: %v", err)
	}
	return nil
}
