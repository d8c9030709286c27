// Package wrappers provides wrappers for environments
package wrappers

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/goactorcritic/environment"
	ts "github.com/samuelfneumann/goactorcritic/timestep"
	"github.com/samuelfneumann/goactorcritic/utils/matutils"
	"github.com/samuelfneumann/goactorcritic/utils/matutils/tilecoder"
)

// TileCoding wraps an environment so that all observations are tile
// coded. Both observations of each transition are encoded; actions and
// rewards are passed through unchanged. A bias unit is always included
// as the first feature.
//
// TileCoding implements the environment.Environment interface
type TileCoding struct {
	environment.Environment
	coder *tilecoder.TileCoder
}

// NewTileCoding returns a new TileCoding environment wrapping env.
// Tilings are placed between the lower and upper observation bounds of
// env. See tilecoder.New for a description of bins.
func NewTileCoding(env environment.Environment, bins [][]int,
	seed uint64) (*TileCoding, error) {
	obsSpec := env.ObservationSpec()
	coder, err := tilecoder.New(obsSpec.LowerBound, obsSpec.UpperBound, bins,
		seed, true)
	if err != nil {
		return nil, fmt.Errorf("newTileCoding: could not create tile "+
			"coder: %v", err)
	}

	return &TileCoding{env, coder}, nil
}

// Reset resets the wrapped environment and returns the tile coded
// first observation
func (t *TileCoding) Reset() (ts.Observation, error) {
	obs, err := t.Environment.Reset()
	if err != nil {
		return ts.Observation{}, err
	}
	return t.encode(obs), nil
}

// Step steps the wrapped environment and returns the transition with
// tile coded observations
func (t *TileCoding) Step(action mat.Vector) (ts.Transition, error) {
	trans, err := t.Environment.Step(action)
	if err != nil {
		return ts.Transition{}, err
	}

	return ts.NewTransition(t.encode(trans.From), trans.Action, trans.Reward,
		t.encode(trans.To)), nil
}

// ObservationSpec returns the observation specification of the tile
// coded environment. Features are binary.
func (t *TileCoding) ObservationSpec() environment.Spec {
	features := t.coder.VecLength()
	shape := mat.NewVecDense(features, nil)
	lowerBound := mat.NewVecDense(features, nil)
	upperBound := matutils.VecOnes(features)

	return environment.NewSpec(shape, environment.Observation, lowerBound,
		upperBound, environment.Discrete)
}

// encode tile codes the state of an observation, keeping its kind
func (t *TileCoding) encode(o ts.Observation) ts.Observation {
	state := t.coder.Encode(o.State())
	if o.IsTerminal() {
		return ts.Terminal(state)
	}
	return ts.Full(state)
}

func (t *TileCoding) String() string {
	return fmt.Sprintf("TileCoding(%v)  |  %v", t.Environment, t.coder)
}
