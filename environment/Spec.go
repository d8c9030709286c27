package environment

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// SpecType determines what kind of specification a Spec is. A Spec can
// specify the layout of an action or an observation
type SpecType int

const (
	Action SpecType = iota
	Observation
)

// Cardinality determines the cardinality of a number (discrete or
// continuous)
type Cardinality string

const (
	Continuous Cardinality = "Continuous"
	Discrete   Cardinality = "Discrete"
)

// Spec implements an environment specification, which tells the type,
// shape, and bounds of an action or observation in an environment
type Spec struct {
	Shape      mat.Vector
	Type       SpecType
	LowerBound mat.Vector
	UpperBound mat.Vector
	Cardinality
}

// NewSpec constructs a new environment specification
// The shape argument outlines the shape of the data described by the
// specification. The argument t outlines what the specification is
// describing (e.g. actions, observations). The cardinality argument
// describes whether the values that the spec describes are continuous
// or discrete.
func NewSpec(shape mat.Vector, t SpecType, lowerBound,
	upperBound mat.Vector, cardinality Cardinality) Spec {
	if shape.Len() != lowerBound.Len() {
		panic(fmt.Sprintf("shape length %v must match lower bounds length %v",
			shape.Len(), lowerBound.Len()))
	}
	if shape.Len() != upperBound.Len() {
		panic(fmt.Sprintf("shape length %v must match upper bounds length %v",
			shape.Len(), upperBound.Len()))
	}
	return Spec{shape, t, lowerBound, upperBound, cardinality}
}

// NumActions returns the number of actions described by a discrete,
// 1-dimensional action Spec. Discrete actions are numbered from the
// lower bound to the upper bound inclusive.
func (s Spec) NumActions() (int, error) {
	if s.Cardinality != Discrete {
		return 0, fmt.Errorf("numActions: actions are not discrete")
	}
	if s.Shape.Len() != 1 {
		return 0, fmt.Errorf("numActions: actions must be 1-dimensional "+
			"\n\thave(%d)", s.Shape.Len())
	}
	return int(s.UpperBound.AtVec(0)-s.LowerBound.AtVec(0)) + 1, nil
}
