// Package tilecoder implements tile coding of vectors
package tilecoder

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r1"
	"gonum.org/v1/gonum/stat/distmv"
	"gonum.org/v1/gonum/stat/samplemv"

	"github.com/samuelfneumann/goactorcritic/utils/floatutils"
)

// Controls tiling offsets. For each dimension, tilings are offset by
// randomly sampling from a uniform distribution with support
// [- tiling width/OffsetDiv, tiling width/OffsetDiv]
const OffsetDiv float64 = 1.5

// TileCoder implements functionality for tile coding a vector. Tile
// coding takes a low-dimensional vector and changes it into a large,
// sparse vector consisting of only 0's and 1's. Each 1 represents the
// coordinates of the original vector in some space of tilings. For
// example:
//
//	[0.5, 0.1] -> [0, 0, 0, 1, 0, 0, 1, 0]
//
// The number of nonzero elements in the tile-coded representation
// equals the number of tilings used to encode the vector (plus one if
// a bias unit is used). Tile coding requires that the space to be
// tiled be bounded. Values outside the bounds fall in the edge tiles.
//
// Each dimension of the space is fully tiled; hashing is not used.
type TileCoder struct {
	minDims     []float64
	offsets     *mat.Dense // tilings x dimensions
	bins        [][]int
	binLengths  [][]float64
	includeBias bool
	length      int
}

// New creates and returns a new TileCoder. The minDims and maxDims
// arguments are the bounds on each dimension between which tilings
// will be placed.
//
// The bins argument determines both the number of tilings to use and
// the number of tiles per each tiling. The number of elements in the
// outer slice determines the number of tilings to use. The sub-slices
// determine how many tiles are placed along each dimension for the
// respective tiling. For example, if bins := [][]int{{2, 2}, {4, 3}},
// then the TileCoder uses two tilings. The first tiling is a 2x2
// tiling. The second tiling uses 4 tiles along the first dimension and
// 3 tiles along the second dimension.
//
// The parameter includeBias determines whether or not a bias unit is
// kept as the first unit in the tile coded representation.
func New(minDims, maxDims mat.Vector, bins [][]int, seed uint64,
	includeBias bool) (*TileCoder, error) {
	dims := minDims.Len()
	if dims != maxDims.Len() {
		return nil, fmt.Errorf("new: minimum and maximum must have the "+
			"same dimensions: %d != %d", dims, maxDims.Len())
	}
	if len(bins) == 0 {
		return nil, fmt.Errorf("new: at least one tiling is needed")
	}

	numTilings := len(bins)
	binLengths := make([][]float64, numTilings)
	bounds := make([]r1.Interval, 0, numTilings*dims)
	length := 0

	for j := range bins {
		if len(bins[j]) != dims {
			return nil, fmt.Errorf("new: tiling %d should have a number of "+
				"tiles for each dimension \n\twant(%d) \n\thave(%d)", j, dims,
				len(bins[j]))
		}

		binLengths[j] = make([]float64, dims)
		tiles := 1
		for i := 0; i < dims; i++ {
			if bins[j][i] < 1 {
				return nil, fmt.Errorf("new: tiling %d has %d tiles along "+
					"dimension %d", j, bins[j][i], i)
			}
			binLength := (maxDims.AtVec(i) - minDims.AtVec(i))
			binLength /= float64(bins[j][i])
			bound := binLength / OffsetDiv

			binLengths[j][i] = binLength
			bounds = append(bounds, r1.Interval{Min: -bound, Max: bound})
			tiles *= bins[j][i]
		}
		length += tiles
	}
	if includeBias {
		length++
	}

	// Each row of samples holds the offsets of every tiling, only the
	// entries belonging to tiling j are used for tiling j
	source := rand.NewSource(seed)
	sampler := samplemv.IID{Dist: distmv.NewUniform(bounds, source)}
	samples := mat.NewDense(1, len(bounds), nil)
	sampler.Sample(samples)
	offsets := mat.NewDense(numTilings, dims, samples.RawRowView(0))

	min := make([]float64, dims)
	for i := range min {
		min[i] = minDims.AtVec(i)
	}

	return &TileCoder{
		minDims:     min,
		offsets:     offsets,
		bins:        bins,
		binLengths:  binLengths,
		includeBias: includeBias,
		length:      length,
	}, nil
}

// EncodeIndices returns the indices of the non-zero features when v is
// tile coded
func (t *TileCoder) EncodeIndices(v mat.Vector) []int {
	if v.Len() != len(t.minDims) {
		panic(fmt.Sprintf("encodeIndices: vector should have %d dimensions "+
			"\n\thave(%d)", len(t.minDims), v.Len()))
	}

	indices := make([]int, 0, t.NumTilings()+1)
	offset := 0
	if t.includeBias {
		indices = append(indices, 0)
		offset = 1
	}

	for j := range t.bins {
		index := 0
		for i := range t.bins[j] {
			data := v.AtVec(i) + t.offsets.At(j, i)
			tile := math.Floor((data - t.minDims[i]) / t.binLengths[j][i])
			tile = floatutils.Clip(tile, 0, float64(t.bins[j][i]-1))

			index = index*t.bins[j][i] + int(tile)
		}
		indices = append(indices, offset+index)
		offset += prod(t.bins[j])
	}
	return indices
}

// Encode encodes a single vector as a tile-coded vector
func (t *TileCoder) Encode(v mat.Vector) *mat.VecDense {
	tileCoded := mat.NewVecDense(t.VecLength(), nil)
	for _, index := range t.EncodeIndices(v) {
		tileCoded.SetVec(index, 1.0)
	}
	return tileCoded
}

// String returns a string representation of a *TileCoder
func (t *TileCoder) String() string {
	return fmt.Sprintf("Tilings %d  |  Tiles: %v", t.NumTilings(), t.bins)
}

// VecLength returns the number of features in a tile-coded vector
func (t *TileCoder) VecLength() int {
	return t.length
}

// NumTilings returns the number of tilings the tile coder uses for
// encoding vectors
func (t *TileCoder) NumTilings() int {
	return len(t.bins)
}

// prod calculates the product of all integers in a []int
func prod(i []int) int {
	prod := 1
	for _, v := range i {
		prod *= v
	}
	return prod
}
