// Package matutils implements utility function for working with mat.Matrix
// structs
package matutils

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Format formats a matrix for printing
func Format(X mat.Matrix) string {
	fa := mat.Formatted(X, mat.Prefix(""), mat.Squeeze())
	return fmt.Sprintf("%v", fa)
}

// Outer returns the outer product a bᵀ flattened in row-major order, so
// that element i*b.Len()+j holds a[i]*b[j]. The result has the layout of
// a row-major matrix with a.Len() rows and b.Len() columns.
func Outer(a, b mat.Vector) *mat.VecDense {
	rows, cols := a.Len(), b.Len()
	data := make([]float64, rows*cols)

	outer := mat.NewDense(rows, cols, data)
	outer.Outer(1.0, a, b)

	return mat.NewVecDense(rows*cols, data)
}

// Concat returns a new vector holding the elements of each vector in
// order
func Concat(vecs ...mat.Vector) *mat.VecDense {
	length := 0
	for _, v := range vecs {
		length += v.Len()
	}
	if length == 0 {
		panic("concat: cannot create zero length vector")
	}

	data := make([]float64, 0, length)
	for _, v := range vecs {
		for i := 0; i < v.Len(); i++ {
			data = append(data, v.AtVec(i))
		}
	}
	return mat.NewVecDense(length, data)
}

// VecOnes returns a vector of 1.0's
func VecOnes(length int) *mat.VecDense {
	oneSlice := make([]float64, length)
	for i := 0; i < length; i++ {
		oneSlice[i] = 1.0
	}
	return mat.NewVecDense(length, oneSlice)
}
