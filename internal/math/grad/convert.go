package grad

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Vector lifts the numbers into leaf values.
func (g *Graph) Vector(xs []float64) []Value {
	vv := make([]Value, len(xs))
	for i, x := range xs {
		vv[i] = g.New(x)
	}
	return vv
}

// Rows lifts a rectangular set of rows into leaf values of the same shape.
func (g *Graph) Rows(xs [][]float64) ([][]Value, error) {
	for i, x := range xs {
		if len(x) != len(xs[0]) {
			return nil, fmt.Errorf("row %d has %d columns instead of %d: %w", i, len(x), len(xs[0]), ErrInvalidShape)
		}
	}
	rows := make([][]Value, len(xs))
	for i, x := range xs {
		rows[i] = g.Vector(x)
	}
	return rows, nil
}

// Matrix lifts every row of the matrix into leaf values.
func (g *Graph) Matrix(m mat.Matrix) [][]Value {
	r, c := m.Dims()
	rows := make([][]Value, r)
	for i := 0; i < r; i++ {
		rows[i] = make([]Value, c)
		for j := 0; j < c; j++ {
			rows[i][j] = g.New(m.At(i, j))
		}
	}
	return rows
}
