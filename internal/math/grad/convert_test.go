package grad

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestRows(t *testing.T) {
	g := NewGraph()
	rows, err := g.Rows([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	for i, row := range rows {
		require.Len(t, row, 3)
		for j, v := range row {
			assert.Equal(t, float64(i*3+j+1), v.Data())
			assert.Equal(t, Leaf, v.Kind())
			assert.Empty(t, v.Prev())
		}
	}

	_, err = g.Rows([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, ErrInvalidShape)
	// nothing is added for a ragged input
	assert.Equal(t, 6, g.Len())

	empty, err := g.Rows(nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestMatrix(t *testing.T) {
	g := NewGraph()
	m := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	rows := g.Matrix(m)
	require.Len(t, rows, 2)
	for i, row := range rows {
		require.Len(t, row, 3)
		for j, v := range row {
			assert.Equal(t, m.At(i, j), v.Data())
		}
	}
	assert.Equal(t, "Value(data=6)", rows[1][2].String())
}
