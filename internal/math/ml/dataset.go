package ml

import (
	"fmt"
	"math"
)

// Dataset is a set of input rows with their target rows.
type Dataset struct {
	X [][]float64
	Y [][]float64
}

// Classic is a tiny 3-input binary dataset with targets in {-1, 1}.
func Classic() Dataset {
	return Dataset{
		X: [][]float64{
			{2.0, 3.0, -1.0},
			{3.0, -1.0, 0.5},
			{0.5, 1.0, 1.0},
			{1.0, 1.0, -1.0},
		},
		Y: [][]float64{{1.0}, {-1.0}, {-1.0}, {1.0}},
	}
}

// Sine slides a window of lookBack points over sin(i * step),
// each window predicting the point that follows it.
func Sine(samples, lookBack int, step float64) (Dataset, error) {
	if samples < 1 || lookBack < 1 {
		return Dataset{}, fmt.Errorf("could not generate %d samples of %d points: %w", samples, lookBack, ErrInvalidShape)
	}
	series := make([]float64, samples+lookBack)
	for i := range series {
		series[i] = math.Sin(float64(i) * step)
	}
	ds := Dataset{
		X: make([][]float64, samples),
		Y: make([][]float64, samples),
	}
	for i := 0; i < samples; i++ {
		ds.X[i] = series[i : i+lookBack]
		ds.Y[i] = []float64{series[i+lookBack]}
	}
	return ds, nil
}

// NamedDataset returns the built-in dataset with the given name.
func NamedDataset(name string) (Dataset, error) {
	switch name {
	case "", "classic":
		return Classic(), nil
	case "sine":
		return Sine(20, 3, 0.3)
	}
	return Dataset{}, fmt.Errorf("unknown dataset '%s'", name)
}
