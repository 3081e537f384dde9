package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinearRegressionRecoversExactFit(t *testing.T) {
	// y = 3 + 2*x1 - x2, noise-free
	X := [][]float64{
		{1, 0}, {2, 1}, {3, 2}, {4, 0}, {5, 3}, {0, 1},
	}
	y := make([]float64, len(X))
	for i, row := range X {
		y[i] = 3 + 2*row[0] - row[1]
	}

	m := NewLinearRegression()
	require.NoError(t, m.Fit(X, y))

	assert.InDelta(t, 3, m.B, 1e-9)
	assert.InDelta(t, 2, m.W[0], 1e-9)
	assert.InDelta(t, -1, m.W[1], 1e-9)

	preds, err := m.Predict(X)
	require.NoError(t, err)
	for i := range y {
		assert.InDelta(t, y[i], preds[i], 1e-9)
	}
}

func TestLinearRegressionFitErrors(t *testing.T) {
	m := NewLinearRegression()

	assert.Error(t, m.Fit(nil, nil))
	assert.Error(t, m.Fit([][]float64{{1}, {2}}, []float64{1}))
	assert.Error(t, m.Fit([][]float64{{1, 2}, {3}}, []float64{1, 2}))
	assert.Error(t, m.Fit([][]float64{{math.NaN()}}, []float64{1}))
	assert.Error(t, m.Fit([][]float64{{1}}, []float64{math.NaN()}))
}

func TestLinearRegressionPredictErrors(t *testing.T) {
	m := NewLinearRegression()
	_, err := m.Predict([][]float64{{1}})
	assert.Error(t, err)

	require.NoError(t, m.Fit([][]float64{{1, 2}, {2, 1}, {3, 3}}, []float64{1, 2, 3}))
	_, err = m.Predict([][]float64{{1}})
	assert.Error(t, err)
}
