package model

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// LinearRegression is an ordinary least-squares regressor with intercept,
// solved exactly via QR factorization.
type LinearRegression struct {
	W []float64 // weights, one per feature
	B float64   // intercept

	fitted bool
}

// NewLinearRegression returns an unfitted OLS regressor.
func NewLinearRegression() *LinearRegression {
	return &LinearRegression{}
}

// Fit solves the least-squares problem for X (n x p) and y (n values).
// Fails if the row counts mismatch, any row has an inconsistent number of
// features, or the data contains NaN.
func (m *LinearRegression) Fit(X [][]float64, y []float64) error {
	if len(X) == 0 {
		return errors.New("linear: empty X")
	}
	if len(X) != len(y) {
		return errors.New("linear: X and y length mismatch")
	}
	p := len(X[0])
	if p == 0 {
		return errors.New("linear: rows have no features")
	}

	// design matrix with a leading intercept column of ones
	a := mat.NewDense(len(X), p+1, nil)
	for i, row := range X {
		if len(row) != p {
			return errors.New("linear: inconsistent number of features in X rows")
		}
		a.Set(i, 0, 1)
		for j, v := range row {
			if math.IsNaN(v) {
				return fmt.Errorf("linear: NaN feature value at row %d", i)
			}
			a.Set(i, j+1, v)
		}
	}
	for i, v := range y {
		if math.IsNaN(v) {
			return fmt.Errorf("linear: NaN target value at row %d", i)
		}
	}

	var qr mat.QR
	qr.Factorize(a)
	var beta mat.VecDense
	if err := qr.SolveVecTo(&beta, false, mat.NewVecDense(len(y), y)); err != nil {
		return fmt.Errorf("linear: least squares solve: %w", err)
	}

	m.B = beta.AtVec(0)
	m.W = make([]float64, p)
	for j := 0; j < p; j++ {
		m.W[j] = beta.AtVec(j + 1)
	}
	m.fitted = true
	return nil
}

// Predict returns predictions for rows in X.
func (m *LinearRegression) Predict(X [][]float64) ([]float64, error) {
	if !m.fitted {
		return nil, errors.New("linear: model not fitted")
	}
	out := make([]float64, len(X))
	for i, row := range X {
		if len(row) != len(m.W) {
			return nil, fmt.Errorf("linear: row %d has %d features, model was fitted with %d", i, len(row), len(m.W))
		}
		sum := m.B
		for j, v := range row {
			sum += m.W[j] * v
		}
		out[i] = sum
	}
	return out, nil
}
