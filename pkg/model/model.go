// Package model provides the two regression trainers, their shared
// interface, and regression metrics.
package model

// Regressor is the capability set shared by the trainers: fit on features
// and a target, then predict.
type Regressor interface {
	Fit(X [][]float64, y []float64) error
	Predict(X [][]float64) ([]float64, error)
}
