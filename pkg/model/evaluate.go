package model

import (
	"errors"
	"fmt"
	"math"
)

// Metrics maps metric names to scores. Records are built once by Evaluate
// and not modified afterwards.
type Metrics map[string]float64

// Evaluate scores a fitted model against held-out data, returning R2
// (coefficient of determination) and MSE (mean squared error), each rounded
// to 4 decimal places.
func Evaluate(m Regressor, XTest [][]float64, yTest []float64) (Metrics, error) {
	if len(yTest) == 0 {
		return nil, errors.New("model: evaluate: empty test set")
	}
	yPred, err := m.Predict(XTest)
	if err != nil {
		return nil, fmt.Errorf("model: evaluate: %w", err)
	}
	if len(yPred) != len(yTest) {
		return nil, errors.New("model: evaluate: prediction and target length mismatch")
	}
	return Metrics{
		"R2":  round4(R2(yTest, yPred)),
		"MSE": round4(MSE(yTest, yPred)),
	}, nil
}

func round4(v float64) float64 { return math.Round(v*1e4) / 1e4 }
