package visualize

import (
	"math"

	"github.com/thecooked1/Housing-Price-Prediction/pkg/stats"
)

// silvermanBandwidth is the rule-of-thumb kernel bandwidth 1.06*sd*n^(-1/5).
func silvermanBandwidth(x []float64) float64 {
	sd := stats.Std(x)
	if sd == 0 {
		sd = 1
	}
	return 1.06 * sd * math.Pow(float64(len(x)), -0.2)
}

// kdeGrid returns evenly spaced evaluation points spanning the data, padded
// by one bandwidth on each side.
func kdeGrid(x []float64, h float64, n int) []float64 {
	min, max := stats.MinMax(x)
	lo, hi := min-h, max+h
	grid := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range grid {
		grid[i] = lo + float64(i)*step
	}
	return grid
}

// kde evaluates a gaussian kernel density estimate of x at each grid point.
func kde(x []float64, grid []float64, h float64) []float64 {
	norm := 1 / (float64(len(x)) * h * math.Sqrt(2*math.Pi))
	out := make([]float64, len(grid))
	for i, g := range grid {
		sum := 0.0
		for _, v := range x {
			z := (g - v) / h
			sum += math.Exp(-0.5 * z * z)
		}
		out[i] = norm * sum
	}
	return out
}
