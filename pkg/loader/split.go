// Package loader splits feature/target data for training and evaluation.
package loader

import "math/rand"

// TrainTestSplit shuffles X, Y in unison with the given seed and splits them
// into train and test sets by ratio. A fixed seed makes splits reproducible.
func TrainTestSplit(X [][]float64, Y []float64, testRatio float64, seed int64) (XTrain, XTest [][]float64, YTrain, YTest []float64) {
	n := len(X)
	rnd := rand.New(rand.NewSource(seed))
	indices := rnd.Perm(n)
	nTest := int(float64(n) * testRatio)
	for i := 0; i < n; i++ {
		if i < nTest {
			XTest = append(XTest, X[indices[i]])
			YTest = append(YTest, Y[indices[i]])
		} else {
			XTrain = append(XTrain, X[indices[i]])
			YTrain = append(YTrain, Y[indices[i]])
		}
	}
	return
}

// Shuffle returns copies of X and Y shuffled in unison with the given seed.
func Shuffle(X [][]float64, Y []float64, seed int64) ([][]float64, []float64) {
	n := len(X)
	rnd := rand.New(rand.NewSource(seed))
	indices := rnd.Perm(n)
	XShuf := make([][]float64, n)
	YShuf := make([]float64, n)
	for i, idx := range indices {
		XShuf[i] = X[idx]
		YShuf[i] = Y[idx]
	}
	return XShuf, YShuf
}
