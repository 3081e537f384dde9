package loader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func splitData(n int) ([][]float64, []float64) {
	X := make([][]float64, n)
	Y := make([]float64, n)
	for i := 0; i < n; i++ {
		X[i] = []float64{float64(i)}
		Y[i] = float64(i)
	}
	return X, Y
}

func TestTrainTestSplitSizes(t *testing.T) {
	X, Y := splitData(10)
	XTrain, XTest, YTrain, YTest := TrainTestSplit(X, Y, 0.2, 42)

	assert.Len(t, XTest, 2)
	assert.Len(t, XTrain, 8)
	assert.Len(t, YTest, 2)
	assert.Len(t, YTrain, 8)
}

func TestTrainTestSplitKeepsPairsAligned(t *testing.T) {
	X, Y := splitData(20)
	XTrain, XTest, YTrain, YTest := TrainTestSplit(X, Y, 0.25, 1)

	for i := range XTrain {
		assert.Equal(t, XTrain[i][0], YTrain[i])
	}
	for i := range XTest {
		assert.Equal(t, XTest[i][0], YTest[i])
	}
}

func TestTrainTestSplitExhaustiveAndDisjoint(t *testing.T) {
	X, Y := splitData(12)
	XTrain, XTest, _, _ := TrainTestSplit(X, Y, 0.25, 7)

	seen := map[float64]int{}
	for _, row := range XTrain {
		seen[row[0]]++
	}
	for _, row := range XTest {
		seen[row[0]]++
	}
	require.Len(t, seen, 12)
	for v, count := range seen {
		assert.Equal(t, 1, count, "row %v appears %d times", v, count)
	}
}

func TestTrainTestSplitReproducible(t *testing.T) {
	X, Y := splitData(15)
	_, XTest1, _, _ := TrainTestSplit(X, Y, 0.2, 42)
	_, XTest2, _, _ := TrainTestSplit(X, Y, 0.2, 42)
	assert.Equal(t, XTest1, XTest2)
}

func TestShuffleReproducible(t *testing.T) {
	X, Y := splitData(10)
	X1, Y1 := Shuffle(X, Y, 3)
	X2, Y2 := Shuffle(X, Y, 3)
	assert.Equal(t, X1, X2)
	assert.Equal(t, Y1, Y2)

	for i := range X1 {
		assert.Equal(t, X1[i][0], Y1[i])
	}
}
