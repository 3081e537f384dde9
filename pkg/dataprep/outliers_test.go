package dataprep

import (
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thecooked1/Housing-Price-Prediction/pkg/frame"
	"github.com/thecooked1/Housing-Price-Prediction/pkg/stats"
)

func outlierFrame() dataframe.DataFrame {
	return dataframe.New(
		series.New([]float64{10, 11, 12, 13, 14, 15, 16, 17, 18, 1000}, series.Float, "a"),
		series.New([]float64{5, 5, 6, 6, 7, 7, 8, 8, -500, 9}, series.Float, "b"),
	)
}

func TestRemoveOutliersDropsRows(t *testing.T) {
	out, err := RemoveOutliers(outlierFrame(), []string{"a"})
	require.NoError(t, err)
	assert.Equal(t, 9, out.Nrow())

	vals, err := frame.Floats(out, "a")
	require.NoError(t, err)
	assert.NotContains(t, vals, 1000.0)
}

func TestRemoveOutliersAllFencesHold(t *testing.T) {
	out, err := RemoveOutliers(outlierFrame(), []string{"a", "b"})
	require.NoError(t, err)

	for _, col := range []string{"a", "b"} {
		vals, err := frame.Floats(out, col)
		require.NoError(t, err)
		fence := stats.IQRFence(vals, FenceMultiplier)
		for _, v := range vals {
			assert.True(t, fence.Within(v), "column %s value %v outside fence", col, v)
		}
	}
}

func TestRemoveOutliersIdempotent(t *testing.T) {
	cols := []string{"a", "b"}
	once, err := RemoveOutliers(outlierFrame(), cols)
	require.NoError(t, err)
	twice, err := RemoveOutliers(once, cols)
	require.NoError(t, err)

	assert.Equal(t, once.Nrow(), twice.Nrow())
	for _, col := range cols {
		v1, err := frame.Floats(once, col)
		require.NoError(t, err)
		v2, err := frame.Floats(twice, col)
		require.NoError(t, err)
		assert.Equal(t, v1, v2)
	}
}

func TestRemoveOutliersSequentialFences(t *testing.T) {
	// the second column's fence is computed after the first column's
	// outlier row (carrying b = -500) is gone
	out, err := RemoveOutliers(outlierFrame(), []string{"b", "a"})
	require.NoError(t, err)
	a, err := frame.Floats(out, "a")
	require.NoError(t, err)
	assert.NotContains(t, a, 1000.0)
	b, err := frame.Floats(out, "b")
	require.NoError(t, err)
	assert.NotContains(t, b, -500.0)
}

func TestRemoveOutliersMissingColumn(t *testing.T) {
	_, err := RemoveOutliers(outlierFrame(), []string{"a", "nope"})
	var missing *frame.MissingColumnError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "nope", missing.Column)
}

func TestRemoveOutliersDoesNotMutateInput(t *testing.T) {
	df := outlierFrame()
	_, err := RemoveOutliers(df, []string{"a"})
	require.NoError(t, err)
	assert.Equal(t, 10, df.Nrow())
}

func TestRemoveOutliersNoColumns(t *testing.T) {
	out, err := RemoveOutliers(outlierFrame(), nil)
	require.NoError(t, err)
	assert.Equal(t, 10, out.Nrow())
}
