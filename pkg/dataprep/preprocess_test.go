package dataprep

import (
	"math"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thecooked1/Housing-Price-Prediction/pkg/frame"
)

func housingFrame() dataframe.DataFrame {
	return dataframe.New(
		series.New([]float64{10, 20, 30}, series.Float, "total_rooms"),
		series.New([]float64{2, 4, 5}, series.Float, "households"),
		series.New([]float64{4, 8, 9}, series.Float, "total_bedrooms"),
		series.New([]float64{100, 200, 300}, series.Float, "median_house_value"),
		series.New([]string{"INLAND", "NEAR BAY", "INLAND"}, series.String, "ocean_proximity"),
	)
}

func TestPreprocessRenamesTarget(t *testing.T) {
	out, err := Preprocess(housingFrame(), FillMean)
	require.NoError(t, err)
	assert.True(t, frame.HasColumn(out, "Price"))
	assert.False(t, frame.HasColumn(out, "median_house_value"))
}

func TestPreprocessDerivedFeatures(t *testing.T) {
	out, err := Preprocess(housingFrame(), FillMean)
	require.NoError(t, err)

	rph, err := frame.Floats(out, ColRoomsPerHousehold)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 5, 6}, rph)

	bpr, err := frame.Floats(out, ColBedroomsPerRoom)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.4, 0.4, 0.3}, bpr, 1e-12)
}

func TestPreprocessFillMean(t *testing.T) {
	df := dataframe.New(
		series.New([]float64{10, 20, 30}, series.Float, "total_rooms"),
		series.New([]float64{2, 4, 5}, series.Float, "households"),
		series.New([]float64{1, math.NaN(), 3}, series.Float, "total_bedrooms"),
	)
	out, err := Preprocess(df, FillMean)
	require.NoError(t, err)
	vals, err := frame.Floats(out, "total_bedrooms")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, vals)
}

func TestPreprocessFillMedian(t *testing.T) {
	df := dataframe.New(
		series.New([]float64{10, 20, 30, 40}, series.Float, "total_rooms"),
		series.New([]float64{2, 4, 5, 8}, series.Float, "households"),
		series.New([]float64{1, math.NaN(), 7, 100}, series.Float, "total_bedrooms"),
	)
	out, err := Preprocess(df, FillMedian)
	require.NoError(t, err)
	vals, err := frame.Floats(out, "total_bedrooms")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 7, 7, 100}, vals)
}

func TestPreprocessFillMode(t *testing.T) {
	df := dataframe.New(
		series.New([]float64{10, 20, 30, 40, 50}, series.Float, "total_rooms"),
		series.New([]float64{2, 4, 5, 8, 9}, series.Float, "households"),
		series.New([]float64{3, 3, 2, 2, math.NaN()}, series.Float, "total_bedrooms"),
	)
	out, err := Preprocess(df, FillMode)
	require.NoError(t, err)
	vals, err := frame.Floats(out, "total_bedrooms")
	require.NoError(t, err)
	// tie between 2 and 3: first modal value is the smaller
	assert.Equal(t, []float64{3, 3, 2, 2, 2}, vals)
}

func TestPreprocessNoMissingAfterFill(t *testing.T) {
	df := dataframe.New(
		series.New([]float64{10, math.NaN(), 30}, series.Float, "total_rooms"),
		series.New([]float64{math.NaN(), 4, 5}, series.Float, "households"),
		series.New([]float64{4, 8, math.NaN()}, series.Float, "total_bedrooms"),
	)
	out, err := Preprocess(df, FillMedian)
	require.NoError(t, err)
	for _, col := range []string{"total_rooms", "households", "total_bedrooms"} {
		vals, err := frame.Floats(out, col)
		require.NoError(t, err)
		assert.False(t, frame.HasNaN(vals), "column %s still has NaN", col)
	}
}

func TestPreprocessUnknownStrategy(t *testing.T) {
	_, err := Preprocess(housingFrame(), "most_frequent")
	var unknown *UnknownStrategyError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, FillStrategy("most_frequent"), unknown.Strategy)

	// strategy is validated even when nothing is missing
	df := dataframe.New(
		series.New([]float64{1, 2}, series.Float, "total_rooms"),
		series.New([]float64{1, 2}, series.Float, "households"),
		series.New([]float64{1, 2}, series.Float, "total_bedrooms"),
	)
	_, err = Preprocess(df, "")
	require.ErrorAs(t, err, &unknown)
}

func TestPreprocessDivisionByZeroPropagates(t *testing.T) {
	df := dataframe.New(
		series.New([]float64{10, 0}, series.Float, "total_rooms"),
		series.New([]float64{0, 4}, series.Float, "households"),
		series.New([]float64{4, 0}, series.Float, "total_bedrooms"),
	)
	out, err := Preprocess(df, FillMean)
	require.NoError(t, err)

	rph, err := frame.Floats(out, ColRoomsPerHousehold)
	require.NoError(t, err)
	assert.True(t, math.IsInf(rph[0], 1))

	bpr, err := frame.Floats(out, ColBedroomsPerRoom)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(bpr[1]))
}

func TestPreprocessMissingRatioColumn(t *testing.T) {
	df := dataframe.New(
		series.New([]float64{10, 20}, series.Float, "total_rooms"),
		series.New([]float64{2, 4}, series.Float, "households"),
	)
	_, err := Preprocess(df, FillMean)
	var missing *frame.MissingColumnError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "total_bedrooms", missing.Column)
}

func TestPreprocessDoesNotMutateInput(t *testing.T) {
	df := dataframe.New(
		series.New([]float64{10, math.NaN(), 30}, series.Float, "total_rooms"),
		series.New([]float64{2, 4, 5}, series.Float, "households"),
		series.New([]float64{4, 8, 9}, series.Float, "total_bedrooms"),
		series.New([]float64{100, 200, 300}, series.Float, "median_house_value"),
	)
	_, err := Preprocess(df, FillMean)
	require.NoError(t, err)

	assert.True(t, frame.HasColumn(df, "median_house_value"))
	assert.False(t, frame.HasColumn(df, ColRoomsPerHousehold))
	vals, err := frame.Floats(df, "total_rooms")
	require.NoError(t, err)
	assert.True(t, math.IsNaN(vals[1]))
}
