// Package dataprep cleans housing frames: target renaming, missing-value
// imputation, derived ratio features, one-hot encoding and IQR outlier
// removal. Every function returns a new frame; inputs are never mutated.
package dataprep

import (
	"fmt"
	"math"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/thecooked1/Housing-Price-Prediction/pkg/frame"
	"github.com/thecooked1/Housing-Price-Prediction/pkg/stats"
)

// FillStrategy selects the statistic used to impute missing numeric values.
type FillStrategy string

const (
	FillMean   FillStrategy = "mean"
	FillMedian FillStrategy = "median"
	FillMode   FillStrategy = "mode"
)

// UnknownStrategyError reports an unrecognized fill strategy name.
type UnknownStrategyError struct {
	Strategy FillStrategy
}

func (e *UnknownStrategyError) Error() string {
	return fmt.Sprintf("dataprep: fill strategy %q not recognized", string(e.Strategy))
}

// TargetColumn is the canonical name the raw median_house_value column is
// renamed to.
const TargetColumn = "Price"

const rawTargetColumn = "median_house_value"

// Columns the derived ratio features are computed from.
const (
	colTotalRooms    = "total_rooms"
	colHouseholds    = "households"
	colTotalBedrooms = "total_bedrooms"
)

// Names of the derived ratio features.
const (
	ColRoomsPerHousehold = "Rooms_Per_Household"
	ColBedroomsPerRoom   = "Bedrooms_Per_Room"
)

// Preprocess cleans the frame: renames median_house_value to Price if
// present, imputes missing values in every numeric column according to the
// fill strategy, and recomputes the two derived ratio features
// Rooms_Per_Household and Bedrooms_Per_Room. The input frame is left
// untouched.
//
// An unrecognized strategy fails with an UnknownStrategyError regardless of
// whether any column has missing values. Division by zero in the derived
// ratios propagates IEEE Inf/NaN unchanged.
func Preprocess(df dataframe.DataFrame, strategy FillStrategy) (dataframe.DataFrame, error) {
	switch strategy {
	case FillMean, FillMedian, FillMode:
	default:
		return dataframe.DataFrame{}, &UnknownStrategyError{Strategy: strategy}
	}

	out := df.Copy()
	if frame.HasColumn(out, rawTargetColumn) {
		out = out.Rename(TargetColumn, rawTargetColumn)
	}

	for _, name := range frame.NumericColumns(out) {
		vals, err := frame.Floats(out, name)
		if err != nil {
			return dataframe.DataFrame{}, err
		}
		if !frame.HasNaN(vals) {
			continue
		}
		out = out.Mutate(series.New(impute(vals, strategy), series.Float, name))
	}

	rooms, err := frame.Floats(out, colTotalRooms)
	if err != nil {
		return dataframe.DataFrame{}, err
	}
	households, err := frame.Floats(out, colHouseholds)
	if err != nil {
		return dataframe.DataFrame{}, err
	}
	bedrooms, err := frame.Floats(out, colTotalBedrooms)
	if err != nil {
		return dataframe.DataFrame{}, err
	}

	roomsPerHousehold := make([]float64, len(rooms))
	bedroomsPerRoom := make([]float64, len(rooms))
	for i := range rooms {
		roomsPerHousehold[i] = rooms[i] / households[i]
		bedroomsPerRoom[i] = bedrooms[i] / rooms[i]
	}
	out = out.Mutate(series.New(roomsPerHousehold, series.Float, ColRoomsPerHousehold))
	out = out.Mutate(series.New(bedroomsPerRoom, series.Float, ColBedroomsPerRoom))

	if out.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("dataprep: preprocess: %w", out.Err)
	}
	return out, nil
}

// impute replaces NaN entries with the strategy's statistic computed over
// the non-missing values. Returns a new slice.
func impute(vals []float64, strategy FillStrategy) []float64 {
	valid := frame.DropNaN(vals)
	var fill float64
	switch strategy {
	case FillMean:
		fill = stats.Mean(valid)
	case FillMedian:
		fill = stats.Median(valid)
	case FillMode:
		fill = stats.Mode(valid)
	}
	out := make([]float64, len(vals))
	for i, v := range vals {
		if math.IsNaN(v) {
			out[i] = fill
		} else {
			out[i] = v
		}
	}
	return out
}
