package dataprep

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"

	"github.com/thecooked1/Housing-Price-Prediction/pkg/frame"
	"github.com/thecooked1/Housing-Price-Prediction/pkg/stats"
)

// FenceMultiplier scales the interquartile range when computing outlier
// fences.
const FenceMultiplier = 1.5

// RemoveOutliers returns a new frame containing only rows whose value in
// every listed column lies within that column's IQR fence
// [Q1 - 1.5*IQR, Q3 + 1.5*IQR].
//
// Columns are filtered sequentially in the given order: each column's fence
// is computed from the rows surviving the previous columns, not from the
// original frame. Rows are dropped, never capped; a NaN value never
// satisfies a fence. Fails with a MissingColumnError if a requested column
// is absent.
func RemoveOutliers(df dataframe.DataFrame, cols []string) (dataframe.DataFrame, error) {
	out := df.Copy()
	for _, col := range cols {
		if !frame.HasColumn(out, col) {
			return dataframe.DataFrame{}, &frame.MissingColumnError{Column: col}
		}
		if out.Nrow() == 0 {
			break
		}
		vals, err := frame.Floats(out, col)
		if err != nil {
			return dataframe.DataFrame{}, err
		}
		fence := stats.IQRFence(frame.DropNaN(vals), FenceMultiplier)
		keep := make([]int, 0, len(vals))
		for i, v := range vals {
			if fence.Within(v) {
				keep = append(keep, i)
			}
		}
		out = out.Subset(keep)
		if out.Err != nil {
			return dataframe.DataFrame{}, fmt.Errorf("dataprep: remove outliers on %q: %w", col, out.Err)
		}
	}
	return out, nil
}
