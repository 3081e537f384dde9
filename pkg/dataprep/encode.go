package dataprep

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/thecooked1/Housing-Price-Prediction/pkg/frame"
)

// OneHotEncode expands the named categorical column into one 0/1 float
// column per category, named "<col>_<category>" in first-seen order, and
// drops the original column. Returns a new frame.
func OneHotEncode(df dataframe.DataFrame, col string) (dataframe.DataFrame, error) {
	if !frame.HasColumn(df, col) {
		return dataframe.DataFrame{}, &frame.MissingColumnError{Column: col}
	}
	records := df.Col(col).Records()

	seen := map[string]struct{}{}
	var categories []string
	for _, v := range records {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			categories = append(categories, v)
		}
	}

	out := df.Copy()
	for _, cat := range categories {
		indicator := make([]float64, len(records))
		for i, v := range records {
			if v == cat {
				indicator[i] = 1
			}
		}
		out = out.Mutate(series.New(indicator, series.Float, col+"_"+cat))
	}
	out = out.Drop(col)
	if out.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("dataprep: one-hot encode %q: %w", col, out.Err)
	}
	return out, nil
}
