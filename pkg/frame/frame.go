// Package frame provides small helpers over gota dataframes shared by the
// preprocessing and visualization layers.
package frame

import (
	"fmt"
	"math"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// MissingColumnError reports a requested column that is absent from a frame.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("frame: column %q not found", e.Column)
}

// HasColumn reports whether the frame contains a column with the given name.
func HasColumn(df dataframe.DataFrame, name string) bool {
	for _, n := range df.Names() {
		if n == name {
			return true
		}
	}
	return false
}

// Floats returns a copy of the named column as float64 values, with NaN for
// missing entries. Returns a MissingColumnError if the column is absent.
func Floats(df dataframe.DataFrame, name string) ([]float64, error) {
	if !HasColumn(df, name) {
		return nil, &MissingColumnError{Column: name}
	}
	return df.Col(name).Float(), nil
}

// NumericColumns returns the names of all float and int columns, in frame
// order.
func NumericColumns(df dataframe.DataFrame) []string {
	names := df.Names()
	types := df.Types()
	var out []string
	for i, t := range types {
		if t == series.Float || t == series.Int {
			out = append(out, names[i])
		}
	}
	return out
}

// HasNaN reports whether the slice contains any NaN value.
func HasNaN(x []float64) bool {
	for _, v := range x {
		if math.IsNaN(v) {
			return true
		}
	}
	return false
}

// DropNaN returns a copy of x without NaN values.
func DropNaN(x []float64) []float64 {
	out := make([]float64, 0, len(x))
	for _, v := range x {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}

// Matrix converts the given columns into row-major [][]float64 features.
// Returns a MissingColumnError for the first absent column.
func Matrix(df dataframe.DataFrame, cols []string) ([][]float64, error) {
	colVals := make([][]float64, len(cols))
	for j, c := range cols {
		vals, err := Floats(df, c)
		if err != nil {
			return nil, err
		}
		colVals[j] = vals
	}
	X := make([][]float64, df.Nrow())
	for i := range X {
		row := make([]float64, len(cols))
		for j := range cols {
			row[j] = colVals[j][i]
		}
		X[i] = row
	}
	return X, nil
}
