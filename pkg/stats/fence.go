package stats

// Fence is the closed interval classifying values as outliers: anything
// outside [Lower, Upper] is an outlier.
type Fence struct {
	Lower float64
	Upper float64
}

// Within reports whether v lies inside the fence. NaN never satisfies a
// fence since both comparisons fail.
func (f Fence) Within(v float64) bool {
	return v >= f.Lower && v <= f.Upper
}

// IQRFence computes the interquartile-range fence for x with multiplier k:
// [Q1 - k*IQR, Q3 + k*IQR] where IQR = Q3 - Q1.
func IQRFence(x []float64, k float64) Fence {
	q1 := Percentile(x, 25)
	q3 := Percentile(x, 75)
	iqr := q3 - q1
	return Fence{Lower: q1 - k*iqr, Upper: q3 + k*iqr}
}
