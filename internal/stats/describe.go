// Package stats computes the summaries the reporter prints and the charts
// draw: descriptive statistics, value counts, grouped means, kernel density
// estimates and letter values.
//
// Functions take plain slices and ignore NaN entries, which is how the
// dataset package represents missing numeric cells.
package stats

import (
	"encoding/json"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary holds the descriptive statistics of one numeric column.
type Summary struct {
	Column string  `json:"column"`
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Std    float64 `json:"std"`
	Min    float64 `json:"min"`
	Q1     float64 `json:"q1"`
	Median float64 `json:"median"`
	Q3     float64 `json:"q3"`
	Max    float64 `json:"max"`
}

// Describe summarises values. Std is the sample standard deviation; it is
// NaN when fewer than two values are present. An empty column yields a zero
// count and NaN everywhere else.
func Describe(column string, values []float64) Summary {
	xs := sortedPresent(values)
	s := Summary{Column: column, Count: len(xs)}
	if len(xs) == 0 {
		nan := math.NaN()
		s.Mean, s.Std, s.Min, s.Q1, s.Median, s.Q3, s.Max = nan, nan, nan, nan, nan, nan, nan
		return s
	}

	s.Mean, s.Std = stat.MeanStdDev(xs, nil)
	if len(xs) < 2 {
		s.Std = math.NaN()
	}
	s.Min = floats.Min(xs)
	s.Max = floats.Max(xs)
	s.Q1 = Quantile(xs, 0.25)
	s.Median = Quantile(xs, 0.5)
	s.Q3 = Quantile(xs, 0.75)
	return s
}

// MarshalJSON encodes undefined statistics, such as the std of a single
// value, as null.
func (s Summary) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Column string   `json:"column"`
		Count  int      `json:"count"`
		Mean   *float64 `json:"mean"`
		Std    *float64 `json:"std"`
		Min    *float64 `json:"min"`
		Q1     *float64 `json:"q1"`
		Median *float64 `json:"median"`
		Q3     *float64 `json:"q3"`
		Max    *float64 `json:"max"`
	}{
		Column: s.Column,
		Count:  s.Count,
		Mean:   finite(s.Mean),
		Std:    finite(s.Std),
		Min:    finite(s.Min),
		Q1:     finite(s.Q1),
		Median: finite(s.Median),
		Q3:     finite(s.Q3),
		Max:    finite(s.Max),
	})
}

func finite(f float64) *float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

// Quantile returns the p-quantile of sorted, interpolating linearly between
// the two closest ranks. sorted must be in ascending order without NaN.
func Quantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	switch {
	case n == 0:
		return math.NaN()
	case p <= 0:
		return sorted[0]
	case p >= 1:
		return sorted[n-1]
	}

	h := p * float64(n-1)
	lo := math.Floor(h)
	i := int(lo)
	if i >= n-1 {
		return sorted[n-1]
	}
	return sorted[i] + (h-lo)*(sorted[i+1]-sorted[i])
}

// sortedPresent returns the non-NaN values of xs in ascending order.
func sortedPresent(xs []float64) []float64 {
	out := make([]float64, 0, len(xs))
	for _, x := range xs {
		if !math.IsNaN(x) {
			out = append(out, x)
		}
	}
	slices.Sort(out)
	return out
}
