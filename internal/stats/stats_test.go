package stats

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var amounts = []float64{53, 64, 73, 90, 49, 20, 85, 34, 97, 31}

func TestDescribe(t *testing.T) {
	s := Describe("Purchase Amount (USD)", amounts)

	assert.Equal(t, "Purchase Amount (USD)", s.Column)
	assert.Equal(t, 10, s.Count)
	assert.InDelta(t, 59.6, s.Mean, 1e-9)
	assert.InDelta(t, 20, s.Min, 1e-9)
	assert.InDelta(t, 97, s.Max, 1e-9)
	assert.InDelta(t, 37.75, s.Q1, 1e-9)
	assert.InDelta(t, 58.5, s.Median, 1e-9)
	assert.InDelta(t, 82, s.Q3, 1e-9)

	var ss float64
	for _, a := range amounts {
		ss += (a - 59.6) * (a - 59.6)
	}
	assert.InDelta(t, math.Sqrt(ss/9), s.Std, 1e-9)
}

func TestDescribe_SkipsNaN(t *testing.T) {
	s := Describe("Review Rating", []float64{3.1, math.NaN(), 4.8})

	assert.Equal(t, 2, s.Count)
	assert.InDelta(t, 3.95, s.Mean, 1e-9)
	assert.InDelta(t, 3.1, s.Min, 1e-9)
	assert.InDelta(t, 4.8, s.Max, 1e-9)
}

func TestDescribe_Degenerate(t *testing.T) {
	empty := Describe("x", nil)
	assert.Equal(t, 0, empty.Count)
	assert.True(t, math.IsNaN(empty.Mean))
	assert.True(t, math.IsNaN(empty.Max))

	single := Describe("x", []float64{7})
	assert.Equal(t, 1, single.Count)
	assert.InDelta(t, 7, single.Mean, 1e-9)
	assert.True(t, math.IsNaN(single.Std), "sample std of one value is undefined")
	assert.InDelta(t, 7, single.Q3, 1e-9)
}

func TestQuantile(t *testing.T) {
	sorted := []float64{1, 2, 3, 4}

	tests := []struct {
		p    float64
		want float64
	}{
		{0, 1},
		{0.25, 1.75},
		{0.5, 2.5},
		{0.75, 3.25},
		{1, 4},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, Quantile(sorted, tt.p), 1e-9, "p=%v", tt.p)
	}
	assert.True(t, math.IsNaN(Quantile(nil, 0.5)))
}

func TestValueCounts(t *testing.T) {
	labels := []string{"Footwear", "Clothing", "", "Clothing", "Footwear", "Clothing", "Outerwear"}

	got := ValueCounts(labels)

	assert.Equal(t, []Count{
		{Value: "Clothing", N: 3},
		{Value: "Footwear", N: 2},
		{Value: "Outerwear", N: 1},
	}, got)
}

func TestValueCounts_TiesKeepFirstAppearance(t *testing.T) {
	got := ValueCounts([]string{"Sandals", "Coat", "Shirt", "Coat", "Shirt"})

	require.Len(t, got, 3)
	assert.Equal(t, "Coat", got[0].Value)
	assert.Equal(t, "Shirt", got[1].Value)
	assert.Equal(t, "Sandals", got[2].Value)
}

func TestShares(t *testing.T) {
	counts := ValueCounts([]string{"Clothing", "Footwear", "Clothing", "Clothing", "Footwear"})

	shares := Shares(counts)

	require.Len(t, shares, 2)
	assert.Equal(t, "Clothing", shares[0].Value)
	assert.InDelta(t, 0.6, shares[0].Fraction, 1e-9)
	assert.Equal(t, "Footwear", shares[1].Value)
	assert.InDelta(t, 0.4, shares[1].Fraction, 1e-9)

	assert.Empty(t, Shares(nil))
}

func TestMeanBy(t *testing.T) {
	t.Run("two winter rows", func(t *testing.T) {
		got := MeanBy([]string{"Winter", "Winter"}, []float64{10, 20}, nil)
		assert.Equal(t, []GroupMean{{Group: "Winter", Mean: 15, N: 2}}, got)
	})

	t.Run("order then appearance", func(t *testing.T) {
		labels := []string{"Summer", "Monsoon", "Winter", "Summer", ""}
		values := []float64{20, 5, 30, 40, 1000}

		got := MeanBy(labels, values, []string{"Winter", "Spring", "Summer", "Fall"})

		require.Len(t, got, 3)
		assert.Equal(t, "Winter", got[0].Group)
		assert.InDelta(t, 30, got[0].Mean, 1e-9)
		assert.Equal(t, "Summer", got[1].Group)
		assert.InDelta(t, 30, got[1].Mean, 1e-9)
		assert.Equal(t, "Monsoon", got[2].Group)
	})

	t.Run("skips NaN", func(t *testing.T) {
		got := MeanBy([]string{"Fall", "Fall"}, []float64{math.NaN(), 8}, nil)
		require.Len(t, got, 1)
		assert.InDelta(t, 8, got[0].Mean, 1e-9)
		assert.Equal(t, 1, got[0].N)
	})
}

func TestLevelsAndGroupValues(t *testing.T) {
	labels := []string{"Clothing", "Footwear", "Clothing", "", "Accessories"}
	values := []float64{1, 2, 3, 4, math.NaN()}

	levels := Levels(labels)
	assert.Equal(t, []string{"Clothing", "Footwear", "Accessories"}, levels)

	groups := GroupValues(labels, values, levels)
	assert.Equal(t, [][]float64{{1, 3}, {2}, nil}, groups)
}

func TestKDE(t *testing.T) {
	kde := NewKDE(amounts)

	assert.Equal(t, 10, kde.Len())
	assert.Positive(t, kde.Bandwidth())

	xs, ys := kde.Curve(0, 512)
	require.Len(t, xs, 512)
	assert.InDelta(t, 20, xs[0], 1e-9)
	assert.InDelta(t, 97, xs[511], 1e-9)

	// Integrates to roughly one over a wide support.
	xs, ys = kde.Curve(5, 2000)
	step := xs[1] - xs[0]
	var area float64
	for _, y := range ys {
		area += y * step
	}
	assert.InDelta(t, 1, area, 0.01)
}

func TestKDE_Degenerate(t *testing.T) {
	empty := NewKDE(nil)
	assert.Zero(t, empty.Density(3))
	xs, ys := empty.Curve(2, 10)
	assert.Nil(t, xs)
	assert.Nil(t, ys)

	constant := NewKDE([]float64{5, 5, 5})
	assert.InDelta(t, 1, constant.Bandwidth(), 1e-9)
	assert.Greater(t, constant.Density(5), constant.Density(7))
}

func TestLetterDepth(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{1, 1},
		{10, 1},
		{16, 1},
		{32, 2},
		{160, 4},
		{3900, 8},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LetterDepth(tt.n), "n=%d", tt.n)
	}
}

func TestLetterValueSummary(t *testing.T) {
	xs := make([]float64, 64)
	for i := range xs {
		xs[i] = float64(i + 1)
	}
	xs = append(xs, 500)

	lv := LetterValueSummary(xs)

	require.Len(t, lv.Boxes, 3)
	assert.InDelta(t, 33, lv.Median, 1e-9)
	for i := 1; i < len(lv.Boxes); i++ {
		assert.Less(t, lv.Boxes[i].Lower, lv.Boxes[i-1].Lower, "box %d widens downward", i)
		assert.Greater(t, lv.Boxes[i].Upper, lv.Boxes[i-1].Upper, "box %d widens upward", i)
	}
	assert.Contains(t, lv.Outliers, 500.0)

	empty := LetterValueSummary(nil)
	assert.True(t, math.IsNaN(empty.Median))
	assert.Empty(t, empty.Boxes)
}

func TestSummary_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Describe("Age", []float64{30}))
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, "Age", got["column"])
	assert.InDelta(t, 30, got["mean"], 1e-9)
	assert.Nil(t, got["std"])
}
