package stats

import (
	"math"
	"slices"
)

// Count is the number of rows holding one label.
type Count struct {
	Value string `json:"value"`
	N     int    `json:"n"`
}

// Share is the fraction of labelled rows holding one label.
type Share struct {
	Value    string  `json:"value"`
	Fraction float64 `json:"fraction"`
}

// GroupMean is the mean of a numeric column over the rows of one label.
type GroupMean struct {
	Group string  `json:"group"`
	Mean  float64 `json:"mean"`
	N     int     `json:"n"`
}

// ValueCounts counts each non-empty label, most frequent first.
// Labels with equal counts keep the order in which they first appear.
func ValueCounts(labels []string) []Count {
	index := make(map[string]int)
	var counts []Count
	for _, l := range labels {
		if l == "" {
			continue
		}
		i, ok := index[l]
		if !ok {
			i = len(counts)
			index[l] = i
			counts = append(counts, Count{Value: l})
		}
		counts[i].N++
	}

	slices.SortStableFunc(counts, func(a, b Count) int {
		return b.N - a.N
	})
	return counts
}

// Shares converts counts into fractions of their total, keeping order.
func Shares(counts []Count) []Share {
	total := 0
	for _, c := range counts {
		total += c.N
	}
	shares := make([]Share, len(counts))
	for i, c := range counts {
		shares[i] = Share{Value: c.Value}
		if total > 0 {
			shares[i].Fraction = float64(c.N) / float64(total)
		}
	}
	return shares
}

// MeanBy averages values per label. labels and values are parallel; rows
// with an empty label or a NaN value are skipped. Groups are returned in the
// given order first, then any other labels in order of first appearance.
// Listed groups with no rows are omitted.
func MeanBy(labels []string, values []float64, order []string) []GroupMean {
	type acc struct {
		sum float64
		n   int
	}
	sums := make(map[string]*acc)
	var seen []string
	for i, l := range labels {
		if l == "" || i >= len(values) || math.IsNaN(values[i]) {
			continue
		}
		a, ok := sums[l]
		if !ok {
			a = &acc{}
			sums[l] = a
			seen = append(seen, l)
		}
		a.sum += values[i]
		a.n++
	}

	keys := make([]string, 0, len(seen))
	for _, g := range order {
		if _, ok := sums[g]; ok && !slices.Contains(keys, g) {
			keys = append(keys, g)
		}
	}
	for _, g := range seen {
		if !slices.Contains(keys, g) {
			keys = append(keys, g)
		}
	}

	means := make([]GroupMean, len(keys))
	for i, g := range keys {
		a := sums[g]
		means[i] = GroupMean{Group: g, Mean: a.sum / float64(a.n), N: a.n}
	}
	return means
}

// Levels returns the distinct non-empty labels in order of first appearance.
func Levels(labels []string) []string {
	var levels []string
	seen := make(map[string]bool)
	for _, l := range labels {
		if l == "" || seen[l] {
			continue
		}
		seen[l] = true
		levels = append(levels, l)
	}
	return levels
}

// GroupValues splits values by label, keyed in the order of levels.
// Rows with an empty label or a NaN value are skipped.
func GroupValues(labels []string, values []float64, levels []string) [][]float64 {
	pos := make(map[string]int, len(levels))
	for i, l := range levels {
		pos[l] = i
	}
	groups := make([][]float64, len(levels))
	for i, l := range labels {
		j, ok := pos[l]
		if !ok || i >= len(values) || math.IsNaN(values[i]) {
			continue
		}
		groups[j] = append(groups[j], values[i])
	}
	return groups
}
