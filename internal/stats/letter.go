package stats

import "math"

// LetterBox is one nested box of a letter-value summary.
type LetterBox struct {
	Lower float64
	Upper float64
}

// LetterValues summarises a distribution as nested boxes around the median:
// the first box spans the quartiles, each next one halves the tail beyond it.
type LetterValues struct {
	Median   float64
	Boxes    []LetterBox // innermost first
	Outliers []float64
}

// LetterDepth returns how many boxes to draw for n values using Tukey's rule,
// floor(log2 n) - 3, never less than one.
func LetterDepth(n int) int {
	if n < 2 {
		return 1
	}
	return max(int(math.Log2(float64(n)))-3, 1)
}

// LetterValueSummary computes the letter values of the non-NaN values.
// Values beyond the outermost box are reported as outliers.
func LetterValueSummary(values []float64) LetterValues {
	xs := sortedPresent(values)
	if len(xs) == 0 {
		return LetterValues{Median: math.NaN()}
	}

	k := LetterDepth(len(xs))
	lv := LetterValues{
		Median: Quantile(xs, 0.5),
		Boxes:  make([]LetterBox, k),
	}
	for i := range k {
		tail := math.Pow(0.5, float64(i+2))
		lv.Boxes[i] = LetterBox{
			Lower: Quantile(xs, tail),
			Upper: Quantile(xs, 1-tail),
		}
	}

	outer := lv.Boxes[k-1]
	for _, x := range xs {
		if x < outer.Lower || x > outer.Upper {
			lv.Outliers = append(lv.Outliers, x)
		}
	}
	return lv
}
