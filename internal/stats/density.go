package stats

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// KDE is a Gaussian kernel density estimate with Scott's bandwidth.
type KDE struct {
	samples   []float64
	bandwidth float64
}

// NewKDE builds an estimate over the non-NaN values. When the values have no
// spread the bandwidth falls back to 1.
func NewKDE(values []float64) KDE {
	xs := sortedPresent(values)
	bw := 1.0
	if len(xs) > 1 {
		if sd := stat.StdDev(xs, nil); sd > 0 {
			bw = sd * math.Pow(float64(len(xs)), -0.2)
		}
	}
	return KDE{samples: xs, bandwidth: bw}
}

// Bandwidth returns the kernel standard deviation.
func (k KDE) Bandwidth() float64 {
	return k.bandwidth
}

// Len returns the number of samples behind the estimate.
func (k KDE) Len() int {
	return len(k.samples)
}

// Density evaluates the estimate at x. It is zero for an empty estimate.
func (k KDE) Density(x float64) float64 {
	if len(k.samples) == 0 {
		return 0
	}
	norm := 1 / (float64(len(k.samples)) * k.bandwidth * math.Sqrt(2*math.Pi))
	var sum float64
	for _, s := range k.samples {
		z := (x - s) / k.bandwidth
		sum += math.Exp(-0.5 * z * z)
	}
	return sum * norm
}

// Curve evaluates the estimate at n evenly spaced points spanning the sample
// range widened by cut bandwidths on each side. It returns nil for an empty
// estimate or n < 2.
func (k KDE) Curve(cut float64, n int) (xs, ys []float64) {
	if len(k.samples) == 0 || n < 2 {
		return nil, nil
	}
	lo := k.samples[0] - cut*k.bandwidth
	hi := k.samples[len(k.samples)-1] + cut*k.bandwidth
	xs = make([]float64, n)
	floats.Span(xs, lo, hi)
	ys = make([]float64, n)
	for i, x := range xs {
		ys[i] = k.Density(x)
	}
	return xs, ys
}
