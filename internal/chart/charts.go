package chart

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/leapstack-labs/shoptrends/internal/dataset"
	"github.com/leapstack-labs/shoptrends/internal/stats"
)

// kdePoints is the resolution of density curves.
const kdePoints = 200

func newPlot(title, xLabel, yLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	return p
}

// Histogram plots the binned frequency of values with a kernel density
// estimate scaled to the bar heights.
func Histogram(title, xLabel, yLabel string, values []float64, bins int) (*plot.Plot, error) {
	p := newPlot(title, xLabel, yLabel)
	xs := dataset.DropMissing(values)
	if len(xs) == 0 {
		return p, nil
	}

	h, err := plotter.NewHist(plotter.Values(xs), bins)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", title, err)
	}
	h.FillColor = lighten(plotutil.Color(0), 0.3)
	h.LineStyle.Color = plotutil.Color(0)
	p.Add(h)

	kx, ky := stats.NewKDE(xs).Curve(0, kdePoints)
	scale := float64(len(xs)) * h.Width
	curve := make(plotter.XYs, len(kx))
	for i := range kx {
		curve[i] = plotter.XY{X: kx[i], Y: ky[i] * scale}
	}
	line, err := plotter.NewLine(curve)
	if err != nil {
		return nil, fmt.Errorf("%s: density: %w", title, err)
	}
	line.Color = plotutil.Color(0)
	line.Width = vg.Points(1.5)
	p.Add(line)
	return p, nil
}

// PieShares returns the share of each label, most frequent first.
func PieShares(labels []string) []stats.Share {
	return stats.Shares(stats.ValueCounts(labels))
}

// Pie plots the proportional breakdown of labels as wedges annotated with
// their percentage.
func Pie(title string, labels []string) (*plot.Plot, error) {
	p := newPlot(title, "", "")
	p.HideAxes()

	shares := PieShares(labels)
	if len(shares) == 0 {
		return p, nil
	}

	label := p.X.Tick.Label
	label.XAlign = text.XCenter
	label.YAlign = text.YCenter
	p.Add(&pieChart{shares: shares, label: label})
	return p, nil
}

// CountBar plots horizontal bars of label frequency, most frequent on top.
func CountBar(title, yLabel string, labels []string) (*plot.Plot, error) {
	p := newPlot(title, "Frequency", yLabel)
	counts := stats.ValueCounts(labels)
	if len(counts) == 0 {
		return p, nil
	}

	// Bars are laid out bottom-up, so the ranking is reversed.
	n := len(counts)
	values := make(plotter.Values, n)
	names := make([]string, n)
	for i, c := range counts {
		values[n-1-i] = float64(c.N)
		names[n-1-i] = c.Value
	}

	width := min(vg.Points(18), vg.Points(160)/vg.Length(n))
	bars, err := plotter.NewBarChart(values, width)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", title, err)
	}
	bars.Horizontal = true
	bars.Color = plotutil.Color(0)
	bars.LineStyle.Width = 0
	p.Add(bars)
	p.NominalY(names...)
	return p, nil
}

// Box plots the median, quartiles, whiskers and outliers of values.
func Box(title, yLabel string, values []float64) (*plot.Plot, error) {
	p := newPlot(title, "", yLabel)
	p.HideX()
	xs := dataset.DropMissing(values)
	if len(xs) == 0 {
		return p, nil
	}

	b, err := plotter.NewBoxPlot(vg.Points(80), 0, plotter.Values(xs))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", title, err)
	}
	b.FillColor = plotutil.Color(0)
	p.Add(b)
	return p, nil
}

// MeanLine plots the mean of values per group, connecting the groups in
// order with circle markers.
func MeanLine(title, xLabel, yLabel string, groups []string, values []float64, order []string) (*plot.Plot, error) {
	p := newPlot(title, xLabel, yLabel)
	means := stats.MeanBy(groups, values, order)
	if len(means) == 0 {
		return p, nil
	}

	pts := make(plotter.XYs, len(means))
	names := make([]string, len(means))
	for i, m := range means {
		pts[i] = plotter.XY{X: float64(i), Y: m.Mean}
		names[i] = m.Group
	}

	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", title, err)
	}
	line.Color = plotutil.Color(0)
	points.Shape = draw.CircleGlyph{}
	points.Color = plotutil.Color(0)
	points.Radius = vg.Points(3)
	p.Add(line, points)
	p.NominalX(names...)
	return p, nil
}

// Scatter plots y against x for rows where both are present.
func Scatter(title, xLabel, yLabel string, x, y []float64) (*plot.Plot, error) {
	p := newPlot(title, xLabel, yLabel)

	pts := make(plotter.XYs, 0, len(x))
	for i := range min(len(x), len(y)) {
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) {
			continue
		}
		pts = append(pts, plotter.XY{X: x[i], Y: y[i]})
	}
	if len(pts) == 0 {
		return p, nil
	}

	s, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", title, err)
	}
	s.Shape = draw.CircleGlyph{}
	s.Color = plotutil.Color(0)
	s.Radius = vg.Points(2)
	p.Add(s)
	return p, nil
}

// Violin plots the density shape of values for each group level, with the
// interquartile range and median marked inside.
func Violin(title, xLabel, yLabel string, groups []string, values []float64) (*plot.Plot, error) {
	p := newPlot(title, xLabel, yLabel)
	levels := stats.Levels(groups)
	if len(levels) == 0 {
		return p, nil
	}

	v := newViolins(stats.GroupValues(groups, values, levels))
	if v.empty() {
		return p, nil
	}
	p.Add(v)
	p.NominalX(levels...)
	return p, nil
}

// Boxen plots stepped letter-value boxes of values for each group level,
// with the points beyond the outermost box drawn as outliers.
func Boxen(title, xLabel, yLabel string, groups []string, values []float64) (*plot.Plot, error) {
	p := newPlot(title, xLabel, yLabel)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = text.XRight
	p.X.Tick.Label.YAlign = text.YCenter

	levels := stats.Levels(groups)
	if len(levels) == 0 {
		return p, nil
	}

	b := newBoxens(stats.GroupValues(groups, values, levels))
	if b.empty() {
		return p, nil
	}
	p.Add(b)
	p.NominalX(levels...)
	return p, nil
}
