package chart

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/leapstack-labs/shoptrends/internal/stats"
)

const (
	// groupHalfWidth is half the horizontal room of one group, in data units.
	groupHalfWidth = 0.4

	// violinCut extends density curves this many bandwidths past the data.
	violinCut = 2
)

var outline = draw.LineStyle{Color: color.Gray{Y: 0x40}, Width: vg.Points(0.75)}

// lighten blends c towards white by t in [0, 1].
func lighten(c color.Color, t float64) color.Color {
	r, g, b, _ := c.RGBA()
	mix := func(v uint32) uint8 {
		f := float64(v >> 8)
		return uint8(f + (255-f)*t)
	}
	return color.RGBA{R: mix(r), G: mix(g), B: mix(b), A: 0xff}
}

// pieChart draws wedges counter-clockwise from twelve o'clock, sized to fit
// the smaller side of the canvas.
type pieChart struct {
	shares []stats.Share
	label  text.Style
}

func (pc *pieChart) Plot(c draw.Canvas, _ *plot.Plot) {
	center := vg.Point{X: (c.Min.X + c.Max.X) / 2, Y: (c.Min.Y + c.Max.Y) / 2}
	r := min(c.Max.X-c.Min.X, c.Max.Y-c.Min.Y) * 0.4
	at := func(angle float64, radius vg.Length) vg.Point {
		return vg.Point{
			X: center.X + radius*vg.Length(math.Cos(angle)),
			Y: center.Y + radius*vg.Length(math.Sin(angle)),
		}
	}

	start := math.Pi / 2
	for i, s := range pc.shares {
		sweep := 2 * math.Pi * s.Fraction
		steps := max(int(sweep/(math.Pi/90)), 1)

		wedge := make([]vg.Point, 0, steps+2)
		wedge = append(wedge, center)
		for k := 0; k <= steps; k++ {
			wedge = append(wedge, at(start+sweep*float64(k)/float64(steps), r))
		}
		c.FillPolygon(plotutil.Color(i), wedge)

		mid := start + sweep/2
		c.FillText(pc.label, at(mid, r*0.6), fmt.Sprintf("%.1f%%", s.Fraction*100))
		c.FillText(pc.label, at(mid, r*1.15), s.Value)
		start += sweep
	}
}

// violinShape is the density outline and quartiles of one group.
type violinShape struct {
	at      []float64
	density []float64
	min     float64
	max     float64
	q1      float64
	median  float64
	q3      float64
}

// violins draws one violin per group at x = 0, 1, ... with widths scaled
// against the densest point across all groups.
type violins struct {
	shapes []*violinShape
	peak   float64
	yMin   float64
	yMax   float64
}

func newViolins(groups [][]float64) *violins {
	v := &violins{
		shapes: make([]*violinShape, len(groups)),
		yMin:   math.Inf(1),
		yMax:   math.Inf(-1),
	}
	for i, g := range groups {
		if len(g) == 0 {
			continue
		}
		s := stats.Describe("", g)
		at, density := stats.NewKDE(g).Curve(violinCut, kdePoints)
		v.shapes[i] = &violinShape{
			at:      at,
			density: density,
			min:     s.Min,
			max:     s.Max,
			q1:      s.Q1,
			median:  s.Median,
			q3:      s.Q3,
		}
		for _, d := range density {
			v.peak = max(v.peak, d)
		}
		v.yMin = min(v.yMin, at[0])
		v.yMax = max(v.yMax, at[len(at)-1])
	}
	return v
}

func (v *violins) empty() bool {
	return v.peak == 0
}

func (v *violins) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	for i, s := range v.shapes {
		if s == nil {
			continue
		}
		x := float64(i)

		n := len(s.at)
		body := make([]vg.Point, 2*n)
		for k := range n {
			w := groupHalfWidth * s.density[k] / v.peak
			body[k] = vg.Point{X: trX(x + w), Y: trY(s.at[k])}
			body[2*n-1-k] = vg.Point{X: trX(x - w), Y: trY(s.at[k])}
		}
		c.FillPolygon(plotutil.Color(i), body)
		c.StrokeLines(outline, append(body, body[0]))

		c.StrokeLine2(draw.LineStyle{Color: color.Gray{Y: 0x40}, Width: vg.Points(1)},
			trX(x), trY(s.min), trX(x), trY(s.max))
		c.StrokeLine2(draw.LineStyle{Color: color.Gray{Y: 0x40}, Width: vg.Points(5)},
			trX(x), trY(s.q1), trX(x), trY(s.q3))
		c.DrawGlyph(draw.GlyphStyle{Color: color.White, Radius: vg.Points(2.5), Shape: draw.CircleGlyph{}},
			vg.Point{X: trX(x), Y: trY(s.median)})
	}
}

func (v *violins) DataRange() (xmin, xmax, ymin, ymax float64) {
	return -0.5, float64(len(v.shapes)) - 0.5, v.yMin, v.yMax
}

// boxens draws letter-value plots at x = 0, 1, ... Boxes narrow and fade
// as they move away from the median.
type boxens struct {
	groups []stats.LetterValues
	yMin   float64
	yMax   float64
}

func newBoxens(groups [][]float64) *boxens {
	b := &boxens{
		groups: make([]stats.LetterValues, len(groups)),
		yMin:   math.Inf(1),
		yMax:   math.Inf(-1),
	}
	for i, g := range groups {
		b.groups[i] = stats.LetterValueSummary(g)
		for _, x := range g {
			b.yMin = min(b.yMin, x)
			b.yMax = max(b.yMax, x)
		}
	}
	return b
}

func (b *boxens) empty() bool {
	return b.yMin > b.yMax
}

func (b *boxens) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	for i, lv := range b.groups {
		if len(lv.Boxes) == 0 {
			continue
		}
		x := float64(i)
		base := plotutil.Color(i)
		depth := float64(len(lv.Boxes))

		for k := len(lv.Boxes) - 1; k >= 0; k-- {
			box := lv.Boxes[k]
			w := groupHalfWidth * (depth - float64(k)) / depth
			rect := []vg.Point{
				{X: trX(x - w), Y: trY(box.Lower)},
				{X: trX(x + w), Y: trY(box.Lower)},
				{X: trX(x + w), Y: trY(box.Upper)},
				{X: trX(x - w), Y: trY(box.Upper)},
			}
			c.FillPolygon(lighten(base, 0.6*float64(k)/depth), rect)
			c.StrokeLines(outline, append(rect, rect[0]))
		}

		c.StrokeLine2(draw.LineStyle{Color: color.Gray{Y: 0x20}, Width: vg.Points(1.5)},
			trX(x-groupHalfWidth), trY(lv.Median), trX(x+groupHalfWidth), trY(lv.Median))

		glyph := draw.GlyphStyle{Color: color.Gray{Y: 0x40}, Radius: vg.Points(2), Shape: draw.RingGlyph{}}
		for _, o := range lv.Outliers {
			c.DrawGlyph(glyph, vg.Point{X: trX(x), Y: trY(o)})
		}
	}
}

func (b *boxens) DataRange() (xmin, xmax, ymin, ymax float64) {
	return -0.5, float64(len(b.groups)) - 0.5, b.yMin, b.yMax
}
