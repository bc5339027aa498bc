package chart

import (
	"fmt"

	"gonum.org/v1/plot"

	"github.com/leapstack-labs/shoptrends/internal/dataset"
)

// HistogramBins is the bin count of the age histogram.
const HistogramBins = 30

// SeasonOrder is the axis order of the season chart. Seasons not listed
// follow in order of first appearance.
var SeasonOrder = []string{"Winter", "Spring", "Summer", "Fall"}

// Figure names, used as output file stems.
const (
	FigureOneName = "figure-1"
	FigureTwoName = "figure-2"
)

type columnRole int

const (
	numeric columnRole = iota
	categorical
)

type column struct {
	name string
	role columnRole
}

// columns fetches every requested column up front so a figure either has all
// of its data or draws nothing.
type columns struct {
	numeric     map[string][]float64
	categorical map[string][]string
}

func fetch(tbl *dataset.Table, want ...column) (*columns, error) {
	cols := &columns{
		numeric:     make(map[string][]float64),
		categorical: make(map[string][]string),
	}
	for _, c := range want {
		if !tbl.Has(c.name) {
			return nil, fmt.Errorf("%w: column %q not found", ErrRenderUnavailable, c.name)
		}
		switch c.role {
		case numeric:
			values, err := tbl.Numeric(c.name)
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrRenderUnavailable, err)
			}
			cols.numeric[c.name] = values
		case categorical:
			labels, err := tbl.Categorical(c.name)
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrRenderUnavailable, err)
			}
			cols.categorical[c.name] = labels
		}
	}
	return cols, nil
}

// FigureOne builds the 3x2 overview figure: age distribution, gender shares,
// item and category popularity, purchase amount spread and the seasonal
// average purchase.
func FigureOne(tbl *dataset.Table) (*Figure, error) {
	cols, err := fetch(tbl,
		column{dataset.ColAge, numeric},
		column{dataset.ColGender, categorical},
		column{dataset.ColItemPurchased, categorical},
		column{dataset.ColCategory, categorical},
		column{dataset.ColPurchaseAmount, numeric},
		column{dataset.ColSeason, categorical},
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", FigureOneName, err)
	}

	amount := cols.numeric[dataset.ColPurchaseAmount]
	builders := []func() (*plot.Plot, error){
		func() (*plot.Plot, error) {
			return Histogram("Distribution of Age", "Age", "Frequency", cols.numeric[dataset.ColAge], HistogramBins)
		},
		func() (*plot.Plot, error) {
			return Pie("Gender Distribution", cols.categorical[dataset.ColGender])
		},
		func() (*plot.Plot, error) {
			return CountBar("Most Popular Item Purchased", "Item", cols.categorical[dataset.ColItemPurchased])
		},
		func() (*plot.Plot, error) {
			return CountBar("Category Distribution", "Category", cols.categorical[dataset.ColCategory])
		},
		func() (*plot.Plot, error) {
			return Box("Purchase Amount", dataset.ColPurchaseAmount, amount)
		},
		func() (*plot.Plot, error) {
			return MeanLine("Average Purchase Amount by Season", "Season", "Average Purchase Amount (USD)",
				cols.categorical[dataset.ColSeason], amount, SeasonOrder)
		},
	}
	return build(FigureOneName, 3, 2, builders)
}

// FigureTwo builds the 3x1 relationship figure: age against rating, purchase
// amount by category and purchase amount by item.
func FigureTwo(tbl *dataset.Table) (*Figure, error) {
	cols, err := fetch(tbl,
		column{dataset.ColAge, numeric},
		column{dataset.ColReviewRating, numeric},
		column{dataset.ColCategory, categorical},
		column{dataset.ColItemPurchased, categorical},
		column{dataset.ColPurchaseAmount, numeric},
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", FigureTwoName, err)
	}

	amount := cols.numeric[dataset.ColPurchaseAmount]
	builders := []func() (*plot.Plot, error){
		func() (*plot.Plot, error) {
			return Scatter("Age vs Review Rating", "Age", "Review Rating",
				cols.numeric[dataset.ColAge], cols.numeric[dataset.ColReviewRating])
		},
		func() (*plot.Plot, error) {
			return Violin("Purchase Amount vs Category", "Category", dataset.ColPurchaseAmount,
				cols.categorical[dataset.ColCategory], amount)
		},
		func() (*plot.Plot, error) {
			return Boxen("Purchase Amount vs Item Purchased", "Item Purchased", dataset.ColPurchaseAmount,
				cols.categorical[dataset.ColItemPurchased], amount)
		},
	}
	return build(FigureTwoName, 3, 1, builders)
}

func build(name string, rows, cols int, builders []func() (*plot.Plot, error)) (*Figure, error) {
	fig := &Figure{Name: name, Rows: rows, Cols: cols}
	for _, b := range builders {
		p, err := b()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		fig.Plots = append(fig.Plots, p)
	}
	return fig, nil
}
