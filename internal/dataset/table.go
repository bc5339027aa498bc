// Package dataset loads the shopping-trends table and exposes read-only
// column projections over it.
//
// A Table is created once by Load and never mutated. Every accessor copies
// the values it returns, so callers may sort or slice them freely.
package dataset

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Column names in the shopping-trends file.
const (
	ColAge            = "Age"
	ColGender         = "Gender"
	ColItemPurchased  = "Item Purchased"
	ColCategory       = "Category"
	ColPurchaseAmount = "Purchase Amount (USD)"
	ColSeason         = "Season"
	ColReviewRating   = "Review Rating"
)

var (
	// ErrDataUnavailable is returned when the dataset file is missing,
	// unreadable or cannot be parsed into a table.
	ErrDataUnavailable = errors.New("data unavailable")

	// ErrColumnNotFound is returned when a column name is not in the table.
	ErrColumnNotFound = errors.New("column not found")

	// ErrNotNumeric is returned when a numeric projection is requested for a
	// column holding text or booleans.
	ErrNotNumeric = errors.New("column is not numeric")
)

// Kind is the detected storage type of a column.
type Kind string

// Column kinds, named after the dtypes a dataframe user expects to see.
const (
	KindInt    Kind = "int64"
	KindFloat  Kind = "float64"
	KindBool   Kind = "bool"
	KindString Kind = "object"
)

// Numeric reports whether values of this kind can be summarised numerically.
func (k Kind) Numeric() bool {
	return k == KindInt || k == KindFloat
}

func kindOf(t series.Type) Kind {
	switch t {
	case series.Int:
		return KindInt
	case series.Float:
		return KindFloat
	case series.Bool:
		return KindBool
	default:
		return KindString
	}
}

// Table is the in-memory shopping-transaction table.
type Table struct {
	df dataframe.DataFrame
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return t.df.Nrow()
}

// Width returns the number of columns.
func (t *Table) Width() int {
	return t.df.Ncol()
}

// Names returns the column names in file order.
func (t *Table) Names() []string {
	return t.df.Names()
}

// Has reports whether the table has a column with the given name.
func (t *Table) Has(name string) bool {
	return slices.Contains(t.df.Names(), name)
}

// Kind returns the detected kind of the named column.
func (t *Table) Kind(name string) (Kind, error) {
	s, err := t.series(name)
	if err != nil {
		return "", err
	}
	return kindOf(s.Type()), nil
}

// Numeric returns the named column as float64 values in row order.
// Missing cells are NaN.
func (t *Table) Numeric(name string) ([]float64, error) {
	s, err := t.series(name)
	if err != nil {
		return nil, err
	}
	if !kindOf(s.Type()).Numeric() {
		return nil, fmt.Errorf("%w: %q is %s", ErrNotNumeric, name, kindOf(s.Type()))
	}
	return s.Float(), nil
}

// Categorical returns the named column as labels in row order.
// Missing cells are returned as the empty string.
func (t *Table) Categorical(name string) ([]string, error) {
	s, err := t.series(name)
	if err != nil {
		return nil, err
	}
	labels := make([]string, s.Len())
	for i := range labels {
		e := s.Elem(i)
		if e.IsNA() {
			continue
		}
		labels[i] = cellString(e)
	}
	return labels, nil
}

// Missing returns, for the named column, which rows hold no value.
func (t *Table) Missing(name string) ([]bool, error) {
	s, err := t.series(name)
	if err != nil {
		return nil, err
	}
	return s.IsNaN(), nil
}

// Head returns the first n rows formatted as text, one slice per row.
// Missing cells render as NaN.
func (t *Table) Head(n int) [][]string {
	n = min(max(n, 0), t.df.Nrow())
	rows := make([][]string, n)
	for r := range rows {
		row := make([]string, t.df.Ncol())
		for c := range row {
			e := t.df.Elem(r, c)
			if e.IsNA() {
				row[c] = "NaN"
				continue
			}
			row[c] = cellString(e)
		}
		rows[r] = row
	}
	return rows
}

// ByteSize estimates the memory held by the table's values: eight bytes per
// numeric or boolean cell, string length plus a sixteen byte header per text cell.
func (t *Table) ByteSize() uint64 {
	var size uint64
	for _, name := range t.df.Names() {
		s := t.df.Col(name)
		if kindOf(s.Type()) != KindString {
			size += uint64(s.Len()) * 8
			continue
		}
		for _, v := range s.Records() {
			size += uint64(len(v)) + 16
		}
	}
	return size
}

func (t *Table) series(name string) (series.Series, error) {
	if !t.Has(name) {
		return series.Series{}, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
	}
	s := t.df.Col(name)
	if s.Err != nil {
		return series.Series{}, fmt.Errorf("failed to read column %q: %w", name, s.Err)
	}
	return s, nil
}

// cellString formats floats with the shortest exact representation instead
// of the fixed six decimals series elements use.
func cellString(e series.Element) string {
	if e.Type() == series.Float {
		return strconv.FormatFloat(e.Float(), 'f', -1, 64)
	}
	return e.String()
}

// DropMissing returns the non-NaN values of xs in order.
func DropMissing(xs []float64) []float64 {
	out := make([]float64, 0, len(xs))
	for _, x := range xs {
		if !math.IsNaN(x) {
			out = append(out, x)
		}
	}
	return out
}
