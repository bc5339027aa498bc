// Package report builds and prints the console overview of a dataset: the
// first rows, descriptive statistics, column info and missing-value counts.
package report

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/leapstack-labs/shoptrends/internal/cli/output"
	"github.com/leapstack-labs/shoptrends/internal/dataset"
	"github.com/leapstack-labs/shoptrends/internal/stats"
)

// HeadRows is how many leading rows the report shows.
const HeadRows = 5

// Report is the full console overview of a table.
type Report struct {
	Head     Head            `json:"head"`
	Describe []stats.Summary `json:"describe"`
	Info     Info            `json:"info"`
	Missing  []MissingCount  `json:"missing"`
}

// Head holds the leading rows of the table as text.
type Head struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// Info describes the table's shape and column types.
type Info struct {
	Rows        int          `json:"rows"`
	Columns     []ColumnInfo `json:"columns"`
	Kinds       []KindCount  `json:"kinds"`
	MemoryBytes uint64       `json:"memory_bytes"`
}

// ColumnInfo is the non-null count and kind of one column.
type ColumnInfo struct {
	Name    string       `json:"name"`
	NonNull int          `json:"non_null"`
	Kind    dataset.Kind `json:"kind"`
}

// KindCount is how many columns share a kind.
type KindCount struct {
	Kind  dataset.Kind `json:"kind"`
	Count int          `json:"count"`
}

// MissingCount is the number of absent cells in one column.
type MissingCount struct {
	Column  string `json:"column"`
	Missing int    `json:"missing"`
}

// Build computes the report for tbl. It reads the table only.
func Build(tbl *dataset.Table) (Report, error) {
	rep := Report{
		Head: Head{
			Columns: tbl.Names(),
			Rows:    tbl.Head(HeadRows),
		},
		Info: Info{
			Rows:        tbl.Len(),
			MemoryBytes: tbl.ByteSize(),
		},
	}

	kindTally := make(map[dataset.Kind]int)
	var kindOrder []dataset.Kind

	for _, name := range tbl.Names() {
		kind, err := tbl.Kind(name)
		if err != nil {
			return Report{}, err
		}
		missing, err := tbl.Missing(name)
		if err != nil {
			return Report{}, err
		}

		n := 0
		for _, m := range missing {
			if m {
				n++
			}
		}
		rep.Missing = append(rep.Missing, MissingCount{Column: name, Missing: n})
		rep.Info.Columns = append(rep.Info.Columns, ColumnInfo{
			Name:    name,
			NonNull: len(missing) - n,
			Kind:    kind,
		})

		if kindTally[kind] == 0 {
			kindOrder = append(kindOrder, kind)
		}
		kindTally[kind]++

		if kind.Numeric() {
			values, err := tbl.Numeric(name)
			if err != nil {
				return Report{}, err
			}
			rep.Describe = append(rep.Describe, stats.Describe(name, values))
		}
	}

	for _, k := range kindOrder {
		rep.Info.Kinds = append(rep.Info.Kinds, KindCount{Kind: k, Count: kindTally[k]})
	}
	return rep, nil
}

// Write prints rep in the renderer's effective mode. JSON mode emits the
// whole report as one document; the other modes print four sections in order.
// An empty table is also flagged on the renderer's error stream.
func Write(r *output.Renderer, rep Report) error {
	if rep.Info.Rows == 0 {
		r.Warn("dataset has no rows")
	}
	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(rep)
	}

	r.Header(2, "First Rows")
	r.Table(headHeader(rep.Head.Columns), headRows(rep.Head.Rows))

	r.Header(2, "Descriptive Statistics")
	if len(rep.Describe) == 0 {
		r.Muted("No numeric columns")
	} else {
		r.Table(describeTable(rep.Describe))
	}

	r.Header(2, "Info")
	if rep.Info.Rows == 0 {
		r.Println("RangeIndex: 0 entries")
	} else {
		r.Println(fmt.Sprintf("RangeIndex: %d entries, 0 to %d", rep.Info.Rows, rep.Info.Rows-1))
	}
	r.Println(fmt.Sprintf("Data columns (total %d columns):", len(rep.Info.Columns)))
	r.Table(infoTable(rep.Info.Columns))
	r.Println("dtypes: " + kindSummary(rep.Info.Kinds))
	r.Println("memory usage: " + humanize.Bytes(rep.Info.MemoryBytes))

	r.Header(2, "Missing Values")
	rows := make([][]string, len(rep.Missing))
	for i, m := range rep.Missing {
		rows[i] = []string{m.Column, strconv.Itoa(m.Missing)}
	}
	r.Table([]string{"Column", "Missing"}, rows)
	return nil
}

func headHeader(columns []string) []string {
	return append([]string{""}, columns...)
}

func headRows(rows [][]string) [][]string {
	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = append([]string{strconv.Itoa(i)}, row...)
	}
	return out
}

func describeTable(summaries []stats.Summary) ([]string, [][]string) {
	header := []string{""}
	for _, s := range summaries {
		header = append(header, s.Column)
	}

	stat := func(label string, pick func(stats.Summary) string) []string {
		row := []string{label}
		for _, s := range summaries {
			row = append(row, pick(s))
		}
		return row
	}

	rows := [][]string{
		stat("count", func(s stats.Summary) string { return formatNumber(float64(s.Count)) }),
		stat("mean", func(s stats.Summary) string { return formatNumber(s.Mean) }),
		stat("std", func(s stats.Summary) string { return formatNumber(s.Std) }),
		stat("min", func(s stats.Summary) string { return formatNumber(s.Min) }),
		stat("25%", func(s stats.Summary) string { return formatNumber(s.Q1) }),
		stat("50%", func(s stats.Summary) string { return formatNumber(s.Median) }),
		stat("75%", func(s stats.Summary) string { return formatNumber(s.Q3) }),
		stat("max", func(s stats.Summary) string { return formatNumber(s.Max) }),
	}
	return header, rows
}

func infoTable(columns []ColumnInfo) ([]string, [][]string) {
	rows := make([][]string, len(columns))
	for i, c := range columns {
		rows[i] = []string{
			strconv.Itoa(i),
			c.Name,
			fmt.Sprintf("%d non-null", c.NonNull),
			string(c.Kind),
		}
	}
	return []string{"#", "Column", "Non-Null Count", "Dtype"}, rows
}

func kindSummary(kinds []KindCount) string {
	s := ""
	for i, k := range kinds {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%s(%d)", k.Kind, k.Count)
	}
	return s
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
