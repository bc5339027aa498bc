package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"slices"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// DefaultPath is where the dataset is read from, relative to the working directory.
const DefaultPath = "shopping_trends.csv"

// Source selects the engine that parses the dataset file.
type Source string

// Supported sources.
const (
	SourceCSV    Source = "csv"
	SourceDuckDB Source = "duckdb"
)

// Sources lists every supported source, in the order shown to users.
var Sources = []Source{SourceCSV, SourceDuckDB}

// missingMarkers are the cell values treated as absent.
var missingMarkers = []string{"", "NA", "NaN", "<nil>"}

type loadOptions struct {
	source Source
	logger *slog.Logger
}

// Option configures Load.
type Option func(*loadOptions)

// WithSource selects the parsing engine. The default is SourceCSV.
func WithSource(s Source) Option {
	return func(o *loadOptions) {
		o.source = s
	}
}

// WithLogger sets the logger Load reports to.
func WithLogger(l *slog.Logger) Option {
	return func(o *loadOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// Load reads the delimited file at path into a Table.
// Every failure is reported as ErrDataUnavailable.
func Load(ctx context.Context, path string, opts ...Option) (*Table, error) {
	o := loadOptions{
		source: SourceCSV,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&o)
	}

	var (
		tbl *Table
		err error
	)
	switch o.source {
	case SourceCSV:
		tbl, err = loadCSV(path)
	case SourceDuckDB:
		tbl, err = loadDuckDB(ctx, path)
	default:
		return nil, fmt.Errorf("%w: unknown source %q", ErrDataUnavailable, o.source)
	}
	if err != nil {
		return nil, err
	}

	o.logger.Info("dataset loaded",
		slog.String("path", path),
		slog.String("source", string(o.source)),
		slog.Int("rows", tbl.Len()),
		slog.Int("columns", tbl.Width()),
	)
	return tbl, nil
}

func loadCSV(path string) (*Table, error) {
	f, err := os.Open(path) //nolint:gosec // path is the dataset location chosen by the caller
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDataUnavailable, err)
	}
	defer func() { _ = f.Close() }()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse %s: %w", ErrDataUnavailable, path, err)
	}
	return fromRecords(path, records)
}

// fromRecords builds a Table from a header record followed by data records.
// A column with no present values, including every column of a header-only
// file, is stored as float64 so it stays numeric.
func fromRecords(path string, records [][]string) (*Table, error) {
	if len(records) == 0 || len(records[0]) == 0 {
		return nil, fmt.Errorf("%w: %s has no columns", ErrDataUnavailable, path)
	}
	header, rows := records[0], records[1:]

	if len(rows) == 0 {
		columns := make([]series.Series, len(header))
		for i, name := range header {
			columns[i] = series.New([]float64{}, series.Float, name)
		}
		return fromFrame(path, dataframe.New(columns...))
	}

	types := make(map[string]series.Type)
	for i, name := range header {
		if allMissing(rows, i) {
			types[name] = series.Float
		}
	}
	df := dataframe.LoadRecords(records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.NaNValues(missingMarkers),
		dataframe.WithTypes(types),
	)
	return fromFrame(path, df)
}

func allMissing(rows [][]string, col int) bool {
	for _, row := range rows {
		if !slices.Contains(missingMarkers, row[col]) {
			return false
		}
	}
	return true
}

func fromFrame(path string, df dataframe.DataFrame) (*Table, error) {
	if df.Err != nil {
		return nil, fmt.Errorf("%w: failed to parse %s: %w", ErrDataUnavailable, path, df.Err)
	}
	return &Table{df: df}, nil
}
