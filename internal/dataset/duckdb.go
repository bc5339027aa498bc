package dataset

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	_ "github.com/marcboeker/go-duckdb" // duckdb driver
)

// loadDuckDB parses the file with DuckDB's CSV sniffer in an in-memory database.
func loadDuckDB(ctx context.Context, path string) (*Table, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDataUnavailable, err)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get absolute path: %w", ErrDataUnavailable, err)
	}

	db, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open duckdb connection: %w", ErrDataUnavailable, err)
	}
	defer func() { _ = db.Close() }()

	return readCSVAuto(ctx, db, absPath)
}

// readCSVAuto runs read_csv_auto over path and loads the result set into a Table.
func readCSVAuto(ctx context.Context, db *sql.DB, path string) (*Table, error) {
	query := fmt.Sprintf(
		"SELECT * FROM read_csv_auto('%s', header=true)",
		strings.ReplaceAll(path, "'", "''"),
	)

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read %s: %w", ErrDataUnavailable, path, err)
	}
	defer func() { _ = rows.Close() }()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read columns: %w", ErrDataUnavailable, err)
	}

	records := [][]string{cols}
	for rows.Next() {
		values := make([]any, len(cols))
		valuePtrs := make([]any, len(cols))
		for i := range values {
			valuePtrs[i] = &values[i]
		}
		if err := rows.Scan(valuePtrs...); err != nil {
			return nil, fmt.Errorf("%w: failed to scan row: %w", ErrDataUnavailable, err)
		}

		record := make([]string, len(cols))
		for i, v := range values {
			record[i] = formatCell(v)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: error iterating rows: %w", ErrDataUnavailable, err)
	}

	return fromRecords(path, records)
}

// formatCell renders a scanned driver value as CSV text. NULL becomes the
// empty string so it is read back as missing. Whole doubles keep a decimal
// point so the column is still detected as float.
func formatCell(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case []byte:
		return string(x)
	case string:
		return x
	case float64:
		if x == math.Trunc(x) && !math.IsInf(x, 0) {
			return strconv.FormatFloat(x, 'f', 1, 64)
		}
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return formatCell(float64(x))
	case time.Time:
		return x.Format(time.DateOnly)
	default:
		return fmt.Sprint(x)
	}
}
