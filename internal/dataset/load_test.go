package dataset

import (
	"context"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/shoptrends/internal/testutil"
)

func loadFixture(t *testing.T) *Table {
	t.Helper()
	path := testutil.WriteShoppingCSV(t, t.TempDir())
	tbl, err := Load(context.Background(), path, WithLogger(testutil.NewTestLogger(t)))
	require.NoError(t, err)
	return tbl
}

func TestLoad_RowAndColumnCount(t *testing.T) {
	tbl := loadFixture(t)

	assert.Equal(t, testutil.ShoppingRows, tbl.Len())
	assert.Equal(t, 9, tbl.Width())
	assert.Equal(t, []string{
		"Customer ID", ColAge, ColGender, ColItemPurchased, ColCategory,
		ColPurchaseAmount, "Location", ColSeason, ColReviewRating,
	}, tbl.Names())
}

func TestLoad_DetectsKinds(t *testing.T) {
	tbl := loadFixture(t)

	tests := []struct {
		column string
		want   Kind
	}{
		{ColAge, KindInt},
		{ColPurchaseAmount, KindInt},
		{ColReviewRating, KindFloat},
		{ColGender, KindString},
		{"Location", KindString},
	}
	for _, tt := range tests {
		t.Run(tt.column, func(t *testing.T) {
			got, err := tbl.Kind(tt.column)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoad_Failures(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		path string
	}{
		{
			name: "missing file",
			path: filepath.Join(dir, "does-not-exist.csv"),
		},
		{
			name: "empty file",
			path: testutil.WriteCSV(t, dir, "empty.csv", ""),
		},
		{
			name: "ragged rows",
			path: testutil.WriteCSV(t, dir, "ragged.csv", "a,b\n1,2\n3\n"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl, err := Load(context.Background(), tt.path)
			require.ErrorIs(t, err, ErrDataUnavailable)
			assert.Nil(t, tbl)
		})
	}
}

func TestLoad_HeaderOnly(t *testing.T) {
	header := strings.SplitN(testutil.ShoppingCSV, "\n", 2)[0] + "\n"
	path := testutil.WriteCSV(t, t.TempDir(), "shopping_trends.csv", header)

	tbl, err := Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, 0, tbl.Len())
	assert.Equal(t, 9, tbl.Width())
	assert.Empty(t, tbl.Head(5))

	ages, err := tbl.Numeric(ColAge)
	require.NoError(t, err)
	assert.Empty(t, ages)

	genders, err := tbl.Categorical(ColGender)
	require.NoError(t, err)
	assert.Empty(t, genders)
}

func TestLoad_AllMissingColumnIsFloat(t *testing.T) {
	content := "Age,Review Rating,Location\n30,,Ohio\n41,NA,\n"
	path := testutil.WriteCSV(t, t.TempDir(), "shopping_trends.csv", content)

	tbl, err := Load(context.Background(), path)
	require.NoError(t, err)

	kind, err := tbl.Kind(ColReviewRating)
	require.NoError(t, err)
	assert.Equal(t, KindFloat, kind)

	ratings, err := tbl.Numeric(ColReviewRating)
	require.NoError(t, err)
	require.Len(t, ratings, 2)
	assert.True(t, math.IsNaN(ratings[0]))
	assert.True(t, math.IsNaN(ratings[1]))

	kind, err = tbl.Kind("Location")
	require.NoError(t, err)
	assert.Equal(t, KindString, kind, "partly missing text stays text")
}

func TestLoad_UnknownSource(t *testing.T) {
	path := testutil.WriteShoppingCSV(t, t.TempDir())

	_, err := Load(context.Background(), path, WithSource("parquet"))
	require.ErrorIs(t, err, ErrDataUnavailable)
	assert.Contains(t, err.Error(), "parquet")
}

func TestTable_Numeric(t *testing.T) {
	tbl := loadFixture(t)

	amounts, err := tbl.Numeric(ColPurchaseAmount)
	require.NoError(t, err)
	assert.Equal(t, testutil.PurchaseAmounts, amounts)

	ratings, err := tbl.Numeric(ColReviewRating)
	require.NoError(t, err)
	require.Len(t, ratings, testutil.ShoppingRows)
	assert.True(t, math.IsNaN(ratings[8]), "row 9 has no rating")
	assert.InDelta(t, 4.8, ratings[9], 1e-9)

	_, err = tbl.Numeric(ColGender)
	require.ErrorIs(t, err, ErrNotNumeric)

	_, err = tbl.Numeric("Shipping Type")
	require.ErrorIs(t, err, ErrColumnNotFound)
}

func TestTable_Categorical(t *testing.T) {
	tbl := loadFixture(t)

	locations, err := tbl.Categorical("Location")
	require.NoError(t, err)
	assert.Equal(t, "Kentucky", locations[0])
	assert.Equal(t, "", locations[9], "missing cells are empty")

	ages, err := tbl.Categorical(ColAge)
	require.NoError(t, err)
	assert.Equal(t, "55", ages[0])
}

func TestTable_Missing(t *testing.T) {
	tbl := loadFixture(t)

	missing, err := tbl.Missing("Location")
	require.NoError(t, err)
	count := 0
	for _, m := range missing {
		if m {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestTable_Head(t *testing.T) {
	tbl := loadFixture(t)

	tests := []struct {
		name string
		n    int
		want int
	}{
		{"five", 5, 5},
		{"more than rows", 50, testutil.ShoppingRows},
		{"negative", -1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := tbl.Head(tt.n)
			assert.Len(t, rows, tt.want)
		})
	}

	rows := tbl.Head(1)
	assert.Equal(t, []string{"1", "55", "Male", "Blouse", "Clothing", "53", "Kentucky", "Winter", "3.1"}, rows[0])
}

func TestTable_ByteSize(t *testing.T) {
	tbl := loadFixture(t)
	assert.Positive(t, tbl.ByteSize())
}

func TestDropMissing(t *testing.T) {
	got := DropMissing([]float64{1, math.NaN(), 3})
	assert.Equal(t, []float64{1, 3}, got)
	assert.Empty(t, DropMissing(nil))
}
