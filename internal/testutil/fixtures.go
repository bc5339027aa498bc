package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// ShoppingCSV is a ten row slice of the shopping-trends dataset.
// Row 9 has no review rating and row 10 has no location.
const ShoppingCSV = `Customer ID,Age,Gender,Item Purchased,Category,Purchase Amount (USD),Location,Season,Review Rating
1,55,Male,Blouse,Clothing,53,Kentucky,Winter,3.1
2,19,Male,Sweater,Clothing,64,Maine,Winter,3.1
3,50,Male,Jeans,Clothing,73,Massachusetts,Spring,3.1
4,21,Male,Sandals,Footwear,90,Rhode Island,Spring,3.5
5,45,Male,Blouse,Clothing,49,Oregon,Spring,2.7
6,46,Male,Sneakers,Footwear,20,Wyoming,Summer,2.9
7,63,Male,Shirt,Clothing,85,Montana,Fall,3.2
8,27,Female,Shorts,Clothing,34,Louisiana,Winter,3.2
9,26,Female,Coat,Outerwear,97,West Virginia,Summer,
10,57,Female,Handbag,Accessories,31,,Fall,4.8
`

// ShoppingRows is the number of data rows in ShoppingCSV.
const ShoppingRows = 10

// PurchaseAmounts lists the "Purchase Amount (USD)" column of ShoppingCSV in row order.
var PurchaseAmounts = []float64{53, 64, 73, 90, 49, 20, 85, 34, 97, 31}

// WriteCSV writes content to dir/name and returns the full path.
func WriteCSV(t testing.TB, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

// WriteShoppingCSV writes ShoppingCSV as shopping_trends.csv under dir.
func WriteShoppingCSV(t testing.TB, dir string) string {
	t.Helper()
	return WriteCSV(t, dir, "shopping_trends.csv", ShoppingCSV)
}
