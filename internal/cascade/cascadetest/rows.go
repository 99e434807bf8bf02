// Package cascadetest builds FlatRow fixtures for tests.
package cascadetest

import (
	"strconv"
	"time"

	"deskflow/internal/cascade"
)

// Row builds a FlatRow. Empty division, days or date strings become nil;
// pages <= 0 leaves the page count unset.
func Row(division, days string, productID int64, productName, date, file string, copies, pages int) cascade.FlatRow {
	row := cascade.FlatRow{
		ProductID:   Int64(productID),
		ProductName: productName,
		FileName:    file,
		Copies:      copies,
	}
	if division != "" {
		row.LogisticsDivision = String(division)
	}
	if days != "" {
		n, err := strconv.Atoi(days)
		if err != nil {
			panic("cascadetest: days must be numeric: " + days)
		}
		row.WorkingDays = &n
	}
	if date != "" {
		row.DepartureDate = Date(date)
	}
	if pages > 0 {
		row.Pages = Int(pages)
	}
	return row
}

func String(s string) *string { return &s }

func Int(n int) *int { return &n }

func Int64(n int64) *int64 { return &n }

// Date parses a YYYY-MM-DD calendar date, panicking on malformed input.
func Date(s string) *time.Time {
	t, err := time.Parse(cascade.DateLayout, s)
	if err != nil {
		panic("cascadetest: bad date " + s)
	}
	return &t
}
