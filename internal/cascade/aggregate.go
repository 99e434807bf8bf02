package cascade

import (
	"fmt"
	"slices"

	dErrors "deskflow/pkg/domain-errors"
)

type dateKey struct {
	division    string
	workingDays string
	productID   int64
	productName string
	date        string
}

type productKey struct {
	division    string
	workingDays string
	productID   int64
	productName string
}

type divisionKey struct {
	division    string
	workingDays string
}

type (
	dateGroup     = Group[dateKey, NormalizedRow]
	productGroup  = Group[productKey, dateGroup]
	divisionGroup = Group[divisionKey, productGroup]
)

// Aggregate rolls rows up into the division → product → departure date → file
// report. It is a pure function of rows: no I/O, no state kept between calls.
// An empty input yields an empty, non-nil slice. Any row failing
// normalization aborts the whole aggregation with a CodeInvalidInput error.
func Aggregate(rows []FlatRow) ([]Division, error) {
	normalized := make([]NormalizedRow, 0, len(rows))
	for i, row := range rows {
		n, err := Normalize(row)
		if err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeInvalidInput, fmt.Sprintf("row %d", i))
		}
		normalized = append(normalized, n)
	}

	names := newCollator()

	dates := Rollup(normalized, Stage[NormalizedRow, dateKey]{
		Key: func(r NormalizedRow) dateKey {
			return dateKey{r.LogisticsDivision, r.WorkingDays, r.ProductID, r.ProductName, r.DepartureDate}
		},
		Weight: func(NormalizedRow) int { return 1 },
		Order: func(a, b NormalizedRow) int {
			return names.compare(a.FileName, b.FileName)
		},
	})

	products := Rollup(dates, Stage[dateGroup, productKey]{
		Key: func(g dateGroup) productKey {
			return productKey{g.Key.division, g.Key.workingDays, g.Key.productID, g.Key.productName}
		},
		Weight: func(g dateGroup) int { return g.Total },
		Order: func(a, b dateGroup) int {
			return compareDepartureDesc(a.Key.date, b.Key.date)
		},
	})

	divisions := Rollup(products, Stage[productGroup, divisionKey]{
		Key: func(g productGroup) divisionKey {
			return divisionKey{g.Key.division, g.Key.workingDays}
		},
		Weight: func(g productGroup) int { return g.Total },
		Order: func(a, b productGroup) int {
			return names.compare(a.Key.productName, b.Key.productName)
		},
	})

	slices.SortStableFunc(divisions, func(a, b divisionGroup) int {
		return names.compare(a.Key.division, b.Key.division)
	})

	return serialize(divisions), nil
}

// TotalFiles sums quantidade_total across divisions, which equals the number
// of rows that produced them.
func TotalFiles(divisions []Division) int {
	total := 0
	for _, d := range divisions {
		total += d.Total
	}
	return total
}
