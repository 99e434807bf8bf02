package cascade

import (
	"strconv"
	"strings"

	dErrors "deskflow/pkg/domain-errors"
)

// Normalize resolves the nullable grouping keys of row to their sentinels and
// renders the departure date as YYYY-MM-DD. Rows missing a mandatory field
// yield a CodeInvalidInput error.
func Normalize(row FlatRow) (NormalizedRow, error) {
	if row.ProductID == nil {
		return NormalizedRow{}, dErrors.New(dErrors.CodeInvalidInput, "missing product id")
	}
	if strings.TrimSpace(row.FileName) == "" {
		return NormalizedRow{}, dErrors.New(dErrors.CodeInvalidInput, "missing file name")
	}
	if row.Copies < 0 {
		return NormalizedRow{}, dErrors.New(dErrors.CodeInvalidInput, "negative copy count")
	}

	division := NoDivision
	if row.LogisticsDivision != nil && strings.TrimSpace(*row.LogisticsDivision) != "" {
		division = *row.LogisticsDivision
	}

	days := NoWorkingDays
	if row.WorkingDays != nil {
		days = strconv.Itoa(*row.WorkingDays)
	}

	date := NoDepartureDate
	if row.DepartureDate != nil {
		date = row.DepartureDate.Format(DateLayout)
	}

	return NormalizedRow{
		LogisticsDivision: division,
		WorkingDays:       days,
		ProductID:         *row.ProductID,
		ProductName:       row.ProductName,
		DepartureDate:     date,
		FileID:            row.FileID,
		FileName:          row.FileName,
		Copies:            row.Copies,
		Pages:             row.Pages,
	}, nil
}
