package cascade

func serialize(divisions []divisionGroup) []Division {
	out := make([]Division, 0, len(divisions))
	for _, d := range divisions {
		out = append(out, Division{
			LogisticsDivision: d.Key.division,
			WorkingDays:       d.Key.workingDays,
			Total:             d.Total,
			Products:          serializeProducts(d.Members),
		})
	}
	return out
}

func serializeProducts(products []productGroup) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		out = append(out, Product{
			ID:       p.Key.productID,
			Name:     p.Key.productName,
			Quantity: p.Total,
			Dates:    serializeDates(p.Members),
		})
	}
	return out
}

func serializeDates(dates []dateGroup) []DepartureDate {
	out := make([]DepartureDate, 0, len(dates))
	for _, d := range dates {
		out = append(out, DepartureDate{
			Date:     d.Key.date,
			Quantity: d.Total,
			Files:    serializeFiles(d.Members),
		})
	}
	return out
}

func serializeFiles(rows []NormalizedRow) []File {
	out := make([]File, 0, len(rows))
	for _, r := range rows {
		f := File{Name: r.FileName, Copies: r.Copies}
		if r.Pages != nil {
			pages := *r.Pages
			f.Pages = &pages
		}
		out = append(out, f)
	}
	return out
}
