// Package dashboard lists the schools that have order forms in production.
package dashboard

// School is one entry of the schools-with-orders listing.
type School struct {
	ID          int64   `json:"escola_id"`
	Name        string  `json:"nome_escola"`
	Code        *string `json:"codigo_escola"`
	TotalOrders int     `json:"total_pedidos"`
}

// Listing is the response body of the schools endpoint.
type Listing struct {
	Schools []School `json:"escolas"`
	Total   int      `json:"total_escolas"`
}

// NewListing wraps schools, never producing a null array.
func NewListing(schools []School) Listing {
	if schools == nil {
		schools = []School{}
	}
	return Listing{Schools: schools, Total: len(schools)}
}
