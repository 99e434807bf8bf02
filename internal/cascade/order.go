package cascade

import (
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// collator orders display names the way a pt-BR database collation would.
// A collate.Collator keeps internal buffers, so each aggregation builds its own.
type collator struct {
	c *collate.Collator
}

func newCollator() *collator {
	return &collator{c: collate.New(language.BrazilianPortuguese)}
}

func (o *collator) compare(a, b string) int {
	return o.c.CompareString(a, b)
}

// compareDepartureDesc orders YYYY-MM-DD strings newest first. The
// NoDepartureDate sentinel always sorts last.
func compareDepartureDesc(a, b string) int {
	aMissing, bMissing := a == NoDepartureDate, b == NoDepartureDate
	switch {
	case aMissing && bMissing:
		return 0
	case aMissing:
		return 1
	case bMissing:
		return -1
	}
	return strings.Compare(b, a)
}
