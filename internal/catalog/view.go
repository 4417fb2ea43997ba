package catalog

import (
	"sort"
	"strconv"
	"strings"
)

// SortKey selects the display ordering of the storefront grid.
type SortKey string

const (
	SortNewest    SortKey = "newest"     // descending creation date
	SortPriceLow  SortKey = "price-low"  // ascending numeric price
	SortPriceHigh SortKey = "price-high" // descending numeric price
)

// SortKeys lists the selectable orderings in cycle order.
var SortKeys = []SortKey{SortNewest, SortPriceLow, SortPriceHigh}

// Label returns the human-readable name shown in the sort selector.
func (k SortKey) Label() string {
	switch k {
	case SortPriceLow:
		return "Price: Low to High"
	case SortPriceHigh:
		return "Price: High to Low"
	default:
		return "Newest First"
	}
}

// View derives the displayed sequence from the canonical list: keep
// products matching category (FilterAll keeps everything, otherwise exact
// case-sensitive match), then order by the sort key. The input list is
// never mutated; the result is a fresh slice. Sorting is stable, so ties
// keep their input order.
//
// Products whose price does not parse as a number sort after every parsable
// product under both price orders, rather than landing wherever a NaN
// comparison would drop them.
func View(products []Product, category string, key SortKey) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if category == FilterAll || p.Category == category {
			out = append(out, p)
		}
	}

	switch key {
	case SortPriceLow:
		sort.SliceStable(out, func(i, j int) bool {
			return lessByPrice(out[i], out[j], false)
		})
	case SortPriceHigh:
		sort.SliceStable(out, func(i, j int) bool {
			return lessByPrice(out[i], out[j], true)
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Date > out[j].Date
		})
	}

	return out
}

// lessByPrice orders two products by numeric price. Unparsable prices are
// deprioritized: a parsable price always sorts before an unparsable one,
// and two unparsable prices keep their input order.
func lessByPrice(a, b Product, descending bool) bool {
	av, aok := parsePrice(a.Price)
	bv, bok := parsePrice(b.Price)
	if aok != bok {
		return aok
	}
	if !aok {
		return false
	}
	if descending {
		return av > bv
	}
	return av < bv
}

func parsePrice(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return v, err == nil
}
