package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProducts() []Product {
	return []Product{
		{ID: 3, Title: "Oak Table", Price: "300", Category: "Table", Date: 3000},
		{ID: 1, Title: "Pine Door", Price: "120", Category: "Door", Date: 1000},
		{ID: 4, Title: "Velvet Sofa", Price: "50", Category: "Sofa", Date: 4000},
		{ID: 2, Title: "Bay Window", Price: "210.50", Category: "Windows", Date: 2000},
	}
}

func TestViewFilterAllIsPermutation(t *testing.T) {
	products := sampleProducts()
	got := View(products, FilterAll, SortNewest)

	require.Len(t, got, len(products))
	seen := make(map[int64]bool)
	for _, p := range got {
		seen[p.ID] = true
	}
	for _, p := range products {
		assert.True(t, seen[p.ID], "product %d missing from All view", p.ID)
	}
}

func TestViewFilterByCategory(t *testing.T) {
	got := View(sampleProducts(), "Sofa", SortNewest)
	require.Len(t, got, 1)
	assert.Equal(t, "Velvet Sofa", got[0].Title)

	// Filtering is exact and case-sensitive.
	assert.Empty(t, View(sampleProducts(), "sofa", SortNewest))
	assert.Empty(t, View(sampleProducts(), "Wardrobe", SortNewest))
}

func TestViewSortNewest(t *testing.T) {
	got := View(sampleProducts(), FilterAll, SortNewest)
	require.Len(t, got, 4)
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].Date, got[i].Date)
	}
	assert.Equal(t, int64(4), got[0].ID)
}

func TestViewPriceOrdersAreMutualReverses(t *testing.T) {
	low := View(sampleProducts(), FilterAll, SortPriceLow)
	high := View(sampleProducts(), FilterAll, SortPriceHigh)
	require.Len(t, low, 4)
	require.Len(t, high, 4)
	for i := range low {
		assert.Equal(t, low[i].ID, high[len(high)-1-i].ID)
	}
	assert.Equal(t, "50", low[0].Price)
	assert.Equal(t, "300", high[0].Price)
}

func TestViewUnparsablePriceSortsLast(t *testing.T) {
	products := []Product{
		{ID: 1, Price: "50", Date: 100},
		{ID: 2, Price: "not-a-number", Date: 200},
		{ID: 3, Price: "25", Date: 300},
		{ID: 4, Price: "", Date: 400},
	}

	low := View(products, FilterAll, SortPriceLow)
	require.Len(t, low, 4)
	assert.Equal(t, int64(3), low[0].ID)
	assert.Equal(t, int64(1), low[1].ID)
	// Unparsable entries land at the end in input order.
	assert.Equal(t, int64(2), low[2].ID)
	assert.Equal(t, int64(4), low[3].ID)

	high := View(products, FilterAll, SortPriceHigh)
	assert.Equal(t, int64(1), high[0].ID)
	assert.Equal(t, int64(3), high[1].ID)
	assert.Equal(t, int64(2), high[2].ID)
	assert.Equal(t, int64(4), high[3].ID)
}

func TestViewDoesNotMutateInput(t *testing.T) {
	products := sampleProducts()
	orig := Clone(products)

	_ = View(products, FilterAll, SortPriceLow)
	_ = View(products, FilterAll, SortNewest)

	assert.Equal(t, orig, products)
}

func TestViewEmptyResult(t *testing.T) {
	assert.Empty(t, View(nil, FilterAll, SortNewest))
	assert.Empty(t, View(sampleProducts(), "Bed", SortNewest))
}

func TestSortKeyLabels(t *testing.T) {
	assert.Equal(t, "Newest First", SortNewest.Label())
	assert.Equal(t, "Price: Low to High", SortPriceLow.Label())
	assert.Equal(t, "Price: High to Low", SortPriceHigh.Label())
}
