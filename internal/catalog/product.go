// Package catalog defines the product model shared by the storefront and
// admin surfaces, the category enumeration, and the filtered/sorted view
// derivation.
package catalog

// Product is the sole persisted entity. Price is stored as entered (text)
// and only parsed numerically when sorting. Date is the creation timestamp
// in unix milliseconds and is never touched on edit.
type Product struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Price    string `json:"price"`
	Category string `json:"category"`
	Image    string `json:"image"`
	Date     int64  `json:"date"`
}

// Clone returns an independent copy of the list. An empty or nil input
// yields nil so callers can compare against the zero value.
func Clone(products []Product) []Product {
	if len(products) == 0 {
		return nil
	}
	dup := make([]Product, len(products))
	copy(dup, products)
	return dup
}

// FindByID returns the index of the product with the given id, or -1.
func FindByID(products []Product, id int64) int {
	for i, p := range products {
		if p.ID == id {
			return i
		}
	}
	return -1
}
