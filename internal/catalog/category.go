package catalog

// FilterAll is the storefront-only pseudo category that passes every
// product. It is never a valid category on a product itself.
const FilterAll = "All"

// Categories is the master enumeration of product categories. The admin
// form offers exactly these; the storefront filter derives its options by
// prepending FilterAll.
var Categories = []string{"Door", "Windows", "Table", "Sofa", "Wardrobe", "Bed"}

// FilterOptions returns the storefront filter list: FilterAll followed by
// the master enumeration.
func FilterOptions() []string {
	opts := make([]string, 0, len(Categories)+1)
	opts = append(opts, FilterAll)
	opts = append(opts, Categories...)
	return opts
}

// ValidCategory reports whether c is a member of the master enumeration.
// Matching is exact and case-sensitive, like the storefront filter.
func ValidCategory(c string) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// DefaultCategory is the admin form's initial selection.
func DefaultCategory() string {
	return Categories[0]
}
