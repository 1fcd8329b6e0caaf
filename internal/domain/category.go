package domain

// Category is the three-way budget split: needs, wants and future.
type Category string

const (
	CategoryEssentials  Category = "essentials"
	CategoryLifestyle   Category = "lifestyle"
	CategoryInvestments Category = "investments"
)

// Categories lists all categories in display order.
var Categories = []Category{CategoryEssentials, CategoryLifestyle, CategoryInvestments}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	switch c {
	case CategoryEssentials, CategoryLifestyle, CategoryInvestments:
		return true
	}
	return false
}

// ValidForFixedExpense reports whether c may be used on a fixed expense.
// Fixed expenses never contribute to investments.
func (c Category) ValidForFixedExpense() bool {
	return c == CategoryEssentials || c == CategoryLifestyle
}
