package domain

// Category — категория позиции меню.
type Category string

const (
	// CategoryAppetizer — закуски.
	CategoryAppetizer Category = "appetizer"

	// CategoryEntree — основные блюда.
	CategoryEntree Category = "entree"

	// CategoryDessert — десерты.
	CategoryDessert Category = "dessert"

	// CategoryBeverage — напитки.
	CategoryBeverage Category = "beverage"
)

// Categories — все допустимые категории в каноническом порядке.
var Categories = []Category{
	CategoryAppetizer,
	CategoryEntree,
	CategoryDessert,
	CategoryBeverage,
}

// IsValid возвращает true, если категория входит в фиксированный набор.
func (c Category) IsValid() bool {
	switch c {
	case CategoryAppetizer, CategoryEntree, CategoryDessert, CategoryBeverage:
		return true
	default:
		return false
	}
}

// String возвращает строковое представление Category.
func (c Category) String() string {
	return string(c)
}
