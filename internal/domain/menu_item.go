package domain

// MenuItem — позиция меню ресторана.
//
// ID назначается сервером при создании и больше не меняется.
// Остальные поля полностью перезаписываются при замене (PUT).
type MenuItem struct {
	// ID — уникальный идентификатор позиции (1, 2, 3, ...).
	ID int `json:"id"`

	// Name — название блюда, минимум 3 символа после trim.
	Name string `json:"name"`

	// Description — описание, минимум 10 символов после trim.
	Description string `json:"description"`

	// Price — цена, строго больше нуля.
	Price float64 `json:"price"`

	// Category — одна из фиксированных категорий (см. Categories).
	Category Category `json:"category"`

	// Ingredients — список ингредиентов, минимум один.
	Ingredients []string `json:"ingredients"`

	// Available — доступна ли позиция для заказа.
	Available bool `json:"available"`
}

// Clone возвращает копию позиции, не разделяющую слайс ингредиентов.
func (m MenuItem) Clone() MenuItem {
	if m.Ingredients != nil {
		ingredients := make([]string, len(m.Ingredients))
		copy(ingredients, m.Ingredients)
		m.Ingredients = ingredients
	}
	return m
}
