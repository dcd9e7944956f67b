package validation

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shaiso/restaurant/internal/domain"
)

// Сообщения об ошибках полей.
const (
	MsgNameRequired  = "Name is required"
	MsgNameString    = "Name must be a string"
	MsgNameMinLength = "Name must be at least 3 characters long"

	MsgDescriptionRequired  = "Description is required"
	MsgDescriptionString    = "Description must be a string"
	MsgDescriptionMinLength = "Description must be at least 10 characters long"

	MsgPriceRequired = "Price is required"
	MsgPricePositive = "Price must be a positive number"

	MsgCategoryRequired = "Category is required"
	MsgCategoryString   = "Category must be a string"
	MsgCategoryOneOf    = "Category must be one of: appetizer, entree, dessert, beverage"

	MsgIngredientsRequired = "Ingredients are required"
	MsgIngredientsArray    = "Ingredients must be an array with at least one item"
	MsgIngredientsStrings  = "Ingredients must contain only strings"

	MsgAvailableBoolean = "Available must be a boolean value"
)

// Правила go-playground/validator для ограничений полей.
const (
	ruleNameLength        = "min=3"
	ruleDescriptionLength = "min=10"
	rulePrice             = "gt=0"
	ruleIngredients       = "min=1"
)

// floatRe — запись числа с плавающей точкой без пробелов и hex/Inf/NaN.
var floatRe = regexp.MustCompile(`^[-+]?[0-9]*\.?[0-9]*([eE][-+]?[0-9]+)?$`)

var validate = validator.New()

// fieldCheck проверяет одно поле payload и возвращает все нарушенные
// правила этого поля. Если ошибок нет, приведённое значение записано в item.
type fieldCheck func(p Payload, item *domain.MenuItem) Errors

// checks — проверки в порядке, в котором ошибки попадают в ответ.
var checks = []fieldCheck{
	checkName,
	checkDescription,
	checkPrice,
	checkCategory,
	checkIngredients,
	checkAvailable,
}

// ValidateMenuItem проверяет payload и возвращает черновик позиции без ID.
//
// Выполняются все проверки всех полей, ошибки собираются в Errors.
// Отсутствующее поле даёт одну ошибку, у присутствующего проверяются
// все правила по очереди. Строковые поля обрезаются, price приводится
// к float64, available к bool (по умолчанию true).
func ValidateMenuItem(p Payload) (*domain.MenuItem, error) {
	item := &domain.MenuItem{Available: true}

	var errs Errors
	for _, check := range checks {
		errs = append(errs, check(p, item)...)
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return item, nil
}

func checkName(p Payload, item *domain.MenuItem) Errors {
	s, errs := requiredString(p, "name", MsgNameRequired, MsgNameString, MsgNameMinLength, ruleNameLength)
	item.Name = s
	return errs
}

func checkDescription(p Payload, item *domain.MenuItem) Errors {
	s, errs := requiredString(p, "description", MsgDescriptionRequired, MsgDescriptionString, MsgDescriptionMinLength, ruleDescriptionLength)
	item.Description = s
	return errs
}

func checkPrice(p Payload, item *domain.MenuItem) Errors {
	raw, ok := p.field("price")
	if !ok {
		return Errors{*newFieldError("price", nil, MsgPriceRequired)}
	}

	price, ok := toFloat(value(raw))
	if !ok || validate.Var(price, rulePrice) != nil {
		return Errors{*newFieldError("price", raw, MsgPricePositive)}
	}

	item.Price = price
	return nil
}

func checkCategory(p Payload, item *domain.MenuItem) Errors {
	raw, ok := p.field("category")
	if !ok {
		return Errors{*newFieldError("category", nil, MsgCategoryRequired)}
	}

	var errs Errors
	v := value(raw)
	if isFalsy(v) {
		errs = append(errs, *newFieldError("category", raw, MsgCategoryRequired))
	}
	if _, isString := v.(string); !isString {
		errs = append(errs, *newFieldError("category", raw, MsgCategoryString))
	}

	// Членство проверяется без trim: " entree" не является категорией.
	category := domain.Category(stringForm(v, raw))
	if !category.IsValid() {
		errs = append(errs, *newFieldError("category", raw, MsgCategoryOneOf))
	}

	item.Category = category
	return errs
}

func checkIngredients(p Payload, item *domain.MenuItem) Errors {
	raw, ok := p.field("ingredients")
	if !ok {
		return Errors{*newFieldError("ingredients", nil, MsgIngredientsRequired)}
	}

	list, isArray := value(raw).([]any)
	if !isArray || validate.Var(list, ruleIngredients) != nil {
		return Errors{*newFieldError("ingredients", raw, MsgIngredientsArray)}
	}

	ingredients := make([]string, len(list))
	for i, el := range list {
		s, isString := el.(string)
		if !isString {
			return Errors{*newFieldError("ingredients", raw, MsgIngredientsStrings)}
		}
		ingredients[i] = s
	}

	item.Ingredients = ingredients
	return nil
}

func checkAvailable(p Payload, item *domain.MenuItem) Errors {
	raw, ok := p.field("available")
	if !ok {
		item.Available = true
		return nil
	}

	b, ok := toBool(value(raw))
	if !ok {
		return Errors{*newFieldError("available", raw, MsgAvailableBoolean)}
	}

	item.Available = b
	return nil
}

// requiredString — общая цепочка для обязательных строк.
// Отсутствие ключа даёт только ошибку required. Для присутствующего
// значения независимо проверяются непустота, тип и длина строковой
// формы после trim.
func requiredString(p Payload, path, msgRequired, msgString, msgLength, rule string) (string, Errors) {
	raw, ok := p.field(path)
	if !ok {
		return "", Errors{*newFieldError(path, nil, msgRequired)}
	}

	var errs Errors
	v := value(raw)
	if isFalsy(v) {
		errs = append(errs, *newFieldError(path, raw, msgRequired))
	}
	if _, isString := v.(string); !isString {
		errs = append(errs, *newFieldError(path, raw, msgString))
	}

	trimmed := strings.TrimSpace(stringForm(v, raw))
	if validate.Var(trimmed, rule) != nil {
		errs = append(errs, *newFieldError(path, raw, msgLength))
	}

	return trimmed, errs
}

// stringForm — строковое представление значения для правил длины
// и членства: строка как есть, число в исходной записи, null пустая строка.
func stringForm(v any, raw json.RawMessage) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case json.Number:
		return val.String()
	case bool:
		return strconv.FormatBool(val)
	default:
		return string(raw)
	}
}

// toFloat принимает JSON-число или строку с числом.
func toFloat(v any) (float64, bool) {
	var s string
	switch val := v.(type) {
	case json.Number:
		s = val.String()
	case string:
		s = val
	default:
		return 0, false
	}

	if s == "" || s == "." || s == "+" || s == "-" || !floatRe.MatchString(s) {
		return 0, false
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// toBool принимает true/false, 0/1 и их строковые формы.
func toBool(v any) (bool, bool) {
	switch val := v.(type) {
	case bool:
		return val, true
	case json.Number:
		f, err := val.Float64()
		if err != nil {
			return false, false
		}
		switch f {
		case 0:
			return false, true
		case 1:
			return true, true
		}
		return false, false
	case string:
		switch val {
		case "true", "1":
			return true, true
		case "false", "0":
			return false, true
		}
		return false, false
	default:
		return false, false
	}
}
