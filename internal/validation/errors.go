package validation

import (
	"encoding/json"
	"fmt"
	"strings"
)

// LocationBody — все проверяемые поля приходят из тела запроса.
const LocationBody = "body"

// FieldError — ошибка одного поля.
type FieldError struct {
	// Type — вид ошибки, всегда "field".
	Type string `json:"type"`

	// Value — значение в том виде, в каком его прислал клиент.
	// Отсутствует в JSON, если поле не было передано.
	Value json.RawMessage `json:"value,omitempty"`

	// Msg — человекочитаемое описание.
	Msg string `json:"msg"`

	// Path — имя поля.
	Path string `json:"path"`

	// Location — откуда взято значение.
	Location string `json:"location"`
}

// Errors — упорядоченный список ошибок полей.
type Errors []FieldError

// Error реализует интерфейс error.
func (e Errors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("validation failed with %d error(s):", len(e)))
	for _, fe := range e {
		sb.WriteString(fmt.Sprintf(" %s: %s;", fe.Path, fe.Msg))
	}
	return strings.TrimSuffix(sb.String(), ";")
}

// Fields возвращает имена полей с ошибками в порядке проверки.
func (e Errors) Fields() []string {
	fields := make([]string, len(e))
	for i, fe := range e {
		fields[i] = fe.Path
	}
	return fields
}

func newFieldError(path string, raw json.RawMessage, msg string) *FieldError {
	return &FieldError{
		Type:     "field",
		Value:    raw,
		Msg:      msg,
		Path:     path,
		Location: LocationBody,
	}
}
