package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrNotObject — тело запроса не является JSON-объектом.
var ErrNotObject = errors.New("request body must be a JSON object")

// Payload — тело запроса на создание или замену позиции меню.
//
// Поля хранятся в сыром виде: наличие ключа и его JSON-тип
// проверяются валидатором, а не декодером.
type Payload map[string]json.RawMessage

// ErrTrailingData — после JSON-объекта в теле есть что-то ещё.
var ErrTrailingData = errors.New("unexpected data after JSON object")

// DecodePayload читает из r ровно один JSON-объект.
// Всё, кроме пробелов, после объекта делает тело невалидным.
func DecodePayload(r io.Reader) (Payload, error) {
	dec := json.NewDecoder(r)

	var p Payload
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}
	if p == nil {
		return nil, ErrNotObject
	}

	if err := dec.Decode(&struct{}{}); err != io.EOF {
		if err != nil {
			return nil, fmt.Errorf("decode payload: %w", err)
		}
		return nil, ErrTrailingData
	}
	return p, nil
}

// PayloadFrom строит Payload из произвольного значения с JSON-представлением
// объекта, например из записи seed-файла.
func PayloadFrom(v any) (Payload, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}
	return DecodePayload(bytes.NewReader(data))
}

// field возвращает сырое значение поля и признак его наличия.
func (p Payload) field(name string) (json.RawMessage, bool) {
	raw, ok := p[name]
	return raw, ok
}

// value декодирует сырое значение в any.
// Числа остаются json.Number, чтобы не терять исходную запись.
func value(raw json.RawMessage) any {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil
	}
	return v
}

// isFalsy повторяет правила "пустого" значения для обязательных полей:
// null, false, 0 и пустая строка считаются отсутствующими.
func isFalsy(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case bool:
		return !val
	case string:
		return val == ""
	case json.Number:
		f, err := val.Float64()
		return err == nil && f == 0
	default:
		return false
	}
}
