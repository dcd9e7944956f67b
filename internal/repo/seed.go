package repo

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/shaiso/restaurant/internal/domain"
	"github.com/shaiso/restaurant/internal/validation"
)

//go:embed seed.toml
var defaultSeed []byte

// seedFile — формат TOML-файла с начальным меню.
//
// Записи читаются как есть и проходят ту же проверку и приведение,
// что и тело POST /menu: строки обрезаются, пропущенный available
// становится true.
type seedFile struct {
	Items []map[string]any `toml:"items"`
}

// DefaultSeed возвращает встроенное начальное меню.
func DefaultSeed() ([]domain.MenuItem, error) {
	return ParseSeed(defaultSeed)
}

// LoadSeed читает начальное меню из файла path.
// Пустой path означает встроенное меню.
func LoadSeed(path string) ([]domain.MenuItem, error) {
	if path == "" {
		return DefaultSeed()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return ParseSeed(data)
}

// ParseSeed декодирует и проверяет TOML с начальным меню.
//
// Каждая позиция должна иметь положительный уникальный целый id
// и проходить те же проверки, что и тело POST /menu.
func ParseSeed(data []byte) ([]domain.MenuItem, error) {
	var sf seedFile
	if err := toml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}

	items := make([]domain.MenuItem, 0, len(sf.Items))
	seen := make(map[int]bool, len(sf.Items))
	for i, record := range sf.Items {
		id, ok := record["id"].(int64)
		if !ok || id <= 0 {
			return nil, fmt.Errorf("%w: item #%d has invalid id %v", ErrInvalidSeed, i, record["id"])
		}
		if seen[int(id)] {
			return nil, fmt.Errorf("%w: duplicate id %d", ErrInvalidSeed, id)
		}
		seen[int(id)] = true

		payload, err := validation.PayloadFrom(record)
		if err != nil {
			return nil, fmt.Errorf("%w: item %d: %v", ErrInvalidSeed, id, err)
		}
		item, err := validation.ValidateMenuItem(payload)
		if err != nil {
			return nil, fmt.Errorf("%w: item %d: %v", ErrInvalidSeed, id, err)
		}

		item.ID = int(id)
		items = append(items, *item)
	}

	return items, nil
}
