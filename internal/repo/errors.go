package repo

import "errors"

// Общие ошибки репозиториев.
var (
	// ErrNotFound — запись не найдена.
	ErrNotFound = errors.New("not found")

	// ErrInvalidSeed — seed-данные не прошли проверку.
	ErrInvalidSeed = errors.New("invalid seed")
)
