package api

import (
	"github.com/shaiso/restaurant/internal/domain"
	"github.com/shaiso/restaurant/internal/validation"
)

// MessageResponse — ответ, состоящий только из сообщения.
type MessageResponse struct {
	Message string `json:"message"`
}

// ValidationErrorResponse — ответ 400 с ошибками полей.
type ValidationErrorResponse struct {
	Message string            `json:"message"`
	Errors  validation.Errors `json:"errors"`
}

// DeleteResponse — ответ на удаление позиции.
type DeleteResponse struct {
	Message string          `json:"message"`
	Deleted domain.MenuItem `json:"deleted"`
}
