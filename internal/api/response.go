package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/shaiso/restaurant/internal/repo"
	"github.com/shaiso/restaurant/internal/validation"
)

// Тексты ответов об ошибках.
const (
	MsgItemNotFound     = "Menu item not found"
	MsgItemDeleted      = "Menu item deleted"
	MsgValidationFailed = "Validation failed"
	MsgInvalidJSON      = "Invalid JSON body"
	MsgBodyTooLarge     = "Request body too large"
	MsgRouteNotFound    = "Not found"
	MsgInternalError    = "Internal server error"
)

// JSON отправляет JSON ответ.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// Success отправляет 200 с данными как есть, без обёртки.
func Success(w http.ResponseWriter, data any) {
	JSON(w, http.StatusOK, data)
}

// Created отправляет ответ о создании ресурса.
func Created(w http.ResponseWriter, data any) {
	JSON(w, http.StatusCreated, data)
}

// Message отправляет ответ вида {"message": "..."}.
func Message(w http.ResponseWriter, status int, message string) {
	JSON(w, status, MessageResponse{Message: message})
}

// BadRequest отправляет ошибку 400.
func BadRequest(w http.ResponseWriter, message string) {
	Message(w, http.StatusBadRequest, message)
}

// NotFound отправляет ошибку 404.
func NotFound(w http.ResponseWriter, message string) {
	Message(w, http.StatusNotFound, message)
}

// ValidationFailed отправляет 400 со списком ошибок полей.
func ValidationFailed(w http.ResponseWriter, errs validation.Errors) {
	JSON(w, http.StatusBadRequest, ValidationErrorResponse{
		Message: MsgValidationFailed,
		Errors:  errs,
	})
}

// InternalError отправляет ошибку 500.
func InternalError(w http.ResponseWriter, logger *slog.Logger, err error) {
	logger.Error("internal error", "error", err)
	Message(w, http.StatusInternalServerError, MsgInternalError)
}

// HandleRepoError преобразует ошибку репозитория в HTTP ответ.
func HandleRepoError(w http.ResponseWriter, logger *slog.Logger, err error, notFoundMsg string) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, repo.ErrNotFound) {
		NotFound(w, notFoundMsg)
		return true
	}

	InternalError(w, logger, err)
	return true
}

// HandleDecodeError преобразует ошибку чтения тела запроса в HTTP ответ.
func HandleDecodeError(w http.ResponseWriter, err error) bool {
	if err == nil {
		return false
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		Message(w, http.StatusRequestEntityTooLarge, MsgBodyTooLarge)
		return true
	}

	BadRequest(w, MsgInvalidJSON)
	return true
}
