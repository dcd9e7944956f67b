package api

import (
	"context"
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/shaiso/restaurant/internal/domain"
	"github.com/shaiso/restaurant/internal/mq"
	"github.com/shaiso/restaurant/internal/telemetry"
	"github.com/shaiso/restaurant/internal/validation"
)

// maxBodyBytes — предел размера тела POST/PUT.
const maxBodyBytes = 100 << 10

// ListMenu возвращает все позиции меню в порядке добавления.
// GET /menu
func (h *Handler) ListMenu(w http.ResponseWriter, r *http.Request) {
	items, err := h.menuRepo.List(r.Context())
	if HandleRepoError(w, h.logger, err, MsgItemNotFound) {
		return
	}

	Success(w, items)
}

// GetMenuItem возвращает позицию по ID.
// GET /menu/{id}
func (h *Handler) GetMenuItem(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r.PathValue("id"))
	if !ok {
		NotFound(w, MsgItemNotFound)
		return
	}

	item, err := h.menuRepo.GetByID(r.Context(), id)
	if HandleRepoError(w, h.logger, err, MsgItemNotFound) {
		return
	}

	Success(w, item)
}

// CreateMenuItem создаёт новую позицию.
// POST /menu
func (h *Handler) CreateMenuItem(w http.ResponseWriter, r *http.Request) {
	item, ok := h.decodeMenuItem(w, r)
	if !ok {
		return
	}

	if err := h.menuRepo.Create(r.Context(), item); err != nil {
		InternalError(w, h.logger, err)
		return
	}

	telemetry.WithItemID(telemetry.FromContext(r.Context()), item.ID).Info("menu item created")
	h.publish(r.Context(), mq.MessageTypeItemCreated, *item)

	Created(w, item)
}

// ReplaceMenuItem полностью заменяет позицию, сохраняя её ID.
// PUT /menu/{id}
//
// Тело проверяется до поиска позиции: невалидное тело даёт 400
// даже для несуществующего ID.
func (h *Handler) ReplaceMenuItem(w http.ResponseWriter, r *http.Request) {
	item, ok := h.decodeMenuItem(w, r)
	if !ok {
		return
	}

	id, ok := parseID(r.PathValue("id"))
	if !ok {
		NotFound(w, MsgItemNotFound)
		return
	}
	item.ID = id

	if HandleRepoError(w, h.logger, h.menuRepo.Replace(r.Context(), item), MsgItemNotFound) {
		return
	}

	telemetry.WithItemID(telemetry.FromContext(r.Context()), item.ID).Info("menu item replaced")
	h.publish(r.Context(), mq.MessageTypeItemReplaced, *item)

	Success(w, item)
}

// DeleteMenuItem удаляет позицию и возвращает удалённую запись.
// DELETE /menu/{id}
func (h *Handler) DeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r.PathValue("id"))
	if !ok {
		NotFound(w, MsgItemNotFound)
		return
	}

	deleted, err := h.menuRepo.Delete(r.Context(), id)
	if HandleRepoError(w, h.logger, err, MsgItemNotFound) {
		return
	}

	telemetry.WithItemID(telemetry.FromContext(r.Context()), id).Info("menu item deleted")
	h.publish(r.Context(), mq.MessageTypeItemDeleted, *deleted)

	Success(w, DeleteResponse{
		Message: MsgItemDeleted,
		Deleted: *deleted,
	})
}

// NotFoundRoute отвечает на запросы к неизвестным маршрутам.
func (h *Handler) NotFoundRoute(w http.ResponseWriter, _ *http.Request) {
	NotFound(w, MsgRouteNotFound)
}

// decodeMenuItem читает и проверяет тело POST/PUT.
// Если возвращает false, ответ уже отправлен.
func (h *Handler) decodeMenuItem(w http.ResponseWriter, r *http.Request) (*domain.MenuItem, bool) {
	payload, err := validation.DecodePayload(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if HandleDecodeError(w, err) {
		return nil, false
	}

	item, err := validation.ValidateMenuItem(payload)
	if err != nil {
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			ValidationFailed(w, verrs)
			return nil, false
		}
		InternalError(w, h.logger, err)
		return nil, false
	}

	return item, true
}

// publish отправляет событие, если publisher настроен.
// Ошибка публикации не влияет на ответ клиенту.
func (h *Handler) publish(ctx context.Context, msgType mq.MessageType, item domain.MenuItem) {
	if h.publisher == nil {
		return
	}

	err := h.publisher.PublishMenuEvent(ctx, msgType, item)
	telemetry.ObserveEvent(string(msgType), err)
	if err != nil {
		telemetry.FromContext(ctx).Warn("failed to publish menu event",
			"type", msgType,
			"item_id", item.ID,
			"error", err,
		)
	}
}

// parseID разбирает ID из пути как число.
// Целое значение ("3", "3.0", "3e0") — валидный ID; всё остальное
// трактуется вызывающим кодом как "не найдено", а не как 400.
func parseID(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) || f != math.Trunc(f) {
		return 0, false
	}
	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0, false
	}
	return int(f), true
}
