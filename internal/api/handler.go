package api

import (
	"context"
	"log/slog"

	"github.com/shaiso/restaurant/internal/domain"
	"github.com/shaiso/restaurant/internal/mq"
	"github.com/shaiso/restaurant/internal/repo"
)

// EventPublisher публикует события об изменениях меню.
type EventPublisher interface {
	PublishMenuEvent(ctx context.Context, msgType mq.MessageType, item domain.MenuItem) error
}

// Handler — главный обработчик API с зависимостями.
type Handler struct {
	menuRepo  *repo.MenuRepo
	publisher EventPublisher
	logger    *slog.Logger
}

// Config — конфигурация для создания Handler.
type Config struct {
	MenuRepo *repo.MenuRepo

	// Publisher — опционально. Nil отключает публикацию событий.
	Publisher EventPublisher

	Logger *slog.Logger
}

// NewHandler создаёт новый Handler.
func NewHandler(cfg Config) *Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		menuRepo:  cfg.MenuRepo,
		publisher: cfg.Publisher,
		logger:    logger,
	}
}
