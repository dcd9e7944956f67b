package telemetry

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// LogFormat — формат записей лога.
type LogFormat string

const (
	// LogFormatJSON — JSON, по одной записи на строку. Используется по умолчанию.
	LogFormatJSON LogFormat = "json"

	// LogFormatText — key=value, удобен при локальной разработке.
	LogFormatText LogFormat = "text"
)

// ParseLogFormat разбирает имя формата без учёта регистра.
// Пустая строка означает LogFormatJSON.
func ParseLogFormat(s string) (LogFormat, error) {
	switch LogFormat(strings.ToLower(strings.TrimSpace(s))) {
	case "", LogFormatJSON:
		return LogFormatJSON, nil
	case LogFormatText:
		return LogFormatText, nil
	default:
		return "", fmt.Errorf("unknown log format %q", s)
	}
}

// LogOptions — настройки логгера restaurant-api.
type LogOptions struct {
	Level  slog.Level
	Format LogFormat
}

// NewLogger создаёт логгер, пишущий в w.
// На уровне DEBUG к записям добавляется место вызова.
func NewLogger(w io.Writer, opts LogOptions) *slog.Logger {
	handlerOpts := &slog.HandlerOptions{
		Level:     opts.Level,
		AddSource: opts.Level <= slog.LevelDebug,
	}

	if opts.Format == LogFormatText {
		return slog.New(slog.NewTextHandler(w, handlerOpts))
	}
	return slog.New(slog.NewJSONHandler(w, handlerOpts))
}

// SetupLogger создаёт логгер и делает его глобальным.
func SetupLogger(w io.Writer, opts LogOptions) *slog.Logger {
	logger := NewLogger(w, opts)
	slog.SetDefault(logger)
	return logger
}

type loggerKey struct{}

// WithLogger кладёт логгер запроса в контекст.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext возвращает логгер запроса или глобальный, если его нет.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// WithRequestID добавляет к логгеру request_id.
func WithRequestID(logger *slog.Logger, requestID string) *slog.Logger {
	return logger.With("request_id", requestID)
}

// WithItemID добавляет к логгеру item_id.
func WithItemID(logger *slog.Logger, itemID int) *slog.Logger {
	return logger.With("item_id", itemID)
}
