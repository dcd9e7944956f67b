package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
	"github.com/shaiso/restaurant/internal/telemetry"
)

// HeaderRequestID — заголовок с идентификатором запроса.
const HeaderRequestID = "X-Request-ID"

// maxLoggedBody — сколько байт тела попадает в лог.
const maxLoggedBody = 64 << 10

// Middleware — функция-обёртка для http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain применяет middleware в порядке слева направо.
// Chain(m1, m2)(handler) = m1(m2(handler))
func Chain(middlewares ...Middleware) Middleware {
	return func(next http.Handler) http.Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			next = middlewares[i](next)
		}
		return next
	}
}

// RequestID присваивает запросу идентификатор и кладёт в контекст
// логгер с request_id. Идентификатор клиента из X-Request-ID сохраняется.
func RequestID(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(HeaderRequestID)
			if id == "" {
				id = uuid.New().String()
			}
			w.Header().Set(HeaderRequestID, id)

			ctx := telemetry.WithLogger(r.Context(), telemetry.WithRequestID(logger, id))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequestLogger записывает метод и путь каждого запроса до обработки.
// Для POST и PUT дополнительно пишет разобранное тело.
// Запрос не отклоняется и не изменяется: прочитанное тело возвращается на место.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := telemetry.FromContext(r.Context())

		logger.Info("request",
			"method", r.Method,
			"path", r.URL.RequestURI(),
		)

		if (r.Method == http.MethodPost || r.Method == http.MethodPut) && r.Body != nil {
			head, err := io.ReadAll(io.LimitReader(r.Body, maxLoggedBody))
			if err != nil {
				logger.Warn("read request body", "error", err)
			}
			r.Body = readCloser{
				Reader: io.MultiReader(bytes.NewReader(head), r.Body),
				Closer: r.Body,
			}

			logger.Info("request body", "body", loggableBody(head))
		}

		next.ServeHTTP(w, r)
	})
}

// Logging пишет итог запроса и обновляет HTTP метрики.
// Должен стоять последним перед ServeMux: шаблон маршрута
// (r.Pattern) заполняется мультиплексором в этом же *http.Request.
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Обёртка для захвата статуса ответа
		rw := &responseWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rw, r)

		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}
		duration := time.Since(start)
		telemetry.ObserveRequest(r.Method, route, rw.status, duration)

		telemetry.FromContext(r.Context()).Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"route", route,
			"status", rw.status,
			"duration", duration,
			"remote_addr", r.RemoteAddr,
		)
	})
}

// Recovery восстанавливается после паники.
func Recovery(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("panic recovered",
						"error", err,
						"stack", string(debug.Stack()),
						"path", r.URL.Path,
					)
					Message(w, http.StatusInternalServerError, MsgInternalError)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

// loggableBody возвращает тело в виде JSON-значения,
// а если оно не разбирается — как строку.
func loggableBody(body []byte) any {
	if len(body) == 0 {
		return map[string]any{}
	}
	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return string(body)
	}
	return v
}

// readCloser склеивает восстановленное тело с оригинальным Close.
type readCloser struct {
	io.Reader
	io.Closer
}

// responseWriter — обёртка для захвата статуса ответа.
type responseWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (rw *responseWriter) WriteHeader(status int) {
	if !rw.wroteHeader {
		rw.status = status
		rw.wroteHeader = true
	}
	rw.ResponseWriter.WriteHeader(status)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	rw.wroteHeader = true
	return rw.ResponseWriter.Write(b)
}
