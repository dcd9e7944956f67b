package api

import (
	"net/http"
)

// RegisterRoutes регистрирует все маршруты API.
//
// Маршрут "/" перехватывает всё, что не совпало с остальными шаблонами,
// включая известный путь с неподдерживаемым методом, и отвечает 404 JSON.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /menu", h.ListMenu)
	mux.HandleFunc("POST /menu", h.CreateMenuItem)
	mux.HandleFunc("GET /menu/{id}", h.GetMenuItem)
	mux.HandleFunc("PUT /menu/{id}", h.ReplaceMenuItem)
	mux.HandleFunc("DELETE /menu/{id}", h.DeleteMenuItem)

	mux.HandleFunc("/", h.NotFoundRoute)
}

// Middleware возвращает цепочку middleware для всего сервера.
// Logging стоит последним, чтобы видеть шаблон маршрута из ServeMux.
func (h *Handler) Middleware() Middleware {
	return Chain(
		Recovery(h.logger),
		RequestID(h.logger),
		RequestLogger,
		Logging,
	)
}

// Routes возвращает готовый http.Handler: маршруты API под middleware.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	h.RegisterRoutes(mux)
	return h.Middleware()(mux)
}
