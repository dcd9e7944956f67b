// Package api содержит HTTP API меню ресторана.
//
// Структура:
//   - handler.go      — Handler с DI (репозиторий, publisher, logger)
//   - routes.go       — регистрация маршрутов и цепочка middleware
//   - middleware.go   — request id, логирование запросов, метрики, recovery
//   - response.go     — JSON-ответы и преобразование ошибок
//   - dto.go          — формы ответов (сообщения, ошибки валидации, удаление)
//   - menu_handler.go — обработчики для /menu
//
// Ответы отдаются без обёртки: список — JSON-массив,
// позиция — JSON-объект, ошибки — {"message": ...}.
package api
