// Package telemetry обеспечивает наблюдаемость сервиса.
//
// Включает:
//   - logging.go — structured logging через slog
//   - metrics.go — Prometheus метрики HTTP и меню
//
// Метрики экспортируются на /metrics endpoint.
package telemetry
