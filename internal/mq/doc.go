// Package mq публикует и читает события изменений меню через RabbitMQ.
//
// Структура:
//   - connection.go — соединение с брокером (reconnect, graceful shutdown)
//   - topology.go   — обменник restaurant.menu, очередь menu.events, привязки
//   - publisher.go  — конверт Message и публикация событий
//   - consumer.go   — чтение событий (используется CLI events watch)
//
// Типы событий (они же routing keys):
//   - menu.item.created
//   - menu.item.replaced
//   - menu.item.deleted
package mq
