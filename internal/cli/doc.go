// Package cli реализует инструмент командной строки restaurant-cli.
//
// # Обзор
//
// CLI — клиентская утилита для Restaurant API. Работает через HTTP.
// Из пакетов сервера импортирует только domain (список категорий)
// и mq для просмотра событий.
//
// # Ключевые компоненты
//
// ## Client
//
// HTTP-клиент для API меню. Инкапсулирует запросы, разбор ответов
// и ошибок (APIError с полями ошибок валидации).
//
//	client := cli.NewClient("http://localhost:3000")
//	items, err := client.ListMenu()
//
// ## Output
//
// Форматирование вывода. Поддерживает два режима:
//   - Таблицы (text/tabwriter) по умолчанию
//   - JSON с флагом --json
//
// Данные выводятся в stdout, сообщения (Success/Error) в stderr.
// Это позволяет использовать pipe: restaurant-cli menu list --json | jq .
//
// ## Commands
//
//   - menu: list, show, create, update, delete
//   - events: watch
//
// Группы создаются фабричными функциями (NewMenuCmd, NewEventsCmd),
// принимающими замыкания для ленивого создания Client и Output
// после парсинга PersistentFlags.
package cli
