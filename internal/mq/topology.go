package mq

import (
	"context"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Exchange — тип для имени обменника.
type Exchange string

// Queue — тип для имени очереди.
type Queue string

// RoutingKey — тип для ключа маршрутизации.
type RoutingKey string

// ExchangeMenu — topic-обменник событий меню.
const ExchangeMenu Exchange = "restaurant.menu"

// QueueMenuEvents — общая очередь событий меню.
const QueueMenuEvents Queue = "menu.events"

// QueueMenuEventsMaxLength — предел длины QueueMenuEvents. При переполнении
// брокер отбрасывает самые старые события, пока никто их не читает.
const QueueMenuEventsMaxLength = 10000

// Routing keys.
const (
	RoutingKeyItemCreated  RoutingKey = "menu.item.created"
	RoutingKeyItemReplaced RoutingKey = "menu.item.replaced"
	RoutingKeyItemDeleted  RoutingKey = "menu.item.deleted"

	// RoutingKeyAllItems — шаблон привязки для всех событий позиций.
	RoutingKeyAllItems RoutingKey = "menu.item.#"
)

// SetupTopology объявляет обменник, очередь и привязку.
// Операции идемпотентны, вызывать можно при каждом старте.
func SetupTopology(ctx context.Context, conn *Connection) error {
	return conn.WithChannel(ctx, func(ch *amqp.Channel) error {
		return declareTopology(ch, QueueMenuEvents, true)
	})
}

// SharedQueue объявляет топологию и возвращает QueueMenuEvents.
// Подходит как ConsumerConfig.Setup для чтения общей очереди.
func SharedQueue(ctx context.Context, conn *Connection) (Queue, error) {
	if err := SetupTopology(ctx, conn); err != nil {
		return "", err
	}
	return QueueMenuEvents, nil
}

// DeclareWatchQueue объявляет временную exclusive-очередь,
// привязанную ко всем событиям меню, и возвращает её имя.
// Используется наблюдателями, которым не нужна общая очередь.
// Брокер удаляет очередь вместе с соединением, поэтому после
// переподключения её нужно объявить заново (см. ConsumerConfig.Setup).
func DeclareWatchQueue(ctx context.Context, conn *Connection) (Queue, error) {
	var name Queue
	err := conn.WithChannel(ctx, func(ch *amqp.Channel) error {
		if err := declareExchange(ch); err != nil {
			return err
		}

		q, err := ch.QueueDeclare(
			"",    // name (сгенерирует брокер)
			false, // durable
			true,  // delete when unused
			true,  // exclusive
			false, // no-wait
			nil,   // arguments
		)
		if err != nil {
			return fmt.Errorf("declare watch queue: %w", err)
		}
		name = Queue(q.Name)

		return bindQueue(ch, name)
	})
	return name, err
}

func declareTopology(ch *amqp.Channel, queue Queue, durable bool) error {
	if err := declareExchange(ch); err != nil {
		return err
	}

	_, err := ch.QueueDeclare(
		string(queue), // name
		durable,       // durable
		false,         // delete when unused
		false,         // exclusive
		false,         // no-wait
		amqp.Table{
			"x-max-length": int32(QueueMenuEventsMaxLength),
			"x-overflow":   "drop-head",
		},
	)
	if err != nil {
		return fmt.Errorf("declare queue %s: %w", queue, err)
	}

	return bindQueue(ch, queue)
}

func declareExchange(ch *amqp.Channel) error {
	err := ch.ExchangeDeclare(
		string(ExchangeMenu), // name
		"topic",              // type
		true,                 // durable
		false,                // auto-deleted
		false,                // internal
		false,                // no-wait
		nil,                  // arguments
	)
	if err != nil {
		return fmt.Errorf("declare exchange %s: %w", ExchangeMenu, err)
	}
	return nil
}

func bindQueue(ch *amqp.Channel, queue Queue) error {
	err := ch.QueueBind(
		string(queue),              // queue name
		string(RoutingKeyAllItems), // routing key
		string(ExchangeMenu),       // exchange
		false,                      // no-wait
		nil,                        // arguments
	)
	if err != nil {
		return fmt.Errorf("bind queue %s to %s: %w", queue, ExchangeMenu, err)
	}
	return nil
}
