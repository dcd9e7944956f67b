package mq

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/shaiso/restaurant/internal/domain"
)

// MessageType — тип события меню.
type MessageType string

// Типы событий.
const (
	MessageTypeItemCreated  MessageType = "menu.item.created"
	MessageTypeItemReplaced MessageType = "menu.item.replaced"
	MessageTypeItemDeleted  MessageType = "menu.item.deleted"
)

// RoutingKey возвращает ключ маршрутизации для типа события.
func (t MessageType) RoutingKey() (RoutingKey, error) {
	switch t {
	case MessageTypeItemCreated:
		return RoutingKeyItemCreated, nil
	case MessageTypeItemReplaced:
		return RoutingKeyItemReplaced, nil
	case MessageTypeItemDeleted:
		return RoutingKeyItemDeleted, nil
	default:
		return "", fmt.Errorf("unknown message type %q", t)
	}
}

// Message — конверт события.
type Message struct {
	// ID — уникальный идентификатор сообщения.
	ID string `json:"id"`

	// Type — тип события.
	Type MessageType `json:"type"`

	// Payload — позиция меню после изменения (для delete — удалённая).
	Payload domain.MenuItem `json:"payload"`

	// Timestamp — время создания.
	Timestamp time.Time `json:"timestamp"`
}

// NewMessage создаёт конверт события с новым ID.
func NewMessage(msgType MessageType, item domain.MenuItem) *Message {
	return &Message{
		ID:        uuid.New().String(),
		Type:      msgType,
		Payload:   item,
		Timestamp: time.Now().UTC(),
	}
}

// Publisher публикует события меню в RabbitMQ.
type Publisher struct {
	conn   *Connection
	logger *slog.Logger
}

// NewPublisher создаёт новый Publisher.
func NewPublisher(conn *Connection, logger *slog.Logger) *Publisher {
	return &Publisher{
		conn:   conn,
		logger: logger,
	}
}

// PublishMenuEvent публикует событие об изменении позиции меню.
func (p *Publisher) PublishMenuEvent(ctx context.Context, msgType MessageType, item domain.MenuItem) error {
	routingKey, err := msgType.RoutingKey()
	if err != nil {
		return err
	}
	return p.Publish(ctx, routingKey, NewMessage(msgType, item))
}

// Publish публикует сообщение в ExchangeMenu с указанным routing key.
func (p *Publisher) Publish(ctx context.Context, routingKey RoutingKey, msg *Message) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	return p.conn.WithChannel(ctx, func(ch *amqp.Channel) error {
		err := ch.PublishWithContext(
			ctx,
			string(ExchangeMenu),
			string(routingKey),
			false, // mandatory
			false, // immediate
			amqp.Publishing{
				ContentType:  "application/json",
				DeliveryMode: amqp.Persistent,
				MessageId:    msg.ID,
				Type:         string(msg.Type),
				Timestamp:    msg.Timestamp,
				Body:         body,
			},
		)
		if err != nil {
			return fmt.Errorf("publish to %s/%s: %w", ExchangeMenu, routingKey, err)
		}

		p.logger.Debug("published message",
			"routing_key", routingKey,
			"message_id", msg.ID,
			"type", msg.Type,
			"item_id", msg.Payload.ID,
		)
		return nil
	})
}
