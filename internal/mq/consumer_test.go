package mq

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
)

// disconnected возвращает Connection без открытого канала.
func disconnected() *Connection {
	return &Connection{
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		closedCh:    make(chan struct{}),
		reconnectCh: make(chan struct{}, 1),
	}
}

func TestConsumer_SetupRunsOnEveryAttempt(t *testing.T) {
	calls := 0
	setup := func(_ context.Context, _ *Connection) (Queue, error) {
		calls++
		return Queue(fmt.Sprintf("amq.gen-%d", calls)), nil
	}

	c := NewConsumer(disconnected(), slog.New(slog.NewTextHandler(io.Discard, nil)), ConsumerConfig{
		Queue:   "stale",
		Setup:   setup,
		Handler: func(context.Context, *Message) error { return nil },
	})

	// Первая попытка и попытка после переподключения
	for range 2 {
		if _, err := c.setupConsume(context.Background()); !errors.Is(err, ErrNoChannel) {
			t.Fatalf("expected ErrNoChannel, got %v", err)
		}
	}

	if calls != 2 {
		t.Errorf("setup should run on each attempt, got %d calls", calls)
	}
	if c.queue != "amq.gen-2" {
		t.Errorf("consumer should use the freshly declared queue, got %s", c.queue)
	}
}

func TestConsumer_SetupError(t *testing.T) {
	setupErr := errors.New("declare failed")
	c := NewConsumer(disconnected(), slog.New(slog.NewTextHandler(io.Discard, nil)), ConsumerConfig{
		Setup: func(context.Context, *Connection) (Queue, error) { return "", setupErr },
	})

	if _, err := c.setupConsume(context.Background()); !errors.Is(err, setupErr) {
		t.Errorf("expected setup error, got %v", err)
	}
}

func TestConsumer_DefaultPrefetch(t *testing.T) {
	c := NewConsumer(disconnected(), slog.Default(), ConsumerConfig{Queue: QueueMenuEvents})
	if c.prefetch != 1 {
		t.Errorf("expected prefetch 1, got %d", c.prefetch)
	}
}

func TestSharedQueue_NoChannel(t *testing.T) {
	queue, err := SharedQueue(context.Background(), disconnected())
	if !errors.Is(err, ErrNoChannel) {
		t.Errorf("expected ErrNoChannel, got %v", err)
	}
	if queue != "" {
		t.Errorf("expected no queue name on error, got %s", queue)
	}
}
