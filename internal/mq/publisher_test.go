package mq

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/shaiso/restaurant/internal/domain"
)

func TestMessageType_RoutingKey(t *testing.T) {
	tests := []struct {
		msgType MessageType
		want    RoutingKey
		wantErr bool
	}{
		{MessageTypeItemCreated, RoutingKeyItemCreated, false},
		{MessageTypeItemReplaced, RoutingKeyItemReplaced, false},
		{MessageTypeItemDeleted, RoutingKeyItemDeleted, false},
		{"menu.item.patched", "", true},
	}

	for _, tt := range tests {
		t.Run(string(tt.msgType), func(t *testing.T) {
			got, err := tt.msgType.RoutingKey()
			if (err != nil) != tt.wantErr {
				t.Fatalf("wantErr=%v, got %v", tt.wantErr, err)
			}
			if got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestRoutingKeys_MatchWildcard(t *testing.T) {
	prefix := strings.TrimSuffix(string(RoutingKeyAllItems), "#")
	for _, key := range []RoutingKey{RoutingKeyItemCreated, RoutingKeyItemReplaced, RoutingKeyItemDeleted} {
		if !strings.HasPrefix(string(key), prefix) {
			t.Errorf("%s is not covered by %s", key, RoutingKeyAllItems)
		}
	}
}

func TestNewMessage(t *testing.T) {
	item := domain.MenuItem{ID: 7, Name: "Taco"}
	msg := NewMessage(MessageTypeItemCreated, item)

	if msg.ID == "" {
		t.Error("ID should be generated")
	}
	if msg.Timestamp.IsZero() || msg.Timestamp.Location() != time.UTC {
		t.Errorf("timestamp should be set in UTC, got %v", msg.Timestamp)
	}
	if msg.Payload.ID != 7 {
		t.Errorf("expected payload id 7, got %d", msg.Payload.ID)
	}

	other := NewMessage(MessageTypeItemCreated, item)
	if other.ID == msg.ID {
		t.Error("message IDs should be unique")
	}
}

func TestDecodeMessage(t *testing.T) {
	msg := NewMessage(MessageTypeItemDeleted, domain.MenuItem{
		ID:          1,
		Name:        "Classic Burger",
		Category:    domain.CategoryEntree,
		Ingredients: []string{"beef"},
	})
	body, err := json.Marshal(msg)
	if err != nil {
		t.Fatal(err)
	}

	decoded, err := DecodeMessage(body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decoded.ID != msg.ID || decoded.Type != MessageTypeItemDeleted {
		t.Errorf("unexpected message: %+v", decoded)
	}
	if decoded.Payload.Name != "Classic Burger" || decoded.Payload.Category != domain.CategoryEntree {
		t.Errorf("unexpected payload: %+v", decoded.Payload)
	}
}

func TestDecodeMessage_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", "hello"},
		{"unknown type", `{"id":"1","type":"menu.item.patched","payload":{}}`},
		{"missing type", `{"id":"1","payload":{}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeMessage([]byte(tt.body)); err == nil {
				t.Error("expected error")
			}
		})
	}
}
