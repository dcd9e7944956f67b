package telemetry

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLogFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    LogFormat
		wantErr bool
	}{
		{"", LogFormatJSON, false},
		{"json", LogFormatJSON, false},
		{"TEXT", LogFormatText, false},
		{" text ", LogFormatText, false},
		{"yaml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLogFormat(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("wantErr=%v, got %v", tt.wantErr, err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, LogOptions{Level: slog.LevelInfo, Format: LogFormatJSON})

	logger.Debug("hidden")
	WithItemID(WithRequestID(logger, "req-1"), 7).Info("menu item created")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 record (debug filtered), got %d:\n%s", len(lines), buf.String())
	}

	var rec map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &rec); err != nil {
		t.Fatalf("record is not JSON: %v", err)
	}
	if rec["msg"] != "menu item created" || rec["request_id"] != "req-1" || rec["item_id"] != float64(7) {
		t.Errorf("unexpected record: %v", rec)
	}
	if _, ok := rec["source"]; ok {
		t.Error("source should be added only at debug level")
	}
}

func TestNewLogger_TextDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, LogOptions{Level: slog.LevelDebug, Format: LogFormatText})

	logger.Debug("visible")

	out := buf.String()
	if !strings.Contains(out, "msg=visible") || !strings.Contains(out, "source=") {
		t.Errorf("expected text debug record with source, got %s", out)
	}
}

func TestFromContext(t *testing.T) {
	if FromContext(context.Background()) != slog.Default() {
		t.Error("expected default logger without one in context")
	}

	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	ctx := WithLogger(context.Background(), logger)
	if FromContext(ctx) != logger {
		t.Error("expected logger from context")
	}
}
