package api

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shaiso/restaurant/internal/telemetry"
)

func TestRequestLogger_RestoresBody(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	var received string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		received = string(data)
	})

	body := `{"name":"Taco"}`
	req := httptest.NewRequest(http.MethodPost, "/menu?x=1", strings.NewReader(body))
	req = req.WithContext(telemetry.WithLogger(req.Context(), logger))

	RequestLogger(next).ServeHTTP(httptest.NewRecorder(), req)

	if received != body {
		t.Errorf("handler should see original body, got %q", received)
	}
	out := logs.String()
	if !strings.Contains(out, "path=/menu?x=1") {
		t.Errorf("expected path with query in log, got %s", out)
	}
	if !strings.Contains(out, `msg="request body"`) {
		t.Errorf("expected request body log entry, got %s", out)
	}
}

func TestRequestLogger_SkipsBodyForGet(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	req := httptest.NewRequest(http.MethodGet, "/menu", nil)
	req = req.WithContext(telemetry.WithLogger(req.Context(), logger))

	RequestLogger(http.NotFoundHandler()).ServeHTTP(httptest.NewRecorder(), req)

	if strings.Contains(logs.String(), "request body") {
		t.Errorf("GET should not log body, got %s", logs.String())
	}
}

func TestRequestID(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := RequestID(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	// Генерируется, если клиент не прислал
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Header().Get(HeaderRequestID) == "" {
		t.Error("expected generated request id")
	}

	// Сохраняется клиентский
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if got := rec.Header().Get(HeaderRequestID); got != "abc-123" {
		t.Errorf("expected abc-123, got %s", got)
	}
}

func TestRecovery(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	handler := Recovery(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/menu", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), MsgInternalError) {
		t.Errorf("expected %q in body, got %s", MsgInternalError, rec.Body.String())
	}

	// Паника пишется в лог ровно одной записью
	out := logs.String()
	if n := strings.Count(out, "level=ERROR"); n != 1 {
		t.Errorf("expected 1 error record, got %d:\n%s", n, out)
	}
	if strings.Contains(out, "internal error") {
		t.Errorf("unexpected second error record:\n%s", out)
	}
}

func TestLoggableBody(t *testing.T) {
	if v, ok := loggableBody(nil).(map[string]any); !ok || len(v) != 0 {
		t.Errorf("empty body should log as {}, got %v", loggableBody(nil))
	}
	if v := loggableBody([]byte("not json")); v != "not json" {
		t.Errorf("expected raw string, got %v", v)
	}
	if v, ok := loggableBody([]byte(`{"a":1}`)).(map[string]any); !ok || v["a"] != float64(1) {
		t.Errorf("expected parsed object, got %v", v)
	}
}
