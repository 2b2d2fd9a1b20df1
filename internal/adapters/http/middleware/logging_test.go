package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ybrd/todo/internal/adapters/http/middleware"
)

func TestLogging_LogsStartAndCompletion(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	handler := middleware.Chain(
		middleware.RequestID(),
		middleware.Logging(logger),
	)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	r := httptest.NewRequest(http.MethodGet, "/api/v1/todos/9", nil)
	r.Header.Set("X-Request-ID", "req-log")
	handler.ServeHTTP(httptest.NewRecorder(), r)

	out := buf.String()
	if !strings.Contains(out, "request started") || !strings.Contains(out, "request completed") {
		t.Fatalf("missing start/completion entries:\n%s", out)
	}
	if !strings.Contains(out, `"request_id":"req-log"`) {
		t.Errorf("request id not propagated to log entries:\n%s", out)
	}
	if !strings.Contains(out, `"status":404`) {
		t.Errorf("status not captured:\n%s", out)
	}
}

func TestRedactHeaders(t *testing.T) {
	t.Parallel()

	h := http.Header{}
	h.Set("Authorization", "Bearer secret-token")
	h.Set("Accept", "application/json")
	h.Add("X-Multi", "a")
	h.Add("X-Multi", "b")

	attrs := middleware.RedactHeaders(h)

	got := make(map[string]string, len(attrs))
	for _, a := range attrs {
		got[a.Key] = a.Value.String()
	}

	if got["Authorization"] != "[REDACTED]" {
		t.Errorf("Authorization = %q, want [REDACTED]", got["Authorization"])
	}
	if got["Accept"] != "application/json" {
		t.Errorf("Accept = %q", got["Accept"])
	}
	if got["X-Multi"] != "a,b" {
		t.Errorf("X-Multi = %q, want joined values", got["X-Multi"])
	}
}
