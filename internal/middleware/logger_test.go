package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
)

func TestLoggerWritesStructuredAccessLine(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)
	h := RequestID(Logger(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("nope"))
	})))

	req := httptest.NewRequest(http.MethodGet, "/v1/orders/9", nil)
	req.Header.Set("X-Request-ID", "req-1")
	h.ServeHTTP(httptest.NewRecorder(), req)

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("decode log line: %v (%s)", err, buf.String())
	}
	if line["request_id"] != "req-1" || line["path"] != "/v1/orders/9" || line["method"] != "GET" {
		t.Fatalf("unexpected log line: %v", line)
	}
	if line["status"] != float64(404) || line["level"] != "warn" {
		t.Fatalf("status/level = %v/%v", line["status"], line["level"])
	}
	if line["bytes"] != float64(4) {
		t.Fatalf("bytes = %v", line["bytes"])
	}
}
