package setup

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/IsaacDSC/eventory/pkg/ctxlogger"
	"github.com/IsaacDSC/eventory/pkg/logs"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
}

func TestCORSMiddleware_DefaultConfig(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Origin", "http://localhost:3000")

	rr := httptest.NewRecorder()
	CORSMiddleware(okHandler()).ServeHTTP(rr, req)

	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, POST, PATCH, DELETE, OPTIONS", rr.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type, Authorization, X-Request-ID", rr.Header().Get("Access-Control-Allow-Headers"))
	assert.Equal(t, "86400", rr.Header().Get("Access-Control-Max-Age"))
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestCORSMiddleware_PreflightRequest(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/test", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "POST")

	rr := httptest.NewRecorder()
	CORSMiddleware(okHandler()).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSMiddlewareWithConfig(t *testing.T) {
	config := CORSConfig{
		AllowedOrigins:   []string{"http://localhost:3000", "https://example.com"},
		AllowedMethods:   []string{"GET", "POST"},
		AllowedHeaders:   []string{"Content-Type"},
		ExposedHeaders:   []string{"X-Request-ID", "X-Total-Count"},
		AllowCredentials: true,
		MaxAge:           3600,
	}

	t.Run("allowed origin is echoed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("Origin", "http://localhost:3000")

		rr := httptest.NewRecorder()
		CORSMiddlewareWithConfig(config)(okHandler()).ServeHTTP(rr, req)

		assert.Equal(t, "http://localhost:3000", rr.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", rr.Header().Get("Access-Control-Allow-Credentials"))
		assert.Equal(t, "3600", rr.Header().Get("Access-Control-Max-Age"))
		assert.Equal(t, "X-Request-ID, X-Total-Count", rr.Header().Get("Access-Control-Expose-Headers"))
	})

	t.Run("disallowed origin still reaches the handler", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("Origin", "http://malicious-site.com")

		rr := httptest.NewRecorder()
		CORSMiddlewareWithConfig(config)(okHandler()).ServeHTTP(rr, req)

		assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	prev := logs.Default()
	t.Cleanup(func() { logs.SetDefault(prev) })

	var buf bytes.Buffer
	logs.SetDefault(logs.New(logs.WithOutput(&buf), logs.WithLevel(logs.LevelDebug)))
	return &buf
}

func TestLoggerMiddleware(t *testing.T) {
	buf := captureLogs(t)

	handler := LoggerMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxlogger.GetLogger(r.Context()).Info("inside handler")
		w.WriteHeader(http.StatusTeapot)
	}))

	t.Run("propagates the caller's request id", func(t *testing.T) {
		buf.Reset()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/events", nil)
		req.Header.Set("X-Request-ID", "req-123")

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, "req-123", rr.Header().Get("X-Request-ID"))

		var line map[string]any
		first := strings.SplitN(buf.String(), "\n", 2)[0]
		require.NoError(t, json.Unmarshal([]byte(first), &line))
		assert.Equal(t, "inside handler", line["msg"])
		assert.Equal(t, "req-123", line["request_id"])
		assert.Equal(t, "/api/v1/events", line["path"])
		assert.Contains(t, buf.String(), `"status":418`)
	})

	t.Run("generates a request id when missing", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Len(t, rr.Header().Get("X-Request-ID"), 36)
	})
}

func TestAsynqLogger(t *testing.T) {
	buf := captureLogs(t)

	failing := AsynqLogger(asynq.HandlerFunc(func(ctx context.Context, task *asynq.Task) error {
		ctxlogger.GetLogger(ctx).Info("relaying")
		return errors.New("relay down")
	}))

	err := failing.ProcessTask(context.Background(), asynq.NewTask("ticket.purchased", []byte(`{"to":"a@example.com"}`)))

	assert.EqualError(t, err, "relay down")
	assert.Contains(t, buf.String(), `"task_type":"ticket.purchased"`)
	assert.Contains(t, buf.String(), "Error processing task")
}
