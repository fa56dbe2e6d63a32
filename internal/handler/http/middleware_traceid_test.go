package http

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/harborline/moorage/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestHandler builds a Handler with a nop logger so tests stay silent.
func newTestHandler() *Handler {
	return &Handler{logger: logger.Nop()}
}

func traceRequest(h *Handler, incomingID string) *httptest.ResponseRecorder {
	handler := h.withTraceID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	if incomingID != "" {
		req.Header.Set(traceIDHeader, incomingID)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestWithTraceID_ReusesIncomingID(t *testing.T) {
	h := newTestHandler()

	for _, id := range []string{
		"my-custom-trace-id",
		"550e8400-e29b-41d4-a716-446655440000",
		"very-long-trace-id-that-is-still-valid-0123456789abcdef",
	} {
		rec := traceRequest(h, id)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, id, rec.Header().Get(traceIDHeader))
	}
}

func TestWithTraceID_GeneratesUUIDWhenAbsent(t *testing.T) {
	h := newTestHandler()

	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		rec := traceRequest(h, "")

		id := rec.Header().Get(traceIDHeader)
		require.NotEmpty(t, id, "the response must always carry a trace ID")

		_, err := uuid.Parse(id)
		require.NoError(t, err, "generated trace ID should be a valid UUID, got: %s", id)

		_, duplicate := seen[id]
		assert.False(t, duplicate, "duplicate trace ID generated: %s", id)
		seen[id] = struct{}{}
	}
}

func TestWithTraceID_LoggerReachesHandler(t *testing.T) {
	h := newTestHandler()

	var ctxLogger *logger.Logger
	handler := h.withTraceID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxLogger = logger.FromRequest(r)
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(traceIDHeader, "trace-context-test")

	handler.ServeHTTP(httptest.NewRecorder(), req)

	require.NotNil(t, ctxLogger, "the tagged logger must be reachable from the request context")
}

func TestWithTraceID_NextRunsAndStatusPropagates(t *testing.T) {
	h := newTestHandler()

	called := false
	handler := h.withTraceID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.True(t, called)
	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestWithTraceID_Concurrent(t *testing.T) {
	h := newTestHandler()

	const n = 50
	ids := make(chan string, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids <- traceRequest(h, "").Header().Get(traceIDHeader)
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[string]struct{})
	for id := range ids {
		require.NotEmpty(t, id)
		_, err := uuid.Parse(id)
		require.NoError(t, err)
		seen[id] = struct{}{}
	}

	assert.Len(t, seen, n, "concurrent requests must each get their own trace ID")
}
