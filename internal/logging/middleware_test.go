package logging

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware_LogsRequest(t *testing.T) {
	buf := new(bytes.Buffer)
	logger := New(buf, "test", "debug", "json")

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(Middleware(logger))
	r.Get("/missing", func(w http.ResponseWriter, r *http.Request) {
		zerolog.Ctx(r.Context()).Debug().Msg("inside handler")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("nope"))
	})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/missing", nil))
	require.Equal(t, http.StatusNotFound, rr.Code)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var inner, entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &inner))
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &entry))

	assert.Equal(t, "inside handler", inner["message"])
	assert.NotEmpty(t, inner["request_id"])

	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "test", entry["service"])
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/missing", entry["path"])
	assert.Equal(t, float64(404), entry["status_code"])
	assert.Equal(t, float64(4), entry["bytes"])
	assert.Equal(t, inner["request_id"], entry["request_id"])
}

func TestMiddleware_DefaultStatus(t *testing.T) {
	buf := new(bytes.Buffer)
	logger := New(buf, "test", "info", "json")

	h := Middleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", nil))

	assert.Contains(t, buf.String(), `"status_code":200`)
	assert.Contains(t, buf.String(), `"level":"info"`)
}

func TestNew_Level(t *testing.T) {
	assert.Equal(t, zerolog.WarnLevel, New(nil, "svc", "WARN", "json").GetLevel())
	assert.Equal(t, zerolog.InfoLevel, New(nil, "svc", "bogus", "json").GetLevel())
	assert.Equal(t, zerolog.InfoLevel, New(nil, "svc", "", "console").GetLevel())
}

func TestRequestID(t *testing.T) {
	var got string
	h := middleware.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = RequestID(r.Context())
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.NotEmpty(t, got)
	assert.Empty(t, RequestID(httptest.NewRequest(http.MethodGet, "/", nil).Context()))
}
