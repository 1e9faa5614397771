package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"codeberg.org/simpleapi/server/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	srv, err := NewServer(&config.Config{
		Host:             "127.0.0.1",
		Port:             3000,
		LogLevel:         "INFO",
		MaxContentLength: 1 << 20,
		Environment:      "development",
	})
	require.NoError(t, err)

	return srv
}

func do(srv *Server, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	return w
}

func TestIndexEndpoint(t *testing.T) {
	srv := newTestServer(t)

	w := do(srv, http.MethodGet, "/", "")

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "simple_api", body["service"])
	assert.NotEmpty(t, body["version"])
}

func TestHealthEndpoint_ExactBody(t *testing.T) {
	srv := newTestServer(t)

	w := do(srv, http.MethodGet, "/health", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy","service":"simple_api"}`, w.Body.String())
}

func TestUnmatchedPathReturns404(t *testing.T) {
	srv := newTestServer(t)

	for _, method := range []string{http.MethodGet, http.MethodPost, http.MethodDelete} {
		w := do(srv, method, "/does-not-exist", "")

		require.Equal(t, http.StatusNotFound, w.Code, "method %s", method)
		assert.JSONEq(t, `{"error":"Not found"}`, w.Body.String())
	}
}

func TestWrongMethodReturns405(t *testing.T) {
	srv := newTestServer(t)

	w := do(srv, http.MethodPost, "/health", "")

	require.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Contains(t, w.Body.String(), "Method not allowed")
}

func TestSecurityHeadersOnEveryResponse(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/", "/health", "/nope"} {
		w := do(srv, http.MethodGet, path, "")

		assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"), "path %s", path)
		assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"), "path %s", path)
		assert.NotEmpty(t, w.Header().Get("Strict-Transport-Security"), "path %s", path)
	}
}

func TestCORSHeaders(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://example.com")
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSPreflight(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/notes", nil)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "POST")
}

func TestApispecEndpoint(t *testing.T) {
	srv := newTestServer(t)

	w := do(srv, http.MethodGet, "/apispec.json", "")

	require.Equal(t, http.StatusOK, w.Code)

	var spec map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &spec))
	info, ok := spec["info"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "simple_api - Todo Notes", info["title"])
}

func TestOversizedBodyReturns413(t *testing.T) {
	srv, err := NewServer(&config.Config{
		Host:             "127.0.0.1",
		Port:             3000,
		LogLevel:         "INFO",
		MaxContentLength: 32,
		Environment:      "development",
	})
	require.NoError(t, err)

	w := do(srv, http.MethodPost, "/api/v1/notes",
		`{"title": "t", "content": "`+strings.Repeat("x", 128)+`"}`)

	require.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Contains(t, w.Body.String(), "Payload too large")
}

func TestNotesRoundTrip(t *testing.T) {
	srv := newTestServer(t)

	w := do(srv, http.MethodPost, "/api/v1/notes",
		`{"title": "Buy groceries", "content": "Milk, eggs, bread, and coffee"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var created map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	id, ok := created["id"].(string)
	require.True(t, ok)

	w = do(srv, http.MethodGet, "/api/v1/notes/"+id, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = do(srv, http.MethodPut, "/api/v1/notes/"+id, `{"completed": true}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"completed":true`)

	w = do(srv, http.MethodDelete, "/api/v1/notes/"+id, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = do(srv, http.MethodGet, "/api/v1/notes/"+id, "")
	require.Equal(t, http.StatusNotFound, w.Code)
}
