package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/homelyhq/homely-backend/config"
)

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	e := NewEngine(config.Load(), nil)
	api := e.Group("/api")
	api.POST("/properties/like", func(c *gin.Context) { c.Status(http.StatusOK) })
	api.POST("/register", func(c *gin.Context) { c.Status(http.StatusCreated) })
	return e
}

func decodeMiss(t *testing.T, w *httptest.ResponseRecorder) (int, bool, string) {
	t.Helper()
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("Content-Type = %q, want application/json", ct)
	}
	var env struct {
		Status  int    `json:"status"`
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("body is not an envelope: %v (body=%s)", err, w.Body.String())
	}
	return env.Status, env.Success, env.Message
}

func TestEngineWrongMethodIsJSON405(t *testing.T) {
	e := newTestEngine(t)

	cases := []struct {
		method, path string
	}{
		{http.MethodGet, "/api/properties/like"},
		{http.MethodDelete, "/api/properties/like"},
		{http.MethodGet, "/api/register"},
		{http.MethodPut, "/api/register"},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		e.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))

		if w.Code != http.StatusMethodNotAllowed {
			t.Errorf("%s %s: got %d, want 405", tc.method, tc.path, w.Code)
			continue
		}
		status, success, msg := decodeMiss(t, w)
		if status != http.StatusMethodNotAllowed || success || msg != "method not allowed" {
			t.Errorf("%s %s: envelope = (%d, %v, %q)", tc.method, tc.path, status, success, msg)
		}
	}
}

func TestEngineUnknownRouteIsJSON404(t *testing.T) {
	e := newTestEngine(t)

	w := httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/nope", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("got %d, want 404", w.Code)
	}
	status, success, msg := decodeMiss(t, w)
	if status != http.StatusNotFound || success || msg != "route not found" {
		t.Fatalf("envelope = (%d, %v, %q)", status, success, msg)
	}
}
