package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"campus-board/config"
)

func TestCorsHandlerRestrictsOrigins(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	h := corsHandler(config.ServerConfig{AllowedOrigins: []string{"https://board.example.com"}}).Handler(next)

	allowed := httptest.NewRequest(http.MethodGet, "/api/v1/items/post", nil)
	allowed.Header.Set("Origin", "https://board.example.com")
	recorder := httptest.NewRecorder()
	h.ServeHTTP(recorder, allowed)
	assert.Equal(t, "https://board.example.com", recorder.Header().Get("Access-Control-Allow-Origin"))

	denied := httptest.NewRequest(http.MethodGet, "/api/v1/items/post", nil)
	denied.Header.Set("Origin", "https://evil.example.com")
	recorder = httptest.NewRecorder()
	h.ServeHTTP(recorder, denied)
	assert.Empty(t, recorder.Header().Get("Access-Control-Allow-Origin"))
}

func TestCorsHandlerAllowsAllByDefault(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	h := corsHandler(config.ServerConfig{}).Handler(next)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://anywhere.example.com")
	recorder := httptest.NewRecorder()
	h.ServeHTTP(recorder, req)
	assert.Equal(t, "*", recorder.Header().Get("Access-Control-Allow-Origin"))
}
