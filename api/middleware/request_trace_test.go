package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"campus-board/api/trace"
)

func newTraceEngine(seen *string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestTrace())
	r.GET("/ping", func(c *gin.Context) {
		*seen = trace.RequestIDFromContext(c.Request.Context())
		c.Status(http.StatusNoContent)
	})
	return r
}

func TestRequestTraceKeepsIncomingID(t *testing.T) {
	var seen string
	r := newTraceEngine(&seen)

	req := httptest.NewRequest(http.MethodGet, "/ping?x=1", nil)
	req.Header.Set(headerRequestID, "req-123")
	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Equal(t, "req-123", seen)
	assert.Equal(t, "req-123", recorder.Header().Get(headerRequestID))
}

func TestRequestTraceGeneratesID(t *testing.T) {
	var seen string
	r := newTraceEngine(&seen)

	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, recorder.Header().Get(headerRequestID))
}
