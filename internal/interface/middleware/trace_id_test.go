package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTraceEngine() (*gin.Engine, *string) {
	gin.SetMode(gin.TestMode)
	var seen string
	r := gin.New()
	r.Use(TraceID())
	r.GET("/", func(c *gin.Context) {
		seen = c.GetString("trace_id")
		c.Status(http.StatusOK)
	})
	return r, &seen
}

func TestTraceID_PassesThroughInboundHeader(t *testing.T) {
	r, seen := newTraceEngine()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(TraceIDHeader, "client-supplied-id")
	r.ServeHTTP(w, req)

	assert.Equal(t, "client-supplied-id", *seen)
	assert.Equal(t, "client-supplied-id", w.Header().Get(TraceIDHeader))
}

func TestTraceID_GeneratesWhenAbsent(t *testing.T) {
	r, seen := newTraceEngine()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	r.ServeHTTP(w, req)

	require.NotEmpty(t, *seen)
	_, err := uuid.Parse(*seen)
	assert.NoError(t, err, "generated trace id is a UUID")
	assert.Equal(t, *seen, w.Header().Get(TraceIDHeader))
}

func TestTraceID_BlankHeaderTreatedAsAbsent(t *testing.T) {
	r, seen := newTraceEngine()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(TraceIDHeader, "   ")
	r.ServeHTTP(w, req)

	require.NotEmpty(t, *seen)
	_, err := uuid.Parse(*seen)
	assert.NoError(t, err)
}
