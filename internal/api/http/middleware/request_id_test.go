package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/knitviz/di-graph-backend/internal/logger"
)

func newEngine(seen *string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		*seen = logger.RequestID(c.Request.Context())
		c.String(http.StatusOK, c.GetString("request_id"))
	})
	return r
}

func TestRequestIDMiddleware_KeepsIncomingID(t *testing.T) {
	var seen string
	r := newEngine(&seen)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, "abc-123", rr.Header().Get(HeaderRequestID))
	assert.Equal(t, "abc-123", rr.Body.String())
	assert.Equal(t, "abc-123", seen)
}

func TestRequestIDMiddleware_GeneratesID(t *testing.T) {
	var seen string
	r := newEngine(&seen)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/ping", nil))

	rid := rr.Header().Get(HeaderRequestID)
	assert.Len(t, rid, 36)
	assert.Equal(t, rid, seen)
}
