package bootstrap

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/knitviz/di-graph-backend/internal/dependency_graph/explorer"
	"github.com/knitviz/di-graph-backend/internal/dependency_graph/service"
	"github.com/knitviz/di-graph-backend/internal/dependency_graph/session"
	"github.com/knitviz/di-graph-backend/internal/dependency_graph/store"
)

func newTestRouter(origins []string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := service.New(store.NewMemoryStore(), session.NewManager(time.Hour), service.Options{Limits: explorer.DefaultLimits()})
	return BuildRouter(RouterDeps{
		ServiceName: "knit-di-graph",
		Version:     "test",
		Service:     svc,
		CORSOrigins: origins,
	})
}

func TestBuildRouter_Routes(t *testing.T) {
	r := newTestRouter(nil)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"store":"memory:up"`)
	assert.Contains(t, rr.Body.String(), `"document":"missing"`)
	assert.NotEmpty(t, rr.Header().Get("X-Request-Id"))

	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/v1/sessions", nil))
	assert.Equal(t, http.StatusCreated, rr.Code)

	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "knitviz_sessions_active")
}

func TestBuildRouter_CORS(t *testing.T) {
	r := newTestRouter([]string{"http://ui.test"})

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/sessions", nil)
	req.Header.Set("Origin", "http://ui.test")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "http://ui.test", rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestSetGinMode(t *testing.T) {
	defer gin.SetMode(gin.TestMode)
	SetGinMode("production")
	assert.Equal(t, gin.ReleaseMode, gin.Mode())
}
