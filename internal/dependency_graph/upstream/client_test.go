package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/knitviz/di-graph-backend/internal/dependency_graph/domain"
	"github.com/knitviz/di-graph-backend/internal/logger"
)

func newServer(t *testing.T) (*httptest.Server, *[]string) {
	t.Helper()
	var seen []string
	mux := http.NewServeMux()
	mux.HandleFunc("/base-classes", func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Header.Get("X-Request-Id"))
		_, _ = w.Write([]byte(`{"java.lang.Object":[{"name":"knit/demo/EventBus","is_provider":true}],"java.lang.Object_count":1}`))
	})
	mux.HandleFunc("/class-info/", func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(r.URL.Path, "/class-info/")
		switch name {
		case "knit/demo/AuditLogger":
			parent := "java.lang.Object"
			_ = json.NewEncoder(w).Encode(domain.ClassInfo{
				Name:        name,
				ParentClass: &parent,
				IsProvider:  true,
				Parameters:  []domain.ParameterInfo{{Name: "knit.demo.EventBus", IsProvider: true}},
			})
		case "knit/demo/Broken":
			http.Error(w, "kaboom", http.StatusInternalServerError)
		case "knit/demo/Garbled":
			_, _ = w.Write([]byte(`{"name":`))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"detail":"Class not found"}`))
		}
	})
	mux.HandleFunc("/child-classes/", func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(r.URL.Path, "/child-classes/")
		_, _ = w.Write([]byte(`{"parent_class":"` + name + `","count":0}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, &seen
}

func TestClient_BaseClasses(t *testing.T) {
	srv, seen := newServer(t)
	c := NewClient(srv.URL+"/", Options{})

	ctx := logger.WithRequestID(context.Background(), "rid-1")
	bc, err := c.BaseClasses(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.ClassRef{{Name: "knit/demo/EventBus", IsProvider: true}}, bc["java.lang.Object"])
	assert.Len(t, bc, 1)
	assert.Equal(t, []string{"rid-1"}, *seen)
}

func TestClient_ClassInfo(t *testing.T) {
	srv, _ := newServer(t)
	c := NewClient(srv.URL, Options{Timeout: time.Second})

	info, err := c.ClassInfo(context.Background(), "knit/demo/AuditLogger")
	require.NoError(t, err)
	assert.True(t, info.IsProvider)
	require.NotNil(t, info.ParentClass)
	assert.Equal(t, "java.lang.Object", *info.ParentClass)
	assert.Equal(t, "knit.demo.EventBus", info.Parameters[0].Name)
}

func TestClient_ClassInfoErrors(t *testing.T) {
	srv, _ := newServer(t)
	c := NewClient(srv.URL, Options{})

	_, err := c.ClassInfo(context.Background(), "knit/demo/Missing")
	assert.ErrorIs(t, err, domain.ErrClassNotFound)

	_, err = c.ClassInfo(context.Background(), "knit/demo/Broken")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
	assert.NotErrorIs(t, err, domain.ErrClassNotFound)

	_, err = c.ClassInfo(context.Background(), "knit/demo/Garbled")
	assert.ErrorContains(t, err, "decode")

	_, err = c.ClassInfo(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidClassName)
}

func TestClient_ChildClassesNeverNil(t *testing.T) {
	srv, _ := newServer(t)
	c := NewClient(srv.URL, Options{})

	cc, err := c.ChildClasses(context.Background(), "knit.demo.GitCommand")
	require.NoError(t, err)
	assert.Equal(t, "knit.demo.GitCommand", cc.ParentClass)
	assert.NotNil(t, cc.ChildClasses)
}

func TestClient_RespectsCancelledContext(t *testing.T) {
	srv, _ := newServer(t)
	c := NewClient(srv.URL, Options{Rate: 1, Burst: 1})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.BaseClasses(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEscapePath(t *testing.T) {
	assert.Equal(t, "knit/demo/Foo%20Bar", escapePath("knit/demo/Foo Bar"))
	assert.Equal(t, "knit.demo.Foo", escapePath(" knit.demo.Foo "))
}
