package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	Store     string    `json:"store,omitempty"`
	Document  string    `json:"document,omitempty"`
}

// Pinger is the part of a document store health needs.
type Pinger interface {
	Name() string
	Ping(ctx context.Context) error
}

// ReadyFunc reports whether a knit document is available.
type ReadyFunc func(ctx context.Context) bool

type HealthHandler struct {
	serviceName string
	version     string
	store       Pinger
	ready       ReadyFunc
}

func NewHealthHandler(serviceName, version string, store Pinger, ready ReadyFunc) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
		store:       store,
		ready:       ready,
	}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	pingCtx, cancel := context.WithTimeout(c.Request.Context(), 1*time.Second)
	defer cancel()

	storeStatus := "disabled"
	if h.store != nil {
		if err := h.store.Ping(pingCtx); err != nil {
			storeStatus = h.store.Name() + ":down"
		} else {
			storeStatus = h.store.Name() + ":up"
		}
	}

	docStatus := ""
	if h.ready != nil {
		docStatus = "missing"
		if h.ready(pingCtx) {
			docStatus = "loaded"
		}
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Service:   h.serviceName,
		Version:   h.version,
		Store:     storeStatus,
		Document:  docStatus,
	})
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)
	r.GET("/healthz", h.HealthCheck)
}
