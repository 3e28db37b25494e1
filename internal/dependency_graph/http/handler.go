// Package http exposes the knit catalog, stateless analysis and navigation
// sessions over gin.
package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/knitviz/di-graph-backend/internal/dependency_graph/domain"
	"github.com/knitviz/di-graph-backend/internal/dependency_graph/service"
	"github.com/knitviz/di-graph-backend/internal/logger"
)

// DefaultMaxUploadBytes caps an uploaded knit.json.
const DefaultMaxUploadBytes int64 = 32 << 20

type Handler struct {
	svc            *service.Service
	maxUploadBytes int64
}

func New(svc *service.Service, maxUploadBytes int64) *Handler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = DefaultMaxUploadBytes
	}
	return &Handler{svc: svc, maxUploadBytes: maxUploadBytes}
}

// ErrRootLookupFailed wraps the provider's error, which may itself be a
// not-found sentinel, so it is matched first.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrRootLookupFailed):
		return http.StatusBadGateway
	case errors.Is(err, domain.ErrInvalidClassName), errors.Is(err, domain.ErrInvalidDocument):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrClassNotFound),
		errors.Is(err, domain.ErrNodeNotFound),
		errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrNoDocument):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// writeError maps a service error onto a status and an {"error": msg} body.
func writeError(c *gin.Context, op string, err error) {
	status := statusFor(err)
	log := logger.New(c.Request.Context())
	if status >= http.StatusInternalServerError {
		log.LogError(op, err)
	} else {
		log.LogWarnf(op, "%d: %v", status, err)
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func badRequest(c *gin.Context, op, msg string) {
	logger.New(c.Request.Context()).LogWarn(op, msg)
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}
