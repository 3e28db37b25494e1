package http

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/knitviz/di-graph-backend/internal/dependency_graph/domain"
	"github.com/knitviz/di-graph-backend/internal/dependency_graph/service"
)

// UploadKnitData accepts a multipart "file" holding knit.json.
func (h *Handler) UploadKnitData(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		badRequest(c, "upload", "file is required")
		return
	}
	if file.Size > h.maxUploadBytes {
		badRequest(c, "upload", fmt.Sprintf("file exceeds %d bytes", h.maxUploadBytes))
		return
	}

	f, err := file.Open()
	if err != nil {
		writeError(c, "upload", err)
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, h.maxUploadBytes+1))
	if err != nil {
		writeError(c, "upload", err)
		return
	}

	res, err := h.svc.Upload(c.Request.Context(), file.Filename, data)
	if err != nil {
		writeError(c, "upload", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) BaseClasses(c *gin.Context) {
	bc, err := h.svc.BaseClasses(c.Request.Context())
	if err != nil {
		writeError(c, "base_classes", err)
		return
	}
	c.JSON(http.StatusOK, bc)
}

// className reads a catch-all path parameter; names may be slash-separated.
func className(c *gin.Context) string {
	return strings.TrimPrefix(c.Param("name"), "/")
}

func (h *Handler) ClassInfo(c *gin.Context) {
	info, err := h.svc.ClassInfo(c.Request.Context(), className(c))
	if err != nil {
		writeError(c, "class_info", err)
		return
	}
	c.JSON(http.StatusOK, info)
}

func (h *Handler) ChildClasses(c *gin.Context) {
	cc, err := h.svc.ChildClasses(c.Request.Context(), className(c))
	if err != nil {
		writeError(c, "child_classes", err)
		return
	}
	c.JSON(http.StatusOK, cc)
}

func (h *Handler) OverallGraph(c *gin.Context) {
	og, err := h.svc.OverallGraph(c.Request.Context())
	if err != nil {
		writeError(c, "overall_graph", err)
		return
	}
	c.JSON(http.StatusOK, og)
}

// Analyze runs the stateless analysis over a posted ProjectGraph.
func (h *Handler) Analyze(c *gin.Context) {
	var g domain.ProjectGraph
	if err := c.ShouldBindJSON(&g); err != nil {
		badRequest(c, "analyze", "invalid graph body")
		return
	}
	res, err := service.Analyze(&g)
	if err != nil {
		writeError(c, "analyze", err)
		return
	}
	c.JSON(http.StatusOK, res)
}
