package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateSession(c *gin.Context) {
	info := h.svc.CreateSession(c.Request.Context())
	c.JSON(http.StatusCreated, gin.H{"session": info})
}

func (h *Handler) DeleteSession(c *gin.Context) {
	if err := h.svc.DeleteSession(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, "delete_session", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) SessionGraph(c *gin.Context) {
	v, err := h.svc.SessionView(c.Param("id"))
	if err != nil {
		writeError(c, "session_graph", err)
		return
	}
	c.JSON(http.StatusOK, v)
}

func (h *Handler) SessionDOT(c *gin.Context) {
	title := c.DefaultQuery("title", "knit")
	dot, err := h.svc.SessionDOT(c.Param("id"), title)
	if err != nil {
		writeError(c, "session_dot", err)
		return
	}
	c.Data(http.StatusOK, "text/vnd.graphviz; charset=utf-8", []byte(dot))
}

func (h *Handler) SessionAnalysis(c *gin.Context) {
	res, err := h.svc.SessionAnalysis(c.Param("id"))
	if err != nil {
		writeError(c, "session_analysis", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) LoadBase(c *gin.Context) {
	v, err := h.svc.LoadBase(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, "load", err)
		return
	}
	c.JSON(http.StatusOK, v)
}

func (h *Handler) Explore(c *gin.Context) {
	var req exploreReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "explore", "invalid request body")
		return
	}
	res, err := h.svc.Explore(c.Request.Context(), c.Param("id"), req.ClassName, req.Isolated)
	if err != nil {
		writeError(c, "explore", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) Focus(c *gin.Context) {
	var req focusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "focus", "invalid request body")
		return
	}
	v, err := h.svc.Focus(c.Request.Context(), c.Param("id"), req.NodeID)
	if err != nil {
		writeError(c, "focus", err)
		return
	}
	c.JSON(http.StatusOK, v)
}

func (h *Handler) Back(c *gin.Context) {
	res, err := h.svc.Back(c.Param("id"))
	if err != nil {
		writeError(c, "back", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) ClearHistory(c *gin.Context) {
	v, err := h.svc.ClearHistory(c.Param("id"))
	if err != nil {
		writeError(c, "clear_history", err)
		return
	}
	c.JSON(http.StatusOK, v)
}
