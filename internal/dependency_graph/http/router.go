package http

import "github.com/gin-gonic/gin"

// Register mounts every dependency-graph route under rg (normally /api/v1).
func (h *Handler) Register(rg *gin.RouterGroup) {
	knit := rg.Group("/knit")
	knit.POST("/upload-knit-data", h.UploadKnitData)
	knit.GET("/base-classes", h.BaseClasses)
	knit.GET("/class-info/*name", h.ClassInfo)
	knit.GET("/child-classes/*name", h.ChildClasses)
	knit.GET("/graph", h.OverallGraph)

	rg.POST("/analyze", h.Analyze)

	sessions := rg.Group("/sessions")
	sessions.POST("", h.CreateSession)
	sessions.DELETE("/:id", h.DeleteSession)
	sessions.GET("/:id/graph", h.SessionGraph)
	sessions.GET("/:id/graph.dot", h.SessionDOT)
	sessions.GET("/:id/analysis", h.SessionAnalysis)
	sessions.POST("/:id/load", h.LoadBase)
	sessions.POST("/:id/explore", h.Explore)
	sessions.POST("/:id/focus", h.Focus)
	sessions.POST("/:id/back", h.Back)
	sessions.POST("/:id/clear-history", h.ClearHistory)
}
