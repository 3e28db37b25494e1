package service

import (
	"github.com/knitviz/di-graph-backend/internal/dependency_graph/analysis"
	"github.com/knitviz/di-graph-backend/internal/dependency_graph/domain"
	"github.com/knitviz/di-graph-backend/internal/dependency_graph/explorer"
	"github.com/knitviz/di-graph-backend/internal/dependency_graph/session"
)

type UploadResult struct {
	Message  string `json:"message"`
	Filename string `json:"filename"`
	SavedAs  string `json:"saved_as"`
	Size     int    `json:"size"`
}

type AnalysisResult struct {
	analysis.Report `yaml:",inline"`
	LevelGroups     [][]string       `json:"level_groups" yaml:"level_groups"`
	Findings        []domain.Finding `json:"findings" yaml:"findings"`
}

// View is a session's visible graph plus its navigation state.
type View struct {
	Session session.Info         `json:"session"`
	Graph   *domain.ProjectGraph `json:"graph"`
}

type ExploreResult struct {
	View
	Root  string         `json:"root"`
	Stats explorer.Stats `json:"stats"`
}

type BackResult struct {
	View
	Restored bool `json:"restored"`
}
