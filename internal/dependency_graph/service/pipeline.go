package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/knitviz/di-graph-backend/internal/dependency_graph/analysis"
	"github.com/knitviz/di-graph-backend/internal/dependency_graph/domain"
	"github.com/knitviz/di-graph-backend/internal/dependency_graph/graph/export"
	"github.com/knitviz/di-graph-backend/internal/dependency_graph/ingest/mapper"
	"github.com/knitviz/di-graph-backend/internal/dependency_graph/utils"
)

type PipelineOptions struct {
	Title string
	// Render runs graphviz to produce graph.svg next to graph.dot.
	Render bool
	DotBin string
}

type PipelineResult struct {
	Graph      *domain.ProjectGraph `json:"graph" yaml:"graph"`
	Roles      map[string][]string  `json:"roles" yaml:"roles"`
	Unresolved []mapper.Unresolved  `json:"unresolved" yaml:"unresolved"`
	Analysis   *AnalysisResult      `json:"analysis" yaml:"analysis"`
	DOTPath    string               `json:"dot_path" yaml:"dot_path"`
	SVGPath    string               `json:"svg_path,omitempty" yaml:"svg_path,omitempty"`
}

// AnalyzeDocument analyzes knit.json bytes into a fresh run folder under
// outBaseDir/runs/<id>.
func AnalyzeDocument(ctx context.Context, data []byte, outBaseDir string, opts PipelineOptions) (*PipelineResult, error) {
	if outBaseDir == "" {
		outBaseDir = "out"
	}
	runDir := filepath.Join(outBaseDir, "runs", uuid.NewString())
	return AnalyzeDocumentToDir(ctx, data, runDir, opts)
}

// AnalyzeDocumentToDir builds the overall provides/consumes graph of a knit
// document and writes graph.dot, analysis.json and analysis.yaml to outDir.
func AnalyzeDocumentToDir(ctx context.Context, data []byte, outDir string, opts PipelineOptions) (*PipelineResult, error) {
	cat, err := buildCatalog(data)
	if err != nil {
		return nil, err
	}
	og := mapper.ToOverallGraph(cat.Document())

	if outDir == "" {
		outDir = "out"
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, err
	}
	if opts.Title == "" {
		opts.Title = "knit"
	}

	report, err := Analyze(og.Graph)
	if err != nil {
		return nil, err
	}

	dot := export.ToDOT(og.Graph, opts.Title, report.CircularPairs)
	dotPath := filepath.Join(outDir, "graph.dot")
	if err := utils.WriteFile(dotPath, dot); err != nil {
		return nil, err
	}

	res := &PipelineResult{
		Graph:      og.Graph,
		Roles:      og.Roles,
		Unresolved: og.Unresolved,
		Analysis:   report,
		DOTPath:    dotPath,
	}

	if opts.Render {
		svgPath := filepath.Join(outDir, "graph.svg")
		if err := utils.DotTo(ctx, dotPath, svgPath, "svg", opts.DotBin); err != nil {
			return nil, fmt.Errorf("graphviz render: %w", err)
		}
		res.SVGPath = svgPath
	}

	if err := export.WriteJSON(filepath.Join(outDir, "analysis.json"), res); err != nil {
		return nil, err
	}
	if err := export.WriteYAML(filepath.Join(outDir, "analysis.yaml"), res); err != nil {
		return nil, err
	}
	return res, nil
}

// CircularNodes lists the classes involved in any cycle of res.
func (r *PipelineResult) CircularNodes() []string {
	if r == nil || r.Analysis == nil {
		return []string{}
	}
	return analysis.CircularNodes(r.Analysis.CircularPairs)
}
