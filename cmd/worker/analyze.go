package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/knitviz/di-graph-backend/internal/dependency_graph/service"
)

var (
	analyzeOut    string
	analyzeTitle  string
	analyzeSVG    bool
	analyzeDotBin string
	analyzeRunDir bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <knit.json>",
	Short: "Write graph.dot, analysis.json and analysis.yaml for a knit document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		opts := service.PipelineOptions{
			Title:  analyzeTitle,
			Render: analyzeSVG,
			DotBin: analyzeDotBin,
		}

		var res *service.PipelineResult
		if analyzeRunDir {
			res, err = service.AnalyzeDocument(cmd.Context(), data, analyzeOut, opts)
		} else {
			res, err = service.AnalyzeDocumentToDir(cmd.Context(), data, analyzeOut, opts)
		}
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Wrote: %s", res.DOTPath)
		if res.SVGPath != "" {
			fmt.Fprintf(out, ", %s", res.SVGPath)
		}
		fmt.Fprintln(out)

		s := res.Analysis.Statistics
		fmt.Fprintf(out, "Modules: %d  Dependencies: %d  Circular: %d  Max depth: %d  Avg deps: %.1f\n",
			s.TotalModules, s.TotalDependencies, s.CircularDeps, s.MaxDepth, s.AvgDeps)
		if len(res.Unresolved) > 0 {
			fmt.Fprintf(out, "Unresolved (%d):\n", len(res.Unresolved))
			for _, u := range res.Unresolved {
				fmt.Fprintf(out, " - %s needs %s\n", u.From, u.Type)
			}
		}
		fmt.Fprintf(out, "Findings (%d):\n", len(res.Analysis.Findings))
		for _, f := range res.Analysis.Findings {
			fmt.Fprintf(out, " - [%s] %s: %s\n", f.Severity, f.Title, f.Summary)
		}
		return nil
	},
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeOut, "out", "o", "out", "output directory")
	analyzeCmd.Flags().StringVar(&analyzeTitle, "title", "knit", "graph title")
	analyzeCmd.Flags().BoolVar(&analyzeSVG, "svg", false, "render graph.svg with graphviz")
	analyzeCmd.Flags().StringVar(&analyzeDotBin, "dot-bin", os.Getenv("DOT_BIN"), "graphviz dot binary")
	analyzeCmd.Flags().BoolVar(&analyzeRunDir, "run-dir", false, "write into <out>/runs/<id> instead of <out>")
	rootCmd.AddCommand(analyzeCmd)
}
