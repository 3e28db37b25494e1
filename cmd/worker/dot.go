package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/knitviz/di-graph-backend/internal/dependency_graph/analysis"
	"github.com/knitviz/di-graph-backend/internal/dependency_graph/domain"
	"github.com/knitviz/di-graph-backend/internal/dependency_graph/graph/export"
	"github.com/knitviz/di-graph-backend/internal/dependency_graph/utils"
)

var (
	dotRoot  string
	dotTitle string
)

var dotCmd = &cobra.Command{
	Use:   "dot <knit.json> <out.dot>",
	Short: "Write the overall graph, or an explored class with --root, as DOT",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		var g *domain.ProjectGraph
		if dotRoot != "" {
			res, err := exploreFile(ctx, args[0], dotRoot)
			if err != nil {
				return err
			}
			g = res.Graph
		} else {
			svc, err := loadService(ctx, args[0])
			if err != nil {
				return err
			}
			og, err := svc.OverallGraph(ctx)
			if err != nil {
				return err
			}
			g = og.Graph
		}

		dot := export.ToDOT(g, dotTitle, analysis.DetectCircularPairs(g))
		if err := utils.WriteFile(args[1], dot); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote: %s (%d nodes, %d links)\n", args[1], len(g.Nodes), len(g.Links))
		return nil
	},
}

func init() {
	dotCmd.Flags().StringVar(&dotRoot, "root", "", "explore from this class instead of drawing the overall graph")
	dotCmd.Flags().StringVar(&dotTitle, "title", "knit", "graph title")
	rootCmd.AddCommand(dotCmd)
}
