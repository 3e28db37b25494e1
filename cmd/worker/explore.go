package main

import (
	"context"
	"encoding/json"
	"time"

	"github.com/spf13/cobra"

	"github.com/knitviz/di-graph-backend/internal/dependency_graph/analysis"
	"github.com/knitviz/di-graph-backend/internal/dependency_graph/domain"
	"github.com/knitviz/di-graph-backend/internal/dependency_graph/explorer"
	"github.com/knitviz/di-graph-backend/internal/dependency_graph/service"
	"github.com/knitviz/di-graph-backend/internal/dependency_graph/session"
	"github.com/knitviz/di-graph-backend/internal/dependency_graph/store"
)

var exploreLimits = explorer.DefaultLimits()

type exploreOutput struct {
	Root       string               `json:"root"`
	Graph      *domain.ProjectGraph `json:"graph"`
	Stats      explorer.Stats       `json:"stats"`
	Statistics domain.Statistics    `json:"statistics"`
}

// loadService uploads path into an in-memory service.
func loadService(ctx context.Context, path string) (*service.Service, error) {
	svc := service.New(store.NewMemoryStore(), session.NewManager(time.Hour), service.Options{Limits: exploreLimits})
	if _, err := svc.LoadFile(ctx, path); err != nil {
		return nil, err
	}
	return svc, nil
}

func exploreFile(ctx context.Context, path, class string) (*explorer.Result, error) {
	svc, err := loadService(ctx, path)
	if err != nil {
		return nil, err
	}
	exp, err := svc.Explorer(ctx)
	if err != nil {
		return nil, err
	}
	return exp.ExploreDetailed(ctx, class, explorer.Options{Isolated: true})
}

var exploreCmd = &cobra.Command{
	Use:   "explore <knit.json> <class>",
	Short: "Explore a class and print the resulting graph as JSON",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := exploreFile(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(exploreOutput{
			Root:       res.Root,
			Graph:      res.Graph,
			Stats:      res.Stats,
			Statistics: analysis.ComputeStatistics(res.Graph),
		})
	},
}

func init() {
	f := exploreCmd.Flags()
	f.IntVar(&exploreLimits.AttributeDepth, "attribute-depth", exploreLimits.AttributeDepth, "recurse into parameters, components and injections below this depth")
	f.IntVar(&exploreLimits.ChildDepth, "child-depth", exploreLimits.ChildDepth, "recurse into child classes below this depth")
	f.IntVar(&exploreLimits.MaxChildren, "max-children", exploreLimits.MaxChildren, "child classes kept per class")
	rootCmd.AddCommand(exploreCmd)
}
