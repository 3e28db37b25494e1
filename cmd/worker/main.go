package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/knitviz/di-graph-backend/internal/logger"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "worker",
	Short: "Offline tools for knit dependency graphs",
	Long: `worker analyzes a knit.json document without running the API server:
it renders the overall provider/consumer graph, explores a class the way the
UI does, and writes DOT, JSON and YAML artifacts.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(logger.Options{Level: logLevel, Output: cmd.ErrOrStderr()})
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
