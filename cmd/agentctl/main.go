// Package main is the agentctl CLI. It runs the agent router in-process,
// without the HTTP layer.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/prefeitura-rio/app-research-agent/internal/agent"
	"github.com/prefeitura-rio/app-research-agent/internal/config"
	"github.com/prefeitura-rio/app-research-agent/internal/logging"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:     "agentctl",
	Short:   "Run research agent modes from the command line",
	Version: version,
	Long: `agentctl runs the same router as the API server: arXiv search with LLM query
normalization and paper analysis with the configured LLM provider.

Configuration comes from the environment (and .env), like the server.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadConfig()
		if err != nil {
			return err
		}

		level, _ := cmd.Flags().GetString("log-level")
		if level == "" {
			level = "warn"
		}
		logger, err = logging.New(level)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "", "log level (default: warn)")
}

// newRouter builds the router from the loaded config
func newRouter(ctx context.Context) (*agent.Router, error) {
	return agent.NewFromConfig(ctx, cfg, logger)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
