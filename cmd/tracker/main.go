// Command tracker is the productivity competition CLI: it registers users,
// logs point-scoring activities weighted by a Noah multiplier, and renders
// the resulting leaderboard and recent-activity feed.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hurstk8/ProductivityCompetition/internal/config"
	"github.com/hurstk8/ProductivityCompetition/internal/domain"
	"github.com/hurstk8/ProductivityCompetition/internal/observability"
	"github.com/hurstk8/ProductivityCompetition/internal/persistence/sqlite"
)

var (
	// Global flags
	configPath string
	dataPath   string
	verbose    bool

	cfg    config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "tracker",
	Short: "Productivity competition tracker",
	Long: `tracker keeps a local productivity leaderboard.

Users log activities (workouts, side projects, job tasks, learning,
reading, or custom entries), each worth base points multiplied by a
chosen Noah value. The leaderboard ranks everyone by accumulated
NoahSum.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		if dataPath != "" {
			cfg.DataPath = dataPath
		}

		logger, err = observability.NewLogger(cfg.LogLevel, verbose)
		if err != nil {
			return fmt.Errorf("initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&dataPath, "data", "", "path to the tracker database (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// openLedger opens the durable store and loads the aggregator. The returned
// cleanup closes the store.
func openLedger(ctx context.Context) (*domain.Service, func(), error) {
	store, err := sqlite.Open(cfg.DataPath)
	if err != nil {
		return nil, nil, err
	}
	svc, err := domain.NewService(ctx, store,
		domain.WithLogger(logger),
		domain.WithFeedLimit(cfg.FeedLimit),
	)
	if err != nil {
		_ = store.Close()
		return nil, nil, err
	}
	return svc, func() { _ = store.Close() }, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
