package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hurstk8/ProductivityCompetition/internal/domain"
	"github.com/hurstk8/ProductivityCompetition/internal/render"
)

var leaderboardCmd = &cobra.Command{
	Use:     "leaderboard",
	Aliases: []string{"board"},
	Short:   "Show users ranked by NoahSum",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeStore, err := openLedger(cmd.Context())
		if err != nil {
			return err
		}
		defer closeStore()

		st := render.NewStyles(cfg.NoColor)
		entries, err := svc.Leaderboard()
		if errors.Is(err, domain.ErrNoUsers) {
			fmt.Fprint(cmd.OutOrStdout(), render.EmptyLeaderboard(st))
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), render.Leaderboard(st, entries))
		return nil
	},
}

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "Show the recent activity feed",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeStore, err := openLedger(cmd.Context())
		if err != nil {
			return err
		}
		defer closeStore()

		st := render.NewStyles(cfg.NoColor)
		entries, err := svc.RecentActivities()
		if errors.Is(err, domain.ErrNoActivities) {
			fmt.Fprint(cmd.OutOrStdout(), render.EmptyFeed(st))
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), render.Feed(st, entries))
		return nil
	},
}

var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Rebuild user totals from the activity log",
	Long: `Recomputes every user's totals from the persisted activity log and
saves the registry. Use this after a crash between the two writes of a
log operation left stored totals behind the stored log.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeStore, err := openLedger(cmd.Context())
		if err != nil {
			return err
		}
		defer closeStore()

		if err := svc.Reconcile(cmd.Context()); err != nil {
			return err
		}
		st := render.NewStyles(cfg.NoColor)
		fmt.Fprint(cmd.OutOrStdout(), render.Toast(st, "User totals reconciled with the activity log"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(leaderboardCmd, recentCmd, reconcileCmd)
}
