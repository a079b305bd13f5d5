package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hurstk8/ProductivityCompetition/internal/domain"
	"github.com/hurstk8/ProductivityCompetition/internal/render"
)

var (
	logUser         string
	logType         string
	logNoahs        string
	logNotes        string
	logCustomName   string
	logCustomPoints string
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Log an activity for a user",
	Long: `Logs an activity worth base points times the Noah multiplier.

Types and base points:
  workout       10
  side-project  15
  job-task      8
  learning      12
  reading       5
  custom        caller-supplied --name and --points

Example:
  tracker log --user alice --type workout --noahs 1.5
  tracker log --user bob --type custom --name "Deep Work" --points 20 --noahs 2`,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeStore, err := openLedger(cmd.Context())
		if err != nil {
			return err
		}
		defer closeStore()

		input := domain.LogActivityInput{
			UserID:       resolveUser(svc, logUser),
			Type:         logType,
			Noahs:        logNoahs,
			Notes:        logNotes,
			CustomName:   logCustomName,
			CustomPoints: logCustomPoints,
		}
		_, confirmation, err := svc.LogActivity(cmd.Context(), input)
		if err != nil {
			return err
		}

		st := render.NewStyles(cfg.NoColor)
		fmt.Fprint(cmd.OutOrStdout(), render.Toast(st, confirmation))
		return nil
	},
}

// resolveUser lets callers pass a user name instead of an id. Unresolvable
// values pass through untouched so the ledger reports the validation
// failure.
func resolveUser(svc *domain.Service, raw string) string {
	users := svc.Users()
	for _, u := range users {
		if u.ID == raw {
			return raw
		}
	}
	for _, u := range users {
		if strings.EqualFold(u.Name, strings.TrimSpace(raw)) {
			return u.ID
		}
	}
	return raw
}

func init() {
	logCmd.Flags().StringVarP(&logUser, "user", "u", "", "user id or name")
	logCmd.Flags().StringVarP(&logType, "type", "t", "", "activity type")
	logCmd.Flags().StringVarP(&logNoahs, "noahs", "n", "", "Noah multiplier (must be greater than 0)")
	logCmd.Flags().StringVar(&logNotes, "notes", "", "optional notes")
	logCmd.Flags().StringVar(&logCustomName, "name", "", "custom activity name (custom type only)")
	logCmd.Flags().StringVar(&logCustomPoints, "points", "", "custom activity points (custom type only)")
	rootCmd.AddCommand(logCmd)
}
