package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hurstk8/ProductivityCompetition/internal/render"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage the user registry",
}

var userAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Register a new user",
	Long: `Registers a user with zero totals. Names must be unique; two names
differing only in case count as the same user.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeStore, err := openLedger(cmd.Context())
		if err != nil {
			return err
		}
		defer closeStore()

		user, err := svc.AddUser(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		st := render.NewStyles(cfg.NoColor)
		fmt.Fprint(cmd.OutOrStdout(), render.Toast(st, fmt.Sprintf("%s joined the competition!", user.Name)))
		return nil
	},
}

var userListCmd = &cobra.Command{
	Use:   "list",
	Short: "List users in registration order",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeStore, err := openLedger(cmd.Context())
		if err != nil {
			return err
		}
		defer closeStore()

		st := render.NewStyles(cfg.NoColor)
		users := svc.Users()
		if len(users) == 0 {
			fmt.Fprint(cmd.OutOrStdout(), render.EmptyLeaderboard(st))
			return nil
		}
		fmt.Fprint(cmd.OutOrStdout(), render.UserList(st, users))
		return nil
	},
}

func init() {
	userCmd.AddCommand(userAddCmd, userListCmd)
	rootCmd.AddCommand(userCmd)
}
