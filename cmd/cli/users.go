package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "List registered users",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := cmdContext()
		defer cancel()

		users, err := api().ListUsers(ctx)
		if err != nil {
			fatal("list users", err)
		}
		for _, u := range users {
			fmt.Printf("%s %s\n", u.ID, u.Email)
		}
	},
}

var rmuserCmd = &cobra.Command{
	Use:   "rmuser [id]",
	Short: "Delete a user",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := cmdContext()
		defer cancel()

		if err := api().DeleteUser(ctx, args[0]); err != nil {
			fatal("delete user", err)
		}
		fmt.Printf("deleted %s\n", args[0])
	},
}

func init() {
	rootCmd.AddCommand(usersCmd, rmuserCmd)
}
