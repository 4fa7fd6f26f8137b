package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListUsersCommand(appf func() *application) *cobra.Command {
	return &cobra.Command{
		Use:   "listusers",
		Short: "Print every account as \"username - role\"",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := appf().users.QueryAll()
			if err != nil {
				return err
			}
			for _, usr := range users {
				fmt.Printf("%s - %s\n", usr.Username, usr.Role)
			}
			return nil
		},
	}
}
