package main

import (
	"errors"
	"fmt"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/motembo/campus/core/user"
)

// newAddUserCommand registers an account without going through the
// interactive menus; handy for bootstrapping the first admin.
func newAddUserCommand(appf func() *application) *cobra.Command {
	var role string

	cmd := &cobra.Command{
		Use:   "adduser USERNAME",
		Short: "Create an account non-interactively (password is prompted)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Print("Enter password:")
			pwd, err := readPasswordFunc(int(syscall.Stdin))
			fmt.Println()
			if err != nil {
				return err
			}
			if len(pwd) == 0 {
				return errors.New("password must not be empty")
			}

			app := appf()
			usr, err := app.users.Create(user.NewUser{
				Username: args[0],
				Password: string(pwd),
				Role:     role,
			})
			if err != nil {
				return err
			}
			app.logger.Info(fmt.Sprintf("account %q (%s) created", usr.Username, usr.Role))
			return nil
		},
	}
	cmd.Flags().StringVar(&role, "role", user.RoleAdmin, "account role (student/faculty/admin)")

	return cmd
}
