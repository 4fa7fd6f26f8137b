package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/motembo/campus/core"
	"github.com/motembo/campus/storage/table"
)

// newRootCommand wires the stores and services behind the CLI. Running the
// root command starts the interactive menus; subcommands reuse the same
// application through the accessor since it only exists after flag parsing.
func newRootCommand(logger core.Logger) *cobra.Command {
	var dataDir string
	var app *application

	cmd := &cobra.Command{
		Use:           "campus",
		Short:         "University records console",
		Long:          "Role-based console for student grades, attendance and messaging, persisted in flat delimited text tables.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			store := table.NewStore(dataDir, core.Conf.GetString("tableExt"), core.Conf.GetString("fieldDelimiter"))
			con := newConsole(os.Stdin, os.Stdout, true)
			app = newApplication(store, con, logger)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.run()
		},
	}

	cmd.PersistentFlags().StringVar(&dataDir, "data", core.Conf.GetString("dataDir"), "directory holding the table files")

	appf := func() *application { return app }
	cmd.AddCommand(newAddUserCommand(appf))
	cmd.AddCommand(newListUsersCommand(appf))

	return cmd
}
