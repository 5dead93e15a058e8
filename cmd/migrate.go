package main

import (
	"github.com/spf13/cobra"

	"github.com/adanyl0v/go-task-tracker/internal/app"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the Postgres schema",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			app.MustConnectPostgres()
			defer app.DisconnectPostgres()

			app.MustMigratePostgres()
		},
	}
}
