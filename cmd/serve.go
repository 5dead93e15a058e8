package main

import (
	"github.com/spf13/cobra"

	"github.com/adanyl0v/go-task-tracker/internal/app"
)

func serveCmd() *cobra.Command {
	var seedPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Long: `Start the HTTP API on HTTP_HOST:HTTP_PORT.

Examples:
  task-tracker serve
  STORAGE=memory task-tracker serve --seed fixtures/tasks.yaml`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			app.InitMetrics()

			app.MustInitTaskRepository()
			defer app.CloseTaskRepository()

			app.InitTaskService()
			if seedPath != "" {
				app.MustSeedTasks(seedPath)
			}

			app.MustListenAndServeHTTP()
		},
	}

	cmd.Flags().StringVar(&seedPath, "seed", "", "load task fixtures before serving")
	return cmd
}
