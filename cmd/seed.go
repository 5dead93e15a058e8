package main

import (
	"github.com/spf13/cobra"

	"github.com/adanyl0v/go-task-tracker/internal/app"
)

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed [file]",
		Short: "Load task fixtures from a YAML file",
		Long: `Load task fixtures into the configured store.

The file holds a "tasks" list whose entries use the API field names:

  tasks:
    - empId: E1
      project: Alpha
      date: 2024-03-15
      subtasks:
        - title: Design`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			app.MustInitTaskRepository()
			defer app.CloseTaskRepository()

			app.InitTaskService()
			app.MustSeedTasks(args[0])
		},
	}
}
