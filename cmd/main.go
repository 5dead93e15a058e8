package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/adanyl0v/go-task-tracker/internal/app"
)

var configPath string

func main() {
	rootCmd := &cobra.Command{
		Use:   "task-tracker",
		Short: "Employee task and subtask tracker",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			app.InitDefaultLogger()
			app.MustReadConfig(configPath)
			app.MustInitApplicationLogger()
		},
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", os.Getenv("CONFIG_PATH"),
		"path to a YAML config file; environment variables override it")

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(seedCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
