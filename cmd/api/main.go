package main

import (
	"fmt"
	"os"

	"github.com/limbo/codetrack/internal/service"
	"github.com/spf13/cobra"
)

func init() {
	service.InitValidator()
}

// NewRootCmd builds the codetrack command. Without a subcommand it serves the API.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "codetrack",
		Short:         "Coding practice tracker API",
		Long:          "codetrack keeps a log of solved problems, computes streaks and imports solutions from GitHub commits.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newMigrateCmd())
	return cmd
}

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
