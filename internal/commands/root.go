package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/regu-ai/regu/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "regu",
		Short:   "Statutory reporting and receivable provisioning for BLU entities",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newReportCommand())
	rootCmd.AddCommand(newAgingCommand())
	rootCmd.AddCommand(newExportCommand())
	rootCmd.AddCommand(newHistoryCommand())
	rootCmd.AddCommand(newSnapshotCommand())
	rootCmd.AddCommand(newServeCommand())

	return rootCmd
}
