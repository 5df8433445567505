package commands

import (
	"fmt"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/regu-ai/regu/internal/runlog"
)

func newHistoryCommand() *cobra.Command {
	var repoDir string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List exported reports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(repoDir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			entries, err := runlog.Read(absDir)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No exports yet")
				return nil
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "TIME\tREPORT\tFORMAT\tAS OF\tSNAPSHOT\tPATH")
			for _, e := range entries {
				asOf := "-"
				if !e.ReferenceDate.IsZero() {
					asOf = e.ReferenceDate.Format(time.DateOnly)
				}
				snapshot := e.Snapshot
				if snapshot == "" {
					snapshot = "-"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
					e.Timestamp.Format(time.RFC3339), e.Report, e.Format, asOf, snapshot, e.Path)
			}
			return tw.Flush()
		},
	}

	addRepoFlag(cmd, &repoDir)

	return cmd
}
