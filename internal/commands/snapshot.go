package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/regu-ai/regu/internal/gitops"
)

func newSnapshotCommand() *cobra.Command {
	var repoDir string
	var message string

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Validate the chart and ledger and commit them as a snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openProject(repoDir)
			if err != nil {
				return err
			}
			if !gitops.IsRepo(p.Root) {
				return fmt.Errorf("%s is not a git repository", p.Root)
			}

			// Both computations must succeed before anything is recorded.
			if _, err := p.Statements(); err != nil {
				return err
			}
			ref, err := parseAsOf("")
			if err != nil {
				return err
			}
			if _, err := p.Aging(ref); err != nil {
				return err
			}

			if message == "" {
				message = "snapshot: " + p.Config.Period.Current
			}
			author := gitops.Author{Name: p.Config.Git.AuthorName, Email: p.Config.Git.AuthorEmail}
			hash, err := gitops.CommitAll(p.Root, message, author)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Recorded snapshot %s\n", hash)
			return nil
		},
	}

	addRepoFlag(cmd, &repoDir)
	cmd.Flags().StringVarP(&message, "message", "m", "", "commit message (default \"snapshot: <current period>\")")

	return cmd
}
