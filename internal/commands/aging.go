package commands

import (
	"github.com/spf13/cobra"

	"github.com/regu-ai/regu/internal/export"
)

func newAgingCommand() *cobra.Command {
	var repoDir string
	var asOf string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "aging",
		Short: "Age receivables and compute the required provision",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := parseAsOf(asOf)
			if err != nil {
				return err
			}
			p, err := openProject(repoDir)
			if err != nil {
				return err
			}
			res, err := p.Aging(ref)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), res)
			}
			return export.WriteText(cmd.OutOrStdout(), export.AgingDocument(p.Header(), res))
		},
	}

	addRepoFlag(cmd, &repoDir)
	cmd.Flags().StringVar(&asOf, "as-of", "", "reference date YYYY-MM-DD (default today)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")

	return cmd
}
