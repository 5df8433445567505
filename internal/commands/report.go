package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/regu-ai/regu/internal/export"
)

var statementReports = []string{export.ReportActivity, export.ReportBalance, export.ReportCashFlow}

func newReportCommand() *cobra.Command {
	var repoDir string
	var asJSON bool

	cmd := &cobra.Command{
		Use:       "report <activity|balance|cashflow>",
		Short:     "Print a financial statement",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: statementReports,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openProject(repoDir)
			if err != nil {
				return err
			}

			if !asJSON {
				doc, err := p.Document(args[0], time.Time{})
				if err != nil {
					return err
				}
				return export.WriteText(cmd.OutOrStdout(), doc)
			}

			s, err := p.Statements()
			if err != nil {
				return err
			}
			switch args[0] {
			case export.ReportActivity:
				return writeJSON(cmd.OutOrStdout(), s.Activity)
			case export.ReportBalance:
				return writeJSON(cmd.OutOrStdout(), s.BalanceSheet)
			case export.ReportCashFlow:
				return writeJSON(cmd.OutOrStdout(), s.CashFlow)
			}
			return fmt.Errorf("%w: %q", export.ErrUnknownReport, args[0])
		},
	}

	addRepoFlag(cmd, &repoDir)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")

	return cmd
}
