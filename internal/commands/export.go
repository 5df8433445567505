package commands

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/regu-ai/regu/internal/export"
	"github.com/regu-ai/regu/internal/gitops"
	"github.com/regu-ai/regu/internal/runlog"
)

func newExportCommand() *cobra.Command {
	var repoDir string
	var format string
	var out string
	var asOf string

	cmd := &cobra.Command{
		Use:       "export <" + strings.Join(export.Reports, "|") + ">",
		Short:     "Write a report to a PDF or CSV file",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: export.Reports,
		RunE: func(cmd *cobra.Command, args []string) error {
			report := args[0]
			ref, err := parseAsOf(asOf)
			if err != nil {
				return err
			}
			p, err := openProject(repoDir)
			if err != nil {
				return err
			}

			if format == "" {
				format = p.Config.Export.Format
			}
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}

			doc, err := p.Document(report, ref)
			if err != nil {
				return err
			}

			path := out
			if path == "" {
				path = export.DefaultPath(filepath.Join(p.Root, p.Config.Export.Dir), report, f)
			}
			if err := export.WriteFile(path, f, doc); err != nil {
				return err
			}

			entry := runlog.Entry{
				Timestamp: time.Now().UTC(),
				Report:    report,
				Format:    string(f),
				Path:      relativeTo(p.Root, path),
			}
			if report == export.ReportAging {
				entry.ReferenceDate = ref
			}
			if gitops.IsRepo(p.Root) {
				if hash, err := gitops.Head(p.Root); err == nil {
					entry.Snapshot = hash
				}
			}
			if err := runlog.Append(p.Root, []runlog.Entry{entry}); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Exported %s to %s\n", report, path)
			return nil
		},
	}

	addRepoFlag(cmd, &repoDir)
	cmd.Flags().StringVar(&format, "format", "", "output format: pdf or csv (default from regu.yaml)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default <export dir>/<report>.<format>)")
	cmd.Flags().StringVar(&asOf, "as-of", "", "aging reference date YYYY-MM-DD (default today)")

	return cmd
}

func relativeTo(root, path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	rel, err := filepath.Rel(root, abs)
	if err != nil || strings.HasPrefix(rel, "..") {
		return abs
	}
	return filepath.ToSlash(rel)
}
