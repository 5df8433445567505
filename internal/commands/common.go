package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/regu-ai/regu/internal/project"
)

func addRepoFlag(cmd *cobra.Command, repoDir *string) {
	cmd.Flags().StringVar(repoDir, "repo", ".", "project directory")
}

func openProject(repoDir string) (*project.Project, error) {
	absDir, err := filepath.Abs(repoDir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}
	return project.Open(absDir)
}

// parseAsOf parses a YYYY-MM-DD reference date, defaulting to today.
func parseAsOf(s string) (time.Time, error) {
	if s == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --as-of %q: expected YYYY-MM-DD", s)
	}
	return t, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
