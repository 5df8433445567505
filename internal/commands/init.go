package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/regu-ai/regu/internal/accounts"
	"github.com/regu-ai/regu/internal/project"
)

func newInitCommand() *cobra.Command {
	var name string
	var entityType string
	var noGit bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new Regu project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			hash, err := project.Init(absDir, project.InitOptions{
				Name:       name,
				EntityType: entityType,
				Git:        !noGit,
			})
			if err != nil {
				return err
			}

			if hash == "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Initialized Regu project at %s\n", absDir)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Initialized Regu project at %s (%s)\n", absDir, hash)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "entity name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&entityType, "entity-type", accounts.EntityBLUHospital, "entity type")
	cmd.Flags().BoolVar(&noGit, "no-git", false, "do not initialize a git repository")

	return cmd
}
