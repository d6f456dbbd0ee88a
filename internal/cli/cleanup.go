package cli

import (
	"github.com/spf13/cobra"

	"gitflow.dev/gitflow/internal/actions"
	"gitflow.dev/gitflow/internal/runtime"
)

func (a *app) newCleanupCmd() *cobra.Command {
	var opts actions.CleanupOptions

	cmd := &cobra.Command{
		Use:   "cleanup",
		Short: "Delete merged feature, release and hotfix branches whose remote is gone",
		Long: `Fetch origin with --prune, then offer to delete every local feature, release
and hotfix branch that is fully merged into develop or main and no longer
exists on origin. main, develop and the current branch are never deleted.

Without a terminal, or with --yes, every candidate is deleted.`,
		Args: positional(),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd, func(ctx *runtime.Context) error {
				_, err := actions.CleanupAction(ctx, opts)
				return err
			})
		},
	}

	cmd.Flags().BoolVarP(&opts.Yes, "yes", "y", false, "Delete every candidate without asking")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Only list the branches that would be deleted")
	return cmd
}
