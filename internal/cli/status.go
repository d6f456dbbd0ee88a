package cli

import (
	"github.com/spf13/cobra"

	"gitflow.dev/gitflow/internal/actions"
)

func (a *app) newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current branch, active work and recent commits",
		Args:  positional(),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd, actions.StatusAction)
		},
	}
}
