package cli

import (
	"github.com/spf13/cobra"

	"gitflow.dev/gitflow/internal/actions"
	"gitflow.dev/gitflow/internal/runtime"
)

func (a *app) newStartFeatureCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start-feature <name>",
		Short: "Start feature/<name> from develop",
		Long: `Start feature/<name> from an up-to-date develop and push it to origin.

develop is created from the current branch and pushed first when it does not
exist yet.`,
		Args: positional("name"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx *runtime.Context) error {
				return actions.StartFeatureAction(ctx, args[0])
			})
		},
	}
}

func (a *app) newFinishFeatureCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "finish-feature <name>",
		Short: "Merge feature/<name> into develop and delete it",
		Long: `Push feature/<name>, merge it into develop with a merge commit, push
develop and delete the feature branch locally and on origin.

The working tree must be clean.`,
		Args: positional("name"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx *runtime.Context) error {
				return actions.FinishFeatureAction(ctx, args[0])
			})
		},
	}
}
