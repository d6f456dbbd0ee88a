package cli

import (
	"github.com/spf13/cobra"

	"gitflow.dev/gitflow/internal/actions"
	"gitflow.dev/gitflow/internal/runtime"
)

func (a *app) newCreateReleaseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create-release <version>",
		Short: "Create release/v<version> from develop",
		Long: `Create release/v<version> from an up-to-date develop, set the version in
the configured manifests, add a CHANGELOG.md section and push the branch.

The version must be MAJOR.MINOR.PATCH, e.g. 1.2.0.`,
		Args: versionArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx *runtime.Context) error {
				return actions.CreateReleaseAction(ctx, args[0])
			})
		},
	}
}

func (a *app) newFinishReleaseCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "finish-release <version>",
		Short: "Merge release/v<version> into main, tag it and merge it back into develop",
		Long: `Merge release/v<version> into main, create the annotated tag v<version>,
push both, merge the release back into develop and delete the branch.

The working tree must be clean.`,
		Args: versionArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx *runtime.Context) error {
				return actions.FinishReleaseAction(ctx, actions.FinishOptions{Version: args[0], Yes: yes})
			})
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	return cmd
}
