package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"gitflow.dev/gitflow/internal/actions"
	gferrors "gitflow.dev/gitflow/internal/errors"
	"gitflow.dev/gitflow/internal/runtime"
	"gitflow.dev/gitflow/internal/version"
)

func (a *app) newCreateHotfixCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create-hotfix <version> <description>",
		Short: "Create hotfix/v<version> from main",
		Long: `Create hotfix/v<version> from an up-to-date main, set the version in the
configured manifests, add a CHANGELOG.md section whose Fixed entry is the
description, and push the branch.

Words after the version are joined into the description.`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) == 0 {
				return gferrors.NewInvalidArgumentError("version", "is required")
			}
			if _, err := version.Parse(args[0]); err != nil {
				return err
			}
			if len(args) < 2 || strings.TrimSpace(strings.Join(args[1:], " ")) == "" {
				return gferrors.NewInvalidArgumentError("description", "is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx *runtime.Context) error {
				return actions.CreateHotfixAction(ctx, args[0], strings.Join(args[1:], " "))
			})
		},
	}
}

func (a *app) newFinishHotfixCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "finish-hotfix <version>",
		Short: "Merge hotfix/v<version> into main, tag it and merge it back into develop",
		Args:  versionArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx *runtime.Context) error {
				return actions.FinishHotfixAction(ctx, actions.FinishOptions{Version: args[0], Yes: yes})
			})
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	return cmd
}
