// Package cli implements the cobra commands for gitflow.
//
// Each verb (status, start-feature, finish-release, ...) is defined in its
// own file. This file defines the root command and its global flags.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	gferrors "gitflow.dev/gitflow/internal/errors"
	"gitflow.dev/gitflow/internal/runtime"
	"gitflow.dev/gitflow/internal/tui"
)

// Build information, injected from the main package.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// app holds state shared by every command of one invocation
type app struct {
	debug bool
	splog *tui.Splog
}

func (a *app) rootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gitflow",
		Short: "Git flow branching workflow: features, releases and hotfixes",
		Long: `gitflow drives the git flow branching model on the current repository.

Features branch from develop and merge back into it. Releases branch from
develop, bump manifest versions and the changelog, and finish by merging into
main with a version tag and back into develop. Hotfixes do the same from main.`,
		Example: `  gitflow status
  gitflow start-feature user-authentication
  gitflow finish-feature user-authentication
  gitflow create-release 1.2.0
  gitflow finish-release 1.2.0
  gitflow create-hotfix 1.2.1 "Fix critical security bug"
  gitflow finish-hotfix 1.2.1`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return nil
			}
			reason := "unknown command"
			if suggestions := cmd.SuggestionsFor(args[0]); len(suggestions) > 0 {
				reason += fmt.Sprintf(" (did you mean %q?)", suggestions[0])
			}
			return gferrors.NewInvalidArgumentError(args[0], reason)
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return gferrors.NewInvalidArgumentError("command", "is required")
		},
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			a.splog = runtime.NewSplog(cmd.OutOrStdout(), cmd.ErrOrStderr(), a.debug)
		},
	}

	rootCmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "Print every git command that is run")
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return gferrors.NewInvalidArgumentError("flag", err.Error())
	})

	rootCmd.AddCommand(a.newStatusCmd())
	rootCmd.AddCommand(a.newStartFeatureCmd())
	rootCmd.AddCommand(a.newFinishFeatureCmd())
	rootCmd.AddCommand(a.newCreateReleaseCmd())
	rootCmd.AddCommand(a.newFinishReleaseCmd())
	rootCmd.AddCommand(a.newCreateHotfixCmd())
	rootCmd.AddCommand(a.newFinishHotfixCmd())
	rootCmd.AddCommand(a.newCleanupCmd())

	return rootCmd
}

// run provides a runtime context for the repository containing the working
// directory to a command's execution function
func (a *app) run(cmd *cobra.Command, fn func(ctx *runtime.Context) error) error {
	dir, err := os.Getwd()
	if err != nil {
		return gferrors.NewUnexpectedError("reading the working directory", err)
	}
	ctx, err := runtime.GetContext(cmd.Context(), dir, a.splog)
	if err != nil {
		return err
	}
	return fn(ctx)
}
