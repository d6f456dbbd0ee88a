package cli

import (
	"strings"

	"github.com/spf13/cobra"

	gferrors "gitflow.dev/gitflow/internal/errors"
	"gitflow.dev/gitflow/internal/version"
)

// positional requires exactly the named arguments. They are checked before
// the repository is opened.
func positional(names ...string) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		if len(args) < len(names) {
			return gferrors.NewInvalidArgumentError(names[len(args)], "is required")
		}
		if len(args) > len(names) {
			return gferrors.NewInvalidArgumentError(args[len(names)], "unexpected argument")
		}
		for i, arg := range args {
			if strings.TrimSpace(arg) == "" {
				return gferrors.NewInvalidArgumentError(names[i], "must not be empty")
			}
		}
		return nil
	}
}

// versionArg requires a single MAJOR.MINOR.PATCH argument
func versionArg(_ *cobra.Command, args []string) error {
	if err := positional("version")(nil, args); err != nil {
		return err
	}
	_, err := version.Parse(args[0])
	return err
}
