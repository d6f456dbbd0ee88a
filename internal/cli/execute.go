package cli

import (
	"context"
	"errors"
	"io"

	"github.com/spf13/cobra"

	gferrors "gitflow.dev/gitflow/internal/errors"
	"gitflow.dev/gitflow/internal/tui"
)

// Run executes gitflow with args and returns the process exit code. Errors
// are printed to stderr; usage is printed as well when the command line
// itself was wrong.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	a := &app{}
	rootCmd := a.rootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	cmd, err := rootCmd.ExecuteContextC(ctx)
	splog := a.splog
	if splog == nil {
		splog, _ = tui.NewSplogWithOptions(tui.Options{Out: stdout, Err: stderr})
	}
	defer func() { _ = splog.Close() }()

	if err == nil {
		return int(gferrors.ExitSuccess)
	}
	err = classify(err)
	printError(splog, cmd, err, stderr)
	return int(gferrors.ExitCodeFor(err))
}

// classify wraps errors that carry no kind of their own
func classify(err error) error {
	if gferrors.Kind(err) == "UnexpectedFailure" && !errors.Is(err, gferrors.ErrUnexpected) {
		return gferrors.NewUnexpectedError("", err)
	}
	return err
}

func printError(splog *tui.Splog, cmd *cobra.Command, err error, stderr io.Writer) {
	if errors.Is(err, context.Canceled) {
		splog.Warn("Operation cancelled by user")
		return
	}

	splog.Debug("command failed (%s): %v", gferrors.Kind(err), err)
	splog.Error("%s", err)

	var cmdErr *gferrors.GitCommandError
	if errors.As(err, &cmdErr) && cmdErr.Stdout != "" {
		splog.Debug("%s", cmdErr.Stdout)
	}

	if errors.Is(err, gferrors.ErrInvalidArgument) && cmd != nil {
		_, _ = io.WriteString(stderr, "\n"+cmd.UsageString())
	}
}
