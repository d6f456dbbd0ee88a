package git

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	gferrors "gitflow.dev/gitflow/internal/errors"
)

// Logger receives a line for every git command that is run
type Logger interface {
	Debug(format string, args ...interface{})
}

// CommandRunner handles execution of git commands
type CommandRunner struct {
	workingDir string
	logger     Logger
}

// NewCommandRunner creates a new CommandRunner. logger may be nil.
func NewCommandRunner(workingDir string, logger Logger) *CommandRunner {
	return &CommandRunner{workingDir: workingDir, logger: logger}
}

// WorkingDir returns the directory commands run in
func (r *CommandRunner) WorkingDir() string {
	return r.workingDir
}

// Run executes a git command and returns its trimmed stdout. Failures are
// returned as *errors.GitCommandError carrying stdout and stderr.
func (r *CommandRunner) Run(ctx context.Context, args ...string) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if r.logger != nil {
		r.logger.Debug("git %s", strings.Join(args, " "))
	}

	cmd := exec.CommandContext(ctx, "git", args...)
	if r.workingDir != "" {
		cmd.Dir = r.workingDir
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = ctxErr
		}
		return "", gferrors.NewGitCommandError("git", args, stdout.String(), stderr.String(), err)
	}
	return strings.TrimSpace(stdout.String()), nil
}

// ExitCode extracts the process exit status from a command error. It returns
// -1 when err did not come from a process that ran to completion.
func ExitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

// runPredicate runs a command whose exit status 1 means "false".
func (r *CommandRunner) runPredicate(ctx context.Context, args ...string) (bool, error) {
	_, err := r.Run(ctx, args...)
	if err == nil {
		return true, nil
	}
	if ExitCode(err) == 1 {
		return false, nil
	}
	return false, err
}
