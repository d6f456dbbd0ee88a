package errors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	gferrors "gitflow.dev/gitflow/internal/errors"
)

func TestTypedErrorsMatchSentinels(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"not a repository", gferrors.NewNotARepositoryError("/tmp/x", nil), gferrors.ErrNotARepository},
		{"invalid argument", gferrors.NewInvalidArgumentError("name", "must not be empty"), gferrors.ErrInvalidArgument},
		{"invalid version", gferrors.NewInvalidVersionError("1.2"), gferrors.ErrInvalidVersion},
		{"branch exists", gferrors.NewBranchAlreadyExistsError("feature/x"), gferrors.ErrBranchAlreadyExists},
		{"branch missing", gferrors.NewBranchNotFoundError("feature/x"), gferrors.ErrBranchNotFound},
		{"tag exists", gferrors.NewTagAlreadyExistsError("v1.0.0"), gferrors.ErrTagAlreadyExists},
		{"dirty tree", gferrors.NewDirtyWorkingTreeError("finish feature"), gferrors.ErrDirtyWorkingTree},
		{"git command", gferrors.NewGitCommandError("git", []string{"push"}, "", "rejected", errors.New("exit status 1")), gferrors.ErrRepositoryCommandFailed},
		{"unexpected", gferrors.NewUnexpectedError("reading config", errors.New("boom")), gferrors.ErrUnexpected},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			wrapped := fmt.Errorf("outer: %w", tc.err)
			require.ErrorIs(t, wrapped, tc.sentinel)
		})
	}
}

func TestGitCommandErrorMessage(t *testing.T) {
	err := gferrors.NewGitCommandError("git", []string{"push", "origin", "develop"}, "", "  ! [rejected] develop\n", errors.New("exit status 1"))
	require.Equal(t, "git push origin develop failed: ! [rejected] develop", err.Error())
	require.Equal(t, "git push origin develop", err.CommandLine())

	noStderr := gferrors.NewGitCommandError("git", []string{"fetch"}, "", "", errors.New("exit status 128"))
	require.Equal(t, "git fetch failed: exit status 128", noStderr.Error())
}

func TestExitCodeFor(t *testing.T) {
	require.Equal(t, gferrors.ExitSuccess, gferrors.ExitCodeFor(nil))
	require.Equal(t, gferrors.ExitNotARepository, gferrors.ExitCodeFor(gferrors.NewNotARepositoryError(".", nil)))
	require.Equal(t, gferrors.ExitUsage, gferrors.ExitCodeFor(gferrors.NewInvalidVersionError("x")))
	require.Equal(t, gferrors.ExitUsage, gferrors.ExitCodeFor(gferrors.NewInvalidArgumentError("name", "")))
	require.Equal(t, gferrors.ExitPrecondition, gferrors.ExitCodeFor(gferrors.NewTagAlreadyExistsError("v1.0.0")))
	require.Equal(t, gferrors.ExitPrecondition, gferrors.ExitCodeFor(gferrors.NewDirtyWorkingTreeError("")))
	require.Equal(t, gferrors.ExitRepositoryCommand, gferrors.ExitCodeFor(gferrors.NewGitCommandError("git", nil, "", "", nil)))
	require.Equal(t, gferrors.ExitGeneralError, gferrors.ExitCodeFor(errors.New("something else")))
}

func TestKind(t *testing.T) {
	require.Equal(t, "BranchNotFound", gferrors.Kind(fmt.Errorf("x: %w", gferrors.NewBranchNotFoundError("feature/a"))))
	require.Equal(t, "UnexpectedFailure", gferrors.Kind(errors.New("boom")))
	require.Equal(t, "", gferrors.Kind(nil))
}
