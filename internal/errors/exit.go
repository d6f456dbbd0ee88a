package errors

import "errors"

// ExitCode is the process exit status for a failed command.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully
	ExitSuccess ExitCode = 0

	// ExitGeneralError covers unexpected failures
	ExitGeneralError ExitCode = 1

	// ExitUsage covers invalid arguments and versions
	ExitUsage ExitCode = 2

	// ExitPrecondition covers branch/tag existence and dirty-tree checks
	ExitPrecondition ExitCode = 3

	// ExitRepositoryCommand covers a failed git command
	ExitRepositoryCommand ExitCode = 4

	// ExitNotARepository covers the startup repository check
	ExitNotARepository ExitCode = 5
)

// ExitCodeFor classifies err and returns the exit status the CLI should use.
// A nil error maps to ExitSuccess.
func ExitCodeFor(err error) ExitCode {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrNotARepository):
		return ExitNotARepository
	case errors.Is(err, ErrInvalidArgument), errors.Is(err, ErrInvalidVersion):
		return ExitUsage
	case errors.Is(err, ErrBranchAlreadyExists),
		errors.Is(err, ErrBranchNotFound),
		errors.Is(err, ErrTagAlreadyExists),
		errors.Is(err, ErrDirtyWorkingTree):
		return ExitPrecondition
	case errors.Is(err, ErrRepositoryCommandFailed):
		return ExitRepositoryCommand
	default:
		return ExitGeneralError
	}
}

// Kind returns the short name of the error kind, used in log files
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotARepository):
		return "NotARepository"
	case errors.Is(err, ErrInvalidArgument):
		return "InvalidArgument"
	case errors.Is(err, ErrInvalidVersion):
		return "InvalidVersion"
	case errors.Is(err, ErrBranchAlreadyExists):
		return "BranchAlreadyExists"
	case errors.Is(err, ErrBranchNotFound):
		return "BranchNotFound"
	case errors.Is(err, ErrTagAlreadyExists):
		return "TagAlreadyExists"
	case errors.Is(err, ErrDirtyWorkingTree):
		return "DirtyWorkingTree"
	case errors.Is(err, ErrRepositoryCommandFailed):
		return "RepositoryCommandFailed"
	default:
		return "UnexpectedFailure"
	}
}
