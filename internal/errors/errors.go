// Package errors provides sentinel errors and custom error types for gitflow.
// Use errors.Is() and errors.As() to check for specific error kinds.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors, one per error kind surfaced by the workflow engine
var (
	// ErrNotARepository indicates the working directory is not inside a git repository
	ErrNotARepository = errors.New("not a git repository")

	// ErrInvalidArgument indicates a missing or empty command argument
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidVersion indicates a version string that is not MAJOR.MINOR.PATCH
	ErrInvalidVersion = errors.New("invalid version")

	// ErrBranchAlreadyExists indicates a branch that should be absent already exists
	ErrBranchAlreadyExists = errors.New("branch already exists")

	// ErrBranchNotFound indicates that a branch does not exist
	ErrBranchNotFound = errors.New("branch not found")

	// ErrTagAlreadyExists indicates a tag that should be absent already exists
	ErrTagAlreadyExists = errors.New("tag already exists")

	// ErrDirtyWorkingTree indicates uncommitted changes block the operation
	ErrDirtyWorkingTree = errors.New("working tree has uncommitted changes")

	// ErrRepositoryCommandFailed indicates a git command exited unsuccessfully
	ErrRepositoryCommandFailed = errors.New("repository command failed")

	// ErrUnexpected indicates a failure that fits no other kind
	ErrUnexpected = errors.New("unexpected failure")
)

// NotARepositoryError is returned when no repository can be opened at Path
type NotARepositoryError struct {
	Path string
	Err  error
}

func (e *NotARepositoryError) Error() string {
	if e.Path == "" {
		return "not a git repository"
	}
	return fmt.Sprintf("not a git repository: %s", e.Path)
}

// Is returns true if the target error is ErrNotARepository
func (e *NotARepositoryError) Is(target error) bool {
	return target == ErrNotARepository
}

func (e *NotARepositoryError) Unwrap() error {
	return e.Err
}

// NewNotARepositoryError creates a new NotARepositoryError
func NewNotARepositoryError(path string, err error) *NotARepositoryError {
	return &NotARepositoryError{Path: path, Err: err}
}

// InvalidArgumentError represents a missing or malformed command argument
type InvalidArgumentError struct {
	Argument string
	Reason   string
}

func (e *InvalidArgumentError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("invalid argument: %s", e.Argument)
	}
	return fmt.Sprintf("invalid argument %s: %s", e.Argument, e.Reason)
}

// Is returns true if the target error is ErrInvalidArgument
func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// NewInvalidArgumentError creates a new InvalidArgumentError
func NewInvalidArgumentError(argument, reason string) *InvalidArgumentError {
	return &InvalidArgumentError{Argument: argument, Reason: reason}
}

// InvalidVersionError represents a version string that failed validation
type InvalidVersionError struct {
	Value string
}

func (e *InvalidVersionError) Error() string {
	return fmt.Sprintf("invalid version %q: expected MAJOR.MINOR.PATCH (e.g. 1.2.0)", e.Value)
}

// Is returns true if the target error is ErrInvalidVersion
func (e *InvalidVersionError) Is(target error) bool {
	return target == ErrInvalidVersion
}

// NewInvalidVersionError creates a new InvalidVersionError
func NewInvalidVersionError(value string) *InvalidVersionError {
	return &InvalidVersionError{Value: value}
}

// BranchAlreadyExistsError represents an error when a branch to be created already exists
type BranchAlreadyExistsError struct {
	BranchName string
}

func (e *BranchAlreadyExistsError) Error() string {
	return fmt.Sprintf("branch %s already exists", e.BranchName)
}

// Is returns true if the target error is ErrBranchAlreadyExists
func (e *BranchAlreadyExistsError) Is(target error) bool {
	return target == ErrBranchAlreadyExists
}

// NewBranchAlreadyExistsError creates a new BranchAlreadyExistsError
func NewBranchAlreadyExistsError(branchName string) *BranchAlreadyExistsError {
	return &BranchAlreadyExistsError{BranchName: branchName}
}

// BranchNotFoundError represents an error when a branch is not found
type BranchNotFoundError struct {
	BranchName string
}

func (e *BranchNotFoundError) Error() string {
	return fmt.Sprintf("branch %s does not exist", e.BranchName)
}

// Is returns true if the target error is ErrBranchNotFound
func (e *BranchNotFoundError) Is(target error) bool {
	return target == ErrBranchNotFound
}

// NewBranchNotFoundError creates a new BranchNotFoundError
func NewBranchNotFoundError(branchName string) *BranchNotFoundError {
	return &BranchNotFoundError{BranchName: branchName}
}

// TagAlreadyExistsError represents an error when a tag to be created already exists
type TagAlreadyExistsError struct {
	TagName string
}

func (e *TagAlreadyExistsError) Error() string {
	return fmt.Sprintf("tag %s already exists", e.TagName)
}

// Is returns true if the target error is ErrTagAlreadyExists
func (e *TagAlreadyExistsError) Is(target error) bool {
	return target == ErrTagAlreadyExists
}

// NewTagAlreadyExistsError creates a new TagAlreadyExistsError
func NewTagAlreadyExistsError(tagName string) *TagAlreadyExistsError {
	return &TagAlreadyExistsError{TagName: tagName}
}

// DirtyWorkingTreeError is returned when an operation needs a clean tree
type DirtyWorkingTreeError struct {
	Operation string
}

func (e *DirtyWorkingTreeError) Error() string {
	if e.Operation == "" {
		return "working tree has uncommitted changes; commit or stash them first"
	}
	return fmt.Sprintf("cannot %s: working tree has uncommitted changes; commit or stash them first", e.Operation)
}

// Is returns true if the target error is ErrDirtyWorkingTree
func (e *DirtyWorkingTreeError) Is(target error) bool {
	return target == ErrDirtyWorkingTree
}

// NewDirtyWorkingTreeError creates a new DirtyWorkingTreeError
func NewDirtyWorkingTreeError(operation string) *DirtyWorkingTreeError {
	return &DirtyWorkingTreeError{Operation: operation}
}

// GitCommandError represents an error from a git command execution
type GitCommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("%s command failed", e.Command)
	if len(e.Args) > 0 {
		msg = fmt.Sprintf("%s %s failed", e.Command, strings.Join(e.Args, " "))
	}
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		msg += ": " + stderr
	} else if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Is returns true if the target error is ErrRepositoryCommandFailed
func (e *GitCommandError) Is(target error) bool {
	return target == ErrRepositoryCommandFailed
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// CommandLine returns the command and its arguments as a single string
func (e *GitCommandError) CommandLine() string {
	return strings.TrimSpace(e.Command + " " + strings.Join(e.Args, " "))
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, stdout, stderr string, err error) *GitCommandError {
	return &GitCommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}

// UnexpectedError wraps an error that fits no other kind
type UnexpectedError struct {
	Context string
	Err     error
}

func (e *UnexpectedError) Error() string {
	if e.Context == "" {
		return fmt.Sprintf("unexpected failure: %v", e.Err)
	}
	return fmt.Sprintf("unexpected failure while %s: %v", e.Context, e.Err)
}

// Is returns true if the target error is ErrUnexpected
func (e *UnexpectedError) Is(target error) bool {
	return target == ErrUnexpected
}

func (e *UnexpectedError) Unwrap() error {
	return e.Err
}

// NewUnexpectedError creates a new UnexpectedError
func NewUnexpectedError(context string, err error) *UnexpectedError {
	return &UnexpectedError{Context: context, Err: err}
}
