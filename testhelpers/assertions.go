// Package testhelpers provides testing utilities for gitflow, including a
// scene system backed by real repositories, Git repository helpers, an
// in-memory gateway and custom assertions.
package testhelpers

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

// Must is a generic helper function that panics if err is not nil,
// otherwise returns the value. Useful for test setup code where errors are
// not expected.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// ExpectBranches asserts that the repository has exactly the expected local
// branches, in any order.
func ExpectBranches(t *testing.T, repo *GitRepo, expected []string) {
	t.Helper()

	branches, err := repo.GetLocalBranches()
	require.NoError(t, err, "Failed to list branches")

	actual := append([]string{}, branches...)
	want := append([]string{}, expected...)
	sort.Strings(actual)
	sort.Strings(want)
	require.Equal(t, want, actual, "Branches do not match")
}

// ExpectRemoteBranches asserts that the remote has exactly the expected
// branches, in any order.
func ExpectRemoteBranches(t *testing.T, repo *GitRepo, remote string, expected []string) {
	t.Helper()

	branches, err := repo.GetRemoteBranches(remote)
	require.NoError(t, err, "Failed to list remote branches")

	actual := append([]string{}, branches...)
	want := append([]string{}, expected...)
	sort.Strings(actual)
	sort.Strings(want)
	require.Equal(t, want, actual, "Remote branches do not match")
}

// ExpectCommits asserts that the newest commit subjects on branch match
// expected, newest first.
func ExpectCommits(t *testing.T, repo *GitRepo, branch string, expected []string) {
	t.Helper()

	subjects, err := repo.ListCommitSubjects(branch)
	require.NoError(t, err, "Failed to list commits")

	if len(subjects) < len(expected) {
		require.Fail(t, "Not enough commits", "Expected %d commits, got %d", len(expected), len(subjects))
		return
	}
	require.Equal(t, expected, subjects[:len(expected)], "Commits do not match")
}

// ExpectCurrentBranch asserts which branch is checked out.
func ExpectCurrentBranch(t *testing.T, repo *GitRepo, expected string) {
	t.Helper()

	current, err := repo.CurrentBranchName()
	require.NoError(t, err)
	require.Equal(t, expected, current, "Unexpected current branch")
}
