// Package git provides the repository gateway used by the workflow engine.
//
// Mutations (checkout, merge, tag, push, pull, commit) shell out to the git
// binary so hooks, credentials and user configuration behave exactly as they
// do on the command line. Read-only queries (current branch, ref existence,
// local branches, recent commits) go through go-git.
//
// This package should be the only place where git is executed.
package git
