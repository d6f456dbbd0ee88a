// Package config manages gitflow repository configuration.
//
// Settings live in .gitflow_config inside the repository's common git
// directory (.git for the main worktree, shared by linked worktrees) as JSON. Every field is optional;
// unset fields fall back to the defaults of the branching model (remote
// "origin", branches "main" and "develop", CHANGELOG.md, package.json).
package config
