// Package runtime provides the execution context for gitflow commands.
//
// It locates the repository, loads its settings and wires the gateway,
// engine and logger that actions share.
package runtime
