// Package actions provides the logic behind each gitflow command.
//
// Each action corresponds to a CLI verb (status, start-feature, create-release,
// cleanup, ...) and orchestrates the engine, user prompts and console output.
//
// Key patterns:
//   - Actions accept runtime.Context which provides Engine, Splog and settings
//   - Actions are stateless; repository state is always read through the Engine
//   - Actions handle user interaction through the tui package
package actions
