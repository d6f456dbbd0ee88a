// Package tui provides the terminal surface for gitflow.
//
// It handles:
//   - Confirmation and multi-select prompts (using bubbletea and survey)
//   - Console and rotating file logging (Splog)
//   - Terminal styling (using lipgloss, see the style subpackage)
package tui
