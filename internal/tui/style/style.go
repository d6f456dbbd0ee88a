// Package style holds the lipgloss styles used for console output.
package style

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true)
	currentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	branchStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	greenStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	yellowStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	redStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	hashStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))

	kindStyles = map[string]lipgloss.Style{
		"feature": lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		"release": lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		"hotfix":  lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	}
)

// Header renders a section title framed by rules
func Header(title string) string {
	rule := strings.Repeat("=", 50)
	return headerStyle.Render(rule) + "\n" + headerStyle.Render("  "+title) + "\n" + headerStyle.Render(rule)
}

// ColorBranchName colors a branch name based on whether it's current
func ColorBranchName(branchName string, isCurrent bool) string {
	if isCurrent {
		return currentStyle.Render(branchName + " (current)")
	}
	return branchStyle.Render(branchName)
}

// ColorKind renders a unit-of-work kind label such as "[release]"
func ColorKind(kind string) string {
	s, ok := kindStyles[kind]
	if !ok {
		return dimStyle.Render("[" + kind + "]")
	}
	return s.Render("[" + kind + "]")
}

// ColorHash colors an abbreviated commit hash
func ColorHash(hash string) string {
	return hashStyle.Render(hash)
}

// ColorDim makes text dim/gray
func ColorDim(text string) string {
	return dimStyle.Render(text)
}

// ColorGreen colors text green
func ColorGreen(text string) string {
	return greenStyle.Render(text)
}

// ColorYellow colors text yellow
func ColorYellow(text string) string {
	return yellowStyle.Render(text)
}

// ColorRed colors text red
func ColorRed(text string) string {
	return redStyle.Render(text)
}
