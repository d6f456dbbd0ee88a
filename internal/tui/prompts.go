package tui

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrInteractiveDisabled is returned when prompts are disabled via GITFLOW_NO_INTERACTIVE
var ErrInteractiveDisabled = errors.New("interactive prompts are disabled (GITFLOW_NO_INTERACTIVE is set)")

// ErrCanceled is returned when the user aborts a prompt
var ErrCanceled = errors.New("canceled")

func checkInteractiveAllowed() error {
	if os.Getenv("GITFLOW_NO_INTERACTIVE") != "" {
		return ErrInteractiveDisabled
	}
	return nil
}

// confirmModel is a simple yes/no confirmation prompt model
type confirmModel struct {
	prompt string
	choice bool
	done   bool
	err    error
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.err = ErrCanceled
			m.done = true
			return m, tea.Quit
		case tea.KeyRunes:
			switch strings.ToLower(string(msg.Runes)) {
			case "y":
				m.choice = true
				m.done = true
				return m, tea.Quit
			case "n":
				m.choice = false
				m.done = true
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.done {
		return ""
	}
	yesNo := "[y/N]"
	if m.choice {
		yesNo = "[Y/n]"
	}
	return lipgloss.NewStyle().Margin(1, 0).Render(fmt.Sprintf("%s %s", m.prompt, yesNo))
}

// PromptConfirm asks a yes/no question
func PromptConfirm(prompt string, defaultValue bool) (bool, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return false, err
	}

	p := tea.NewProgram(confirmModel{prompt: prompt, choice: defaultValue}, tea.WithInput(os.Stdin), tea.WithOutput(os.Stdout))
	model, err := p.Run()
	if err != nil {
		return false, err
	}

	final, ok := model.(confirmModel)
	if !ok {
		return false, fmt.Errorf("unexpected model type")
	}
	if final.err != nil {
		return false, final.err
	}
	return final.choice, nil
}

// PromptMultiSelect lets the user pick any subset of options. All options
// start selected.
func PromptMultiSelect(message string, options []string) ([]string, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return nil, err
	}

	var selected []string
	prompt := &survey.MultiSelect{
		Message: message,
		Options: options,
		Default: options,
	}
	if err := survey.AskOne(prompt, &selected); err != nil {
		return nil, promptError(err)
	}
	return selected, nil
}

// promptError maps an interrupted prompt to ErrCanceled and wraps anything
// else
func promptError(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrCanceled
	}
	return fmt.Errorf("prompt failed: %w", err)
}
