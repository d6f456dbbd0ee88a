package tui

import (
	"errors"
	"testing"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/stretchr/testify/require"
)

func TestPromptError(t *testing.T) {
	require.ErrorIs(t, promptError(terminal.InterruptErr), ErrCanceled)

	ioErr := errors.New("could not read from terminal")
	err := promptError(ioErr)
	require.ErrorIs(t, err, ioErr)
	require.NotErrorIs(t, err, ErrCanceled)
	require.Contains(t, err.Error(), "could not read from terminal")
}

func TestPromptsRespectNoInteractive(t *testing.T) {
	t.Setenv("GITFLOW_NO_INTERACTIVE", "1")

	_, err := PromptMultiSelect("Delete?", []string{"feature/a"})
	require.ErrorIs(t, err, ErrInteractiveDisabled)

	_, err = PromptConfirm("Finish?", true)
	require.ErrorIs(t, err, ErrInteractiveDisabled)
}
