package actions

import (
	"errors"
	"fmt"

	"gitflow.dev/gitflow/internal/branchutil"
	gferrors "gitflow.dev/gitflow/internal/errors"
	"gitflow.dev/gitflow/internal/runtime"
	"gitflow.dev/gitflow/internal/tui"
)

// FinishOptions controls finish-release and finish-hotfix
type FinishOptions struct {
	Version string
	// Yes skips the confirmation prompt
	Yes bool
}

// confirmFinish asks before a release or hotfix is merged into main. It
// returns false when the user declines. Without a terminal, or with --yes,
// it does not ask.
func confirmFinish(ctx *runtime.Context, kind branchutil.Kind, opts FinishOptions) (bool, error) {
	unit, err := branchutil.NewUnitOfWork(kind, opts.Version)
	if err != nil {
		return false, err
	}
	if opts.Yes || !tui.IsInteractive() {
		return true, nil
	}

	prompt := fmt.Sprintf("Merge %s into %s and %s, and tag %s?",
		unit.BranchName, ctx.Settings.MainBranch, ctx.Settings.DevelopBranch, unit.TagName)
	ok, err := tui.PromptConfirm(prompt, true)
	if err != nil {
		if errors.Is(err, tui.ErrCanceled) {
			return false, nil
		}
		return false, gferrors.NewUnexpectedError("confirmation prompt", err)
	}
	return ok, nil
}
