package actions

import (
	"errors"

	"gitflow.dev/gitflow/internal/engine"
	gferrors "gitflow.dev/gitflow/internal/errors"
	"gitflow.dev/gitflow/internal/runtime"
	"gitflow.dev/gitflow/internal/tui"
	"gitflow.dev/gitflow/internal/tui/style"
)

// CleanupOptions contains options for the cleanup command
type CleanupOptions struct {
	// Yes deletes every candidate without asking
	Yes bool
	// DryRun only lists the candidates
	DryRun bool
}

// CleanupAction deletes local feature, release and hotfix branches that are
// merged and whose remote branch is gone
func CleanupAction(ctx *runtime.Context, opts CleanupOptions) (*engine.CleanupReport, error) {
	eng := ctx.Engine
	splog := ctx.Splog

	candidates, err := eng.CleanupCandidates(ctx)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		splog.Info("No stale branches to clean up.")
		return &engine.CleanupReport{}, nil
	}

	splog.Info("Stale branches:")
	for _, c := range candidates {
		splog.Info("  %s %s", style.ColorBranchName(c.Branch, false), style.ColorDim("(merged into "+c.MergedInto+")"))
	}
	if opts.DryRun {
		splog.Info("Dry run: no branches were deleted.")
		return &engine.CleanupReport{}, nil
	}

	selected := candidates
	if !opts.Yes && tui.IsInteractive() {
		selected, err = selectCandidates(candidates)
		if err != nil {
			return nil, err
		}
		if len(selected) == 0 {
			splog.Info("Nothing selected.")
			return &engine.CleanupReport{}, nil
		}
	}

	report := eng.Cleanup(ctx, selected)
	if len(report.Deleted) > 0 {
		splog.Success("Deleted %d branch(es).", len(report.Deleted))
	}
	if len(report.Failed) > 0 {
		splog.Warn("%d branch(es) could not be deleted.", len(report.Failed))
	}
	return report, nil
}

func selectCandidates(candidates []engine.CleanupCandidate) ([]engine.CleanupCandidate, error) {
	names := make([]string, 0, len(candidates))
	for _, c := range candidates {
		names = append(names, c.Branch)
	}

	chosen, err := tui.PromptMultiSelect("Select branches to delete:", names)
	if errors.Is(err, tui.ErrCanceled) {
		return nil, nil
	}
	if err != nil {
		return nil, gferrors.NewUnexpectedError("branch selection", err)
	}

	keep := make(map[string]bool, len(chosen))
	for _, name := range chosen {
		keep[name] = true
	}
	var selected []engine.CleanupCandidate
	for _, c := range candidates {
		if keep[c.Branch] {
			selected = append(selected, c)
		}
	}
	return selected, nil
}
