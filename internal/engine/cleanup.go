package engine

import (
	"context"

	"gitflow.dev/gitflow/internal/branchutil"
)

// CleanupCandidate is a local branch that is safe to delete
type CleanupCandidate struct {
	Branch string
	Kind   branchutil.Kind
	// MergedInto is the integration branch that already contains the branch
	MergedInto string
}

// CleanupFailure records a branch that could not be deleted
type CleanupFailure struct {
	Branch string
	Err    error
}

// CleanupReport is the outcome of deleting cleanup candidates
type CleanupReport struct {
	Deleted []string
	Failed  []CleanupFailure
}

// CleanupCandidates refreshes remote-tracking refs and returns the local
// feature, release and hotfix branches whose upstream on the remote is gone
// and whose history is fully contained in develop or main. A branch that was
// never published has no upstream and is kept. The integration
// branches and the current branch are never candidates.
func (e *Engine) CleanupCandidates(ctx context.Context) ([]CleanupCandidate, error) {
	remote := e.settings.Remote
	e.splog.Info("Fetching %s and pruning stale remote branches...", remote)
	if err := e.gateway.FetchPrune(ctx, remote); err != nil {
		return nil, err
	}

	current, err := e.gateway.CurrentBranch(ctx)
	if err != nil {
		return nil, err
	}
	names, err := e.gateway.LocalBranches(ctx)
	if err != nil {
		return nil, err
	}

	var targets []string
	for _, t := range []string{e.settings.DevelopBranch, e.settings.MainBranch} {
		exists, err := e.gateway.BranchExists(ctx, t)
		if err != nil {
			return nil, err
		}
		if exists {
			targets = append(targets, t)
		}
	}

	var candidates []CleanupCandidate
	for _, name := range names {
		if name == current || name == e.settings.DevelopBranch || name == e.settings.MainBranch {
			continue
		}
		kind, _, ok := branchutil.Parse(name)
		if !ok {
			continue
		}

		upstreamRemote, upstreamBranch, err := e.gateway.Upstream(ctx, name)
		if err != nil {
			return nil, err
		}
		if upstreamRemote != remote {
			e.splog.Debug("Keeping %s: it does not track a branch on %s", name, remote)
			continue
		}
		onRemote, err := e.gateway.RemoteBranchExists(ctx, remote, upstreamBranch)
		if err != nil {
			return nil, err
		}
		if onRemote {
			e.splog.Debug("Keeping %s: still on %s", name, remote)
			continue
		}

		for _, target := range targets {
			merged, err := e.gateway.IsMergedInto(ctx, name, target)
			if err != nil {
				return nil, err
			}
			if merged {
				candidates = append(candidates, CleanupCandidate{Branch: name, Kind: kind, MergedInto: target})
				break
			}
		}
	}
	return candidates, nil
}

// Cleanup deletes the given candidates. Ancestry was verified when the
// candidates were collected, so deletion is forced; a branch that fails to
// delete is reported and the rest are still processed.
func (e *Engine) Cleanup(ctx context.Context, candidates []CleanupCandidate) *CleanupReport {
	report := &CleanupReport{}
	for _, c := range candidates {
		if err := e.gateway.DeleteLocalBranch(ctx, c.Branch, true); err != nil {
			e.splog.Warn("Could not delete %s: %v", c.Branch, err)
			report.Failed = append(report.Failed, CleanupFailure{Branch: c.Branch, Err: err})
			continue
		}
		e.splog.Info("Deleted %s (merged into %s)", c.Branch, c.MergedInto)
		report.Deleted = append(report.Deleted, c.Branch)
	}
	return report
}
