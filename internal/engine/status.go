package engine

import (
	"context"

	"gitflow.dev/gitflow/internal/branchutil"
	"gitflow.dev/gitflow/internal/git"
)

// BranchInfo is a local branch as shown by status
type BranchInfo struct {
	Name      string
	IsCurrent bool
	// Managed is set when the branch follows the feature/release/hotfix scheme
	Managed    bool
	Kind       branchutil.Kind
	Identifier string
}

// StatusReport is a read-only snapshot of the repository
type StatusReport struct {
	CurrentBranch string
	Branches      []BranchInfo
	Dirty         bool
	RecentCommits []git.Commit
}

// Active returns the managed branches of the given kind
func (r *StatusReport) Active(kind branchutil.Kind) []BranchInfo {
	var out []BranchInfo
	for _, b := range r.Branches {
		if b.Managed && b.Kind == kind {
			out = append(out, b)
		}
	}
	return out
}

// Status reads the current branch, local branches, working tree state and
// the most recent commits. It never mutates the repository.
func (e *Engine) Status(ctx context.Context) (*StatusReport, error) {
	current, err := e.gateway.CurrentBranch(ctx)
	if err != nil {
		return nil, err
	}
	names, err := e.gateway.LocalBranches(ctx)
	if err != nil {
		return nil, err
	}
	dirty, err := e.gateway.IsWorkingTreeDirty(ctx)
	if err != nil {
		return nil, err
	}
	commits, err := e.gateway.RecentCommits(ctx, e.settings.RecentCommitCount)
	if err != nil {
		return nil, err
	}

	report := &StatusReport{
		CurrentBranch: current,
		Dirty:         dirty,
		RecentCommits: commits,
	}
	for _, name := range names {
		kind, id, ok := branchutil.Parse(name)
		report.Branches = append(report.Branches, BranchInfo{
			Name:       name,
			IsCurrent:  name == current,
			Managed:    ok,
			Kind:       kind,
			Identifier: id,
		})
	}
	return report, nil
}
