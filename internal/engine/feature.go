package engine

import (
	"context"

	"gitflow.dev/gitflow/internal/branchutil"
)

// StartFeature creates feature/<name> from an up-to-date develop and
// publishes it. develop is created from HEAD and pushed first when missing.
func (e *Engine) StartFeature(ctx context.Context, name string) (*Result, error) {
	unit, err := branchutil.NewUnitOfWork(branchutil.KindFeature, name)
	if err != nil {
		return nil, err
	}
	if err := e.requireBranchAbsent(ctx, unit.BranchName); err != nil {
		return nil, err
	}

	develop := e.settings.DevelopBranch
	hasDevelop, err := e.gateway.BranchExists(ctx, develop)
	if err != nil {
		return nil, err
	}

	res := &Result{Unit: unit}
	e.splog.Info("Starting new feature: %s", name)

	if !hasDevelop {
		e.splog.Warn("%s branch doesn't exist. Creating it...", develop)
		if err := e.createAndPublish(ctx, develop); err != nil {
			return nil, err
		}
		res.CreatedDevelop = true
	}

	if err := e.syncBranch(ctx, develop); err != nil {
		return nil, err
	}

	// Existence is re-read immediately before the branch is created.
	if err := e.requireBranchAbsent(ctx, unit.BranchName); err != nil {
		return nil, err
	}
	if err := e.createAndPublish(ctx, unit.BranchName); err != nil {
		return nil, err
	}

	res.FinalBranch = unit.BranchName
	e.splog.Success("Feature '%s' started successfully!", name)
	e.splog.Info("You are now on branch: %s", unit.BranchName)
	return res, nil
}

// FinishFeature publishes feature/<name>, merges it into develop with a merge
// commit and deletes it locally and on the remote.
func (e *Engine) FinishFeature(ctx context.Context, name string) (*Result, error) {
	unit, err := branchutil.NewUnitOfWork(branchutil.KindFeature, name)
	if err != nil {
		return nil, err
	}
	if err := e.requireClean(ctx, "finish feature"); err != nil {
		return nil, err
	}
	if err := e.requireBranchPresent(ctx, unit.BranchName); err != nil {
		return nil, err
	}

	develop := e.settings.DevelopBranch
	e.splog.Info("Finishing feature: %s", name)

	if err := e.gateway.Checkout(ctx, unit.BranchName); err != nil {
		return nil, err
	}
	e.splog.Info("Pushing %s to %s...", unit.BranchName, e.settings.Remote)
	if err := e.gateway.Push(ctx, e.settings.Remote, unit.BranchName); err != nil {
		return nil, err
	}

	if err := e.syncBranch(ctx, develop); err != nil {
		return nil, err
	}
	if err := e.mergeAndPush(ctx, unit.BranchName, develop, e.message(featureMergeMessage, unit)); err != nil {
		return nil, err
	}
	if err := e.retire(ctx, unit.BranchName); err != nil {
		return nil, err
	}

	e.splog.Success("Feature '%s' completed successfully!", name)
	return &Result{Unit: unit, FinalBranch: develop}, nil
}
