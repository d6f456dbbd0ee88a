package engine

import (
	"context"
	"strings"

	"gitflow.dev/gitflow/internal/branchutil"
	"gitflow.dev/gitflow/internal/errors"
)

// versionedFlow captures what differs between releases and hotfixes. Both
// finish into main with a tag and are merged back into develop.
type versionedFlow struct {
	kind             branchutil.Kind
	fromMain         bool
	mainMerge        string
	tagMessage       string
	developBackMerge string
}

var (
	releaseFlow = versionedFlow{
		kind:             branchutil.KindRelease,
		mainMerge:        releaseMergeMessage,
		tagMessage:       releaseTagMessage,
		developBackMerge: releaseBackMergeMessage,
	}
	hotfixFlow = versionedFlow{
		kind:             branchutil.KindHotfix,
		fromMain:         true,
		mainMerge:        hotfixMergeMessage,
		tagMessage:       hotfixTagMessage,
		developBackMerge: hotfixBackMergeMessage,
	}
)

func (f versionedFlow) title() string {
	if f.kind == branchutil.KindHotfix {
		return "Hotfix"
	}
	return "Release"
}

// CreateRelease branches release/v<version> from develop, bumps manifests,
// adds a changelog section and publishes the branch.
func (e *Engine) CreateRelease(ctx context.Context, version string) (*Result, error) {
	return e.createVersioned(ctx, releaseFlow, version, "")
}

// FinishRelease merges release/v<version> into main, tags it, merges it back
// into develop and deletes the branch.
func (e *Engine) FinishRelease(ctx context.Context, version string) (*Result, error) {
	return e.finishVersioned(ctx, releaseFlow, version)
}

func (e *Engine) createVersioned(ctx context.Context, flow versionedFlow, version, description string) (*Result, error) {
	unit, err := branchutil.NewUnitOfWork(flow.kind, version)
	if err != nil {
		return nil, err
	}
	if flow.kind == branchutil.KindHotfix && strings.TrimSpace(description) == "" {
		return nil, errors.NewInvalidArgumentError("description", "must not be empty")
	}
	if err := e.requireBranchAbsent(ctx, unit.BranchName); err != nil {
		return nil, err
	}
	if err := e.requireTagAbsent(ctx, unit.TagName); err != nil {
		return nil, err
	}

	base := e.settings.DevelopBranch
	if flow.fromMain {
		base = e.settings.MainBranch
	}

	e.splog.Info("Creating %s: %s", strings.ToLower(flow.title()), unit.TagName)
	if err := e.syncBranch(ctx, base); err != nil {
		return nil, err
	}

	if err := e.requireBranchAbsent(ctx, unit.BranchName); err != nil {
		return nil, err
	}
	e.splog.Info("Creating branch %s...", unit.BranchName)
	if err := e.gateway.CheckoutNew(ctx, unit.BranchName); err != nil {
		return nil, err
	}

	res := &Result{Unit: unit, FinalBranch: unit.BranchName}
	if err := e.bumpManifests(ctx, unit, res); err != nil {
		return nil, err
	}
	if err := e.updateChangelog(ctx, unit, description, res); err != nil {
		return nil, err
	}

	e.splog.Info("Pushing %s to %s...", unit.BranchName, e.settings.Remote)
	if err := e.gateway.PushNew(ctx, e.settings.Remote, unit.BranchName); err != nil {
		return nil, err
	}

	e.splog.Success("%s %s created successfully!", flow.title(), unit.TagName)
	return res, nil
}

func (e *Engine) finishVersioned(ctx context.Context, flow versionedFlow, version string) (*Result, error) {
	unit, err := branchutil.NewUnitOfWork(flow.kind, version)
	if err != nil {
		return nil, err
	}
	if err := e.requireClean(ctx, "finish "+strings.ToLower(flow.title())); err != nil {
		return nil, err
	}
	if err := e.requireBranchPresent(ctx, unit.BranchName); err != nil {
		return nil, err
	}
	if err := e.requireTagAbsent(ctx, unit.TagName); err != nil {
		return nil, err
	}

	mainBranch, develop := e.settings.MainBranch, e.settings.DevelopBranch
	e.splog.Info("Finishing %s: %s", strings.ToLower(flow.title()), unit.TagName)

	if err := e.syncBranch(ctx, mainBranch); err != nil {
		return nil, err
	}
	e.splog.Info("Merging %s into %s...", unit.BranchName, mainBranch)
	if err := e.gateway.Merge(ctx, unit.BranchName, true, e.message(flow.mainMerge, unit)); err != nil {
		return nil, err
	}
	if err := e.requireTagAbsent(ctx, unit.TagName); err != nil {
		return nil, err
	}
	e.splog.Info("Tagging %s...", unit.TagName)
	if err := e.gateway.Tag(ctx, unit.TagName, e.message(flow.tagMessage, unit)); err != nil {
		return nil, err
	}
	if err := e.gateway.Push(ctx, e.settings.Remote, mainBranch); err != nil {
		return nil, err
	}
	if err := e.gateway.PushTag(ctx, e.settings.Remote, unit.TagName); err != nil {
		return nil, err
	}

	if err := e.syncBranch(ctx, develop); err != nil {
		return nil, err
	}
	if err := e.mergeAndPush(ctx, unit.BranchName, develop, e.message(flow.developBackMerge, unit)); err != nil {
		return nil, err
	}
	if err := e.retire(ctx, unit.BranchName); err != nil {
		return nil, err
	}

	e.splog.Success("%s %s completed successfully!", flow.title(), unit.TagName)
	return &Result{Unit: unit, FinalBranch: develop}, nil
}
