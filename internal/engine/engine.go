package engine

import (
	"context"
	"time"

	"gitflow.dev/gitflow/internal/branchutil"
	"gitflow.dev/gitflow/internal/config"
	"gitflow.dev/gitflow/internal/errors"
	"gitflow.dev/gitflow/internal/git"
	"gitflow.dev/gitflow/internal/tui"
)

// Engine runs workflow operations against a repository gateway. It keeps no
// state of its own between calls; every precondition is read from the
// repository when it is checked.
type Engine struct {
	gateway  git.Gateway
	settings config.Settings
	splog    *tui.Splog
	now      func() time.Time
}

// Option customizes an Engine
type Option func(*Engine)

// WithClock overrides the time source used for changelog dates
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// New creates an engine over gateway
func New(gateway git.Gateway, settings config.Settings, splog *tui.Splog, opts ...Option) *Engine {
	if splog == nil {
		splog = tui.NewSplog()
	}
	e := &Engine{
		gateway:  gateway,
		settings: settings,
		splog:    splog,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Settings returns the settings the engine runs with
func (e *Engine) Settings() config.Settings {
	return e.settings
}

// Result describes a completed start, create or finish operation
type Result struct {
	Unit branchutil.UnitOfWork
	// FinalBranch is the branch checked out when the operation completed
	FinalBranch string
	// CreatedDevelop is set when start-feature had to create the develop branch
	CreatedDevelop bool
	// BumpedManifests lists manifests whose version was committed
	BumpedManifests []string
	// SkippedManifests lists manifests that could not be updated
	SkippedManifests []string
	// ChangelogCreated is set when the changelog did not exist before
	ChangelogCreated bool
}

func (e *Engine) requireClean(ctx context.Context, operation string) error {
	dirty, err := e.gateway.IsWorkingTreeDirty(ctx)
	if err != nil {
		return err
	}
	if dirty {
		return errors.NewDirtyWorkingTreeError(operation)
	}
	return nil
}

func (e *Engine) requireBranchAbsent(ctx context.Context, branch string) error {
	exists, err := e.gateway.BranchExists(ctx, branch)
	if err != nil {
		return err
	}
	if exists {
		return errors.NewBranchAlreadyExistsError(branch)
	}
	return nil
}

func (e *Engine) requireBranchPresent(ctx context.Context, branch string) error {
	exists, err := e.gateway.BranchExists(ctx, branch)
	if err != nil {
		return err
	}
	if !exists {
		return errors.NewBranchNotFoundError(branch)
	}
	return nil
}

func (e *Engine) requireTagAbsent(ctx context.Context, tag string) error {
	exists, err := e.gateway.TagExists(ctx, tag)
	if err != nil {
		return err
	}
	if exists {
		return errors.NewTagAlreadyExistsError(tag)
	}
	return nil
}

// syncBranch checks out branch and pulls it from the remote
func (e *Engine) syncBranch(ctx context.Context, branch string) error {
	e.splog.Info("Switching to %s branch...", branch)
	if err := e.gateway.Checkout(ctx, branch); err != nil {
		return err
	}
	e.splog.Info("Pulling latest changes from %s...", branch)
	return e.gateway.Pull(ctx, e.settings.Remote, branch)
}

// createAndPublish creates branch from HEAD and pushes it with upstream tracking
func (e *Engine) createAndPublish(ctx context.Context, branch string) error {
	e.splog.Info("Creating branch %s...", branch)
	if err := e.gateway.CheckoutNew(ctx, branch); err != nil {
		return err
	}
	e.splog.Info("Pushing %s to %s...", branch, e.settings.Remote)
	return e.gateway.PushNew(ctx, e.settings.Remote, branch)
}

// mergeAndPush merges source into the checked-out target with a merge commit
// and pushes target
func (e *Engine) mergeAndPush(ctx context.Context, source, target, message string) error {
	e.splog.Info("Merging %s into %s...", source, target)
	if err := e.gateway.Merge(ctx, source, true, message); err != nil {
		return err
	}
	return e.gateway.Push(ctx, e.settings.Remote, target)
}

// retire deletes a finished branch locally and on the remote
func (e *Engine) retire(ctx context.Context, branch string) error {
	e.splog.Info("Deleting %s...", branch)
	if err := e.gateway.DeleteLocalBranch(ctx, branch, false); err != nil {
		return err
	}
	return e.gateway.DeleteRemoteBranch(ctx, e.settings.Remote, branch)
}
