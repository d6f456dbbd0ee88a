package engine

import (
	"context"
	"os"
	"path/filepath"

	"gitflow.dev/gitflow/internal/branchutil"
	"gitflow.dev/gitflow/internal/changelog"
	"gitflow.dev/gitflow/internal/errors"
	"gitflow.dev/gitflow/internal/manifest"
)

func (e *Engine) repoPath(rel string) string {
	if filepath.IsAbs(rel) {
		return rel
	}
	return filepath.Join(e.gateway.WorkDir(), rel)
}

// bumpManifests sets the version of every configured manifest that exists and
// commits the changed ones together. Manifests that cannot be read or parsed
// are skipped with a warning.
func (e *Engine) bumpManifests(ctx context.Context, unit branchutil.UnitOfWork, res *Result) error {
	var changed []string
	for _, rel := range e.settings.Manifests {
		path := e.repoPath(rel)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			e.splog.Debug("No %s found, skipping version bump", rel)
			continue
		}

		bump, err := manifest.Bump(path, unit.Identifier)
		if err != nil {
			e.splog.Warn("Could not update %s: %v", rel, err)
			res.SkippedManifests = append(res.SkippedManifests, rel)
			continue
		}
		if !bump.Changed {
			e.splog.Debug("%s already at version %s", rel, unit.Identifier)
			continue
		}
		e.splog.Info("Updated %s version to %s", rel, unit.Identifier)
		changed = append(changed, rel)
	}

	if len(changed) == 0 {
		return nil
	}
	if err := e.gateway.StageAndCommit(ctx, changed, e.message(manifestCommitMessage, unit)); err != nil {
		return err
	}
	res.BumpedManifests = changed
	return nil
}

// updateChangelog inserts a section for the unit's version and commits the
// changelog on its own.
func (e *Engine) updateChangelog(ctx context.Context, unit branchutil.UnitOfWork, fixed string, res *Result) error {
	rel := e.settings.ChangelogPath
	created, err := changelog.Update(e.repoPath(rel), changelog.Entry{
		Version: unit.Identifier,
		Date:    e.now(),
		Fixed:   fixed,
	})
	if err != nil {
		return errors.NewUnexpectedError("updating "+rel, err)
	}
	if created {
		e.splog.Info("Created %s", rel)
	} else {
		e.splog.Info("Updated %s", rel)
	}
	res.ChangelogCreated = created

	return e.gateway.StageAndCommit(ctx, []string{rel}, e.message(changelogCommitMessage, unit))
}
