package engine

import "context"

// CreateHotfix branches hotfix/v<version> from main. The description seeds
// the Fixed section of the new changelog entry.
func (e *Engine) CreateHotfix(ctx context.Context, version, description string) (*Result, error) {
	return e.createVersioned(ctx, hotfixFlow, version, description)
}

// FinishHotfix merges hotfix/v<version> into main, tags it, merges it back
// into develop and deletes the branch.
func (e *Engine) FinishHotfix(ctx context.Context, version string) (*Result, error) {
	return e.finishVersioned(ctx, hotfixFlow, version)
}
