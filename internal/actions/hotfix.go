package actions

import (
	"gitflow.dev/gitflow/internal/branchutil"
	"gitflow.dev/gitflow/internal/runtime"
)

// CreateHotfixAction creates hotfix/v<version> from main
func CreateHotfixAction(ctx *runtime.Context, version, description string) error {
	res, err := ctx.Engine.CreateHotfix(ctx, version, description)
	if err != nil {
		return err
	}
	reportAncillary(ctx, res)
	ctx.Splog.Tip("Run `gitflow finish-hotfix %s` once the fix is committed.", res.Unit.Identifier)
	return nil
}

// FinishHotfixAction merges and tags hotfix/v<version>
func FinishHotfixAction(ctx *runtime.Context, opts FinishOptions) error {
	ok, err := confirmFinish(ctx, branchutil.KindHotfix, opts)
	if err != nil {
		return err
	}
	if !ok {
		ctx.Splog.Info("Hotfix not finished.")
		return nil
	}
	_, err = ctx.Engine.FinishHotfix(ctx, opts.Version)
	return err
}
