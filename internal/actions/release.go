package actions

import (
	"gitflow.dev/gitflow/internal/branchutil"
	"gitflow.dev/gitflow/internal/engine"
	"gitflow.dev/gitflow/internal/runtime"
)

// CreateReleaseAction creates release/v<version> from develop
func CreateReleaseAction(ctx *runtime.Context, version string) error {
	res, err := ctx.Engine.CreateRelease(ctx, version)
	if err != nil {
		return err
	}
	reportAncillary(ctx, res)
	ctx.Splog.Tip("Run `gitflow finish-release %s` to merge it into %s and tag it.", res.Unit.Identifier, ctx.Settings.MainBranch)
	return nil
}

// FinishReleaseAction merges and tags release/v<version>
func FinishReleaseAction(ctx *runtime.Context, opts FinishOptions) error {
	ok, err := confirmFinish(ctx, branchutil.KindRelease, opts)
	if err != nil {
		return err
	}
	if !ok {
		ctx.Splog.Info("Release not finished.")
		return nil
	}
	_, err = ctx.Engine.FinishRelease(ctx, opts.Version)
	return err
}

func reportAncillary(ctx *runtime.Context, res *engine.Result) {
	if len(res.SkippedManifests) > 0 {
		ctx.Splog.Tip("Update the version in %v by hand before finishing.", res.SkippedManifests)
	}
	ctx.Splog.Tip("Fill in the new %s section before finishing.", ctx.Settings.ChangelogPath)
}
