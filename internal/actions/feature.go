package actions

import (
	"gitflow.dev/gitflow/internal/runtime"
)

// StartFeatureAction creates and publishes feature/<name>
func StartFeatureAction(ctx *runtime.Context, name string) error {
	res, err := ctx.Engine.StartFeature(ctx, name)
	if err != nil {
		return err
	}
	if res.CreatedDevelop {
		ctx.Splog.Tip("%s was created from your previous branch and pushed to %s.", ctx.Settings.DevelopBranch, ctx.Settings.Remote)
	}
	ctx.Splog.Tip("Run `gitflow finish-feature %s` when the work is ready for %s.", name, ctx.Settings.DevelopBranch)
	return nil
}

// FinishFeatureAction merges feature/<name> into develop and deletes it
func FinishFeatureAction(ctx *runtime.Context, name string) error {
	_, err := ctx.Engine.FinishFeature(ctx, name)
	return err
}
