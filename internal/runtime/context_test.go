package runtime_test

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitflow.dev/gitflow/internal/config"
	gferrors "gitflow.dev/gitflow/internal/errors"
	"gitflow.dev/gitflow/internal/runtime"
	"gitflow.dev/gitflow/internal/tui"
	"gitflow.dev/gitflow/testhelpers"
)

func quietSplog(t *testing.T) *tui.Splog {
	t.Helper()
	splog, err := tui.NewSplogWithOptions(tui.Options{Out: io.Discard, Err: io.Discard})
	require.NoError(t, err)
	return splog
}

func TestGetContext(t *testing.T) {
	t.Run("uses defaults without a config file", func(t *testing.T) {
		scene := testhelpers.NewScene(t, nil)

		ctx, err := runtime.GetContext(context.Background(), scene.Dir, quietSplog(t))
		require.NoError(t, err)
		assert.Equal(t, scene.Dir, ctx.RepoRoot)
		assert.Equal(t, config.DefaultSettings(), ctx.Settings)
		assert.Equal(t, ctx.Settings, ctx.Engine.Settings())
	})

	t.Run("reads the repository config", func(t *testing.T) {
		scene := testhelpers.NewScene(t, nil)
		develop := "dev"
		require.NoError(t, config.SaveRepoConfig(filepath.Join(scene.Dir, ".git"), &config.RepoConfig{DevelopBranch: &develop}))

		ctx, err := runtime.GetContext(context.Background(), scene.Dir, quietSplog(t))
		require.NoError(t, err)
		assert.Equal(t, "dev", ctx.Settings.DevelopBranch)
		assert.Equal(t, config.DefaultMainBranch, ctx.Settings.MainBranch)
	})

	t.Run("reads the shared config from a linked worktree", func(t *testing.T) {
		scene := testhelpers.NewScene(t, nil)
		develop := "dev"
		require.NoError(t, config.SaveRepoConfig(filepath.Join(scene.Dir, ".git"), &config.RepoConfig{DevelopBranch: &develop}))

		worktree := filepath.Join(filepath.Dir(scene.Dir), "linked")
		require.NoError(t, scene.Repo.RunGitCommand("worktree", "add", "-b", "feature/linked", worktree))

		ctx, err := runtime.GetContext(context.Background(), worktree, quietSplog(t))
		require.NoError(t, err)
		assert.Equal(t, worktree, ctx.RepoRoot)
		assert.Equal(t, "dev", ctx.Settings.DevelopBranch)
	})

	t.Run("outside a repository", func(t *testing.T) {
		_, err := runtime.GetContext(context.Background(), t.TempDir(), quietSplog(t))
		require.ErrorIs(t, err, gferrors.ErrNotARepository)
	})
}
