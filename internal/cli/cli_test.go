package cli_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitflow.dev/gitflow/internal/cli"
	gferrors "gitflow.dev/gitflow/internal/errors"
	"gitflow.dev/gitflow/testhelpers"
)

type result struct {
	code   gferrors.ExitCode
	stdout string
	stderr string
}

func run(t *testing.T, args ...string) result {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := cli.Run(context.Background(), args, &stdout, &stderr)
	return result{code: gferrors.ExitCode(code), stdout: stdout.String(), stderr: stderr.String()}
}

// outsideRepository moves the test into an empty directory that is not a
// git repository.
func outsideRepository(t *testing.T) {
	t.Helper()
	t.Setenv("GITFLOW_LOG_FILE", "off")
	t.Setenv("GITFLOW_NO_INTERACTIVE", "1")
	t.Chdir(t.TempDir())
}

func TestUsage(t *testing.T) {
	outsideRepository(t)

	t.Run("no command", func(t *testing.T) {
		res := run(t)
		assert.Equal(t, gferrors.ExitUsage, res.code)
		assert.Contains(t, res.stderr, "invalid argument command: is required")
		assert.Contains(t, res.stderr, "Usage:")
	})

	t.Run("unknown command", func(t *testing.T) {
		res := run(t, "bogus")
		assert.Equal(t, gferrors.ExitUsage, res.code)
		assert.Contains(t, res.stderr, "bogus: unknown command")
		assert.Contains(t, res.stderr, "Available Commands:")
	})

	t.Run("suggests a close match", func(t *testing.T) {
		res := run(t, "statu")
		assert.Equal(t, gferrors.ExitUsage, res.code)
		assert.Contains(t, res.stderr, `did you mean "status"?`)
	})

	t.Run("help", func(t *testing.T) {
		res := run(t, "help")
		assert.Equal(t, gferrors.ExitSuccess, res.code)
		for _, verb := range []string{"status", "start-feature", "finish-feature", "create-release", "finish-release", "create-hotfix", "finish-hotfix", "cleanup"} {
			assert.Contains(t, res.stdout, verb)
		}
	})

	t.Run("version", func(t *testing.T) {
		res := run(t, "--version")
		assert.Equal(t, gferrors.ExitSuccess, res.code)
		assert.Contains(t, res.stdout, "gitflow version dev")
	})

	t.Run("unknown flag", func(t *testing.T) {
		res := run(t, "status", "--bogus")
		assert.Equal(t, gferrors.ExitUsage, res.code)
		assert.Contains(t, res.stderr, "unknown flag: --bogus")
	})
}

func TestArgumentsAreCheckedBeforeTheRepository(t *testing.T) {
	outsideRepository(t)

	tests := []struct {
		args    []string
		message string
	}{
		{[]string{"start-feature"}, "invalid argument name: is required"},
		{[]string{"finish-feature"}, "invalid argument name: is required"},
		{[]string{"start-feature", ""}, "invalid argument name: must not be empty"},
		{[]string{"create-release"}, "invalid argument version: is required"},
		{[]string{"create-release", "1.2"}, `invalid version "1.2"`},
		{[]string{"finish-release", "v1.2.0"}, `invalid version "v1.2.0"`},
		{[]string{"finish-release", "1.2.0", "extra"}, "invalid argument extra: unexpected argument"},
		{[]string{"create-hotfix"}, "invalid argument version: is required"},
		{[]string{"create-hotfix", "1.2.1"}, "invalid argument description: is required"},
		{[]string{"create-hotfix", "1.2.x", "fix"}, `invalid version "1.2.x"`},
		{[]string{"finish-hotfix"}, "invalid argument version: is required"},
	}

	for _, tt := range tests {
		res := run(t, tt.args...)
		assert.Equal(t, gferrors.ExitUsage, res.code, "%v", tt.args)
		assert.Contains(t, res.stderr, tt.message, "%v", tt.args)
	}
}

func TestNotARepository(t *testing.T) {
	outsideRepository(t)

	for _, args := range [][]string{
		{"status"},
		{"start-feature", "login"},
		{"create-release", "1.0.0"},
		{"cleanup"},
	} {
		res := run(t, args...)
		assert.Equal(t, gferrors.ExitNotARepository, res.code, "%v", args)
		assert.Contains(t, res.stderr, "not a git repository", "%v", args)
	}
}

func TestFeatureCommands(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.GitflowSceneSetup)

	res := run(t, "start-feature", "login")
	require.Equal(t, gferrors.ExitSuccess, res.code, res.stderr)
	assert.Contains(t, res.stdout, "Feature 'login' started successfully!")
	testhelpers.ExpectCurrentBranch(t, scene.Repo, "feature/login")

	res = run(t, "start-feature", "login")
	assert.Equal(t, gferrors.ExitPrecondition, res.code)
	assert.Contains(t, res.stderr, "branch feature/login already exists")

	require.NoError(t, scene.Repo.WriteFile("develop_test.txt", "dirty"))
	res = run(t, "finish-feature", "login")
	assert.Equal(t, gferrors.ExitPrecondition, res.code)
	assert.Contains(t, res.stderr, "uncommitted changes")
	require.NoError(t, scene.Repo.RunGitCommand("checkout", "--", "develop_test.txt"))

	res = run(t, "finish-feature", "login")
	require.Equal(t, gferrors.ExitSuccess, res.code, res.stderr)
	testhelpers.ExpectBranches(t, scene.Repo, []string{"main", "develop"})

	res = run(t, "finish-feature", "login")
	assert.Equal(t, gferrors.ExitPrecondition, res.code)
	assert.Contains(t, res.stderr, "branch feature/login does not exist")
}

func TestReleaseCommands(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.GitflowSceneSetup)

	res := run(t, "create-release", "1.0.0")
	require.Equal(t, gferrors.ExitSuccess, res.code, res.stderr)
	testhelpers.ExpectCurrentBranch(t, scene.Repo, "release/v1.0.0")

	res = run(t, "finish-release", "1.0.0", "--yes")
	require.Equal(t, gferrors.ExitSuccess, res.code, res.stderr)
	assert.Contains(t, res.stdout, "Release v1.0.0 completed successfully!")
	assert.True(t, testhelpers.Must(scene.Repo.RemoteHasTag("origin", "v1.0.0")))

	res = run(t, "create-release", "1.0.0")
	assert.Equal(t, gferrors.ExitPrecondition, res.code)
	assert.Contains(t, res.stderr, "tag v1.0.0 already exists")

	res = run(t, "status")
	require.Equal(t, gferrors.ExitSuccess, res.code, res.stderr)
	assert.Contains(t, res.stdout, "GIT WORKFLOW STATUS")
	assert.Contains(t, res.stdout, "Merge release v1.0.0 into develop")

	res = run(t, "cleanup", "--dry-run")
	require.Equal(t, gferrors.ExitSuccess, res.code, res.stderr)
	assert.Contains(t, res.stdout, "No stale branches to clean up.")
}

func TestRepositoryCommandFailure(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.GitflowSceneSetup)
	require.NoError(t, scene.Repo.RunGitCommand("remote", "remove", "origin"))

	res := run(t, "start-feature", "login")
	assert.Equal(t, gferrors.ExitRepositoryCommand, res.code)
	assert.Contains(t, res.stderr, "git pull --no-rebase origin develop failed")
}
