package testhelpers

import (
	"os"
	"path/filepath"
	"testing"
)

// Scene represents a test scene: a working repository in a temporary
// directory and, once a setup has run, a bare remote next to it.
type Scene struct {
	Dir    string
	Repo   *GitRepo
	Remote string
	oldDir string
}

// SceneSetup is a function type for setting up a scene.
type SceneSetup func(*Scene) error

// NewScene creates a new test scene with a temporary directory and Git
// repository whose main branch has one commit. It changes into the
// repository and restores the working directory on cleanup.
func NewScene(t *testing.T, setup SceneSetup) *Scene {
	t.Helper()

	root, err := os.MkdirTemp("", "gitflow-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	// Resolve symlinks so paths compare equal to what git reports.
	if resolved, err := filepath.EvalSymlinks(root); err == nil {
		root = resolved
	}

	oldDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get current directory: %v", err)
	}

	isolateEnvironment(t)

	dir := filepath.Join(root, "repo")
	repo, err := NewGitRepo(dir)
	if err != nil {
		_ = os.RemoveAll(root)
		t.Fatalf("Failed to create Git repo: %v", err)
	}
	if err := repo.CreateChangeAndCommit("initial", "initial"); err != nil {
		_ = os.RemoveAll(root)
		t.Fatalf("Failed to create initial commit: %v", err)
	}

	scene := &Scene{
		Dir:    dir,
		Repo:   repo,
		oldDir: oldDir,
	}

	if err := os.Chdir(dir); err != nil {
		_ = os.RemoveAll(root)
		t.Fatalf("Failed to change directory: %v", err)
	}

	t.Cleanup(func() {
		_ = os.Chdir(oldDir)
		if os.Getenv("DEBUG") == "" {
			_ = os.RemoveAll(root)
		}
	})

	if setup != nil {
		if err := setup(scene); err != nil {
			t.Fatalf("Setup failed: %v", err)
		}
	}

	return scene
}

// isolateEnvironment keeps the developer's git and gitflow settings out of
// the test run.
func isolateEnvironment(t *testing.T) {
	t.Helper()
	t.Setenv("GIT_CONFIG_GLOBAL", os.DevNull)
	t.Setenv("GIT_CONFIG_NOSYSTEM", "1")
	t.Setenv("GIT_TERMINAL_PROMPT", "0")
	t.Setenv("GITFLOW_LOG_FILE", "off")
	t.Setenv("GITFLOW_NO_INTERACTIVE", "1")
}

// AddOrigin creates a bare repository named origin and pushes main to it.
func (s *Scene) AddOrigin() error {
	remote, err := s.Repo.CreateBareRemote("origin")
	if err != nil {
		return err
	}
	s.Remote = remote
	return s.Repo.PushBranch("origin", "main")
}

// BasicSceneSetup gives the repository an origin remote that has main.
func BasicSceneSetup(scene *Scene) error {
	return scene.AddOrigin()
}

// GitflowSceneSetup adds an origin remote and a published develop branch
// that is one commit ahead of main. develop is left checked out.
func GitflowSceneSetup(scene *Scene) error {
	if err := scene.AddOrigin(); err != nil {
		return err
	}
	if err := scene.Repo.CreateAndCheckoutBranch("develop"); err != nil {
		return err
	}
	if err := scene.Repo.CreateChangeAndCommit("develop work", "develop"); err != nil {
		return err
	}
	return scene.Repo.PushBranch("origin", "develop")
}
