package testhelpers

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

const textFileName = "test.txt"

// GitRepo represents a Git repository for testing purposes.
type GitRepo struct {
	Dir string
}

// NewGitRepo initializes a new Git repository in dir with main as the
// initial branch and a local committer identity.
func NewGitRepo(dir string) (*GitRepo, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create repo dir: %w", err)
	}

	cmd := exec.Command("git", "-c", "init.defaultBranch=main", "-c", "core.autocrlf=false", "init", dir, "-b", "main")
	cmd.Env = gitEnv()
	if output, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("failed to init repo: %w, output: %s", err, string(output))
	}

	repo := &GitRepo{Dir: dir}
	for _, kv := range [][2]string{
		{"user.name", "Test User"},
		{"user.email", "test@example.com"},
		{"commit.gpgsign", "false"},
		{"tag.gpgsign", "false"},
	} {
		if err := repo.runGitCommand("config", kv[0], kv[1]); err != nil {
			return nil, err
		}
	}
	return repo, nil
}

func gitEnv() []string {
	return append(os.Environ(), "GIT_CONFIG_GLOBAL="+os.DevNull, "GIT_CONFIG_NOSYSTEM=1")
}

// runGitCommand executes a git command in the repository directory.
func (r *GitRepo) runGitCommand(args ...string) error {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	cmd.Env = gitEnv()
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("git %s failed: %w, output: %s", strings.Join(args, " "), err, string(output))
	}
	return nil
}

// RunGitCommand executes a git command and returns an error if it fails.
func (r *GitRepo) RunGitCommand(args ...string) error {
	return r.runGitCommand(args...)
}

// RunGitCommandAndGetOutput executes a git command and returns its trimmed output.
func (r *GitRepo) RunGitCommandAndGetOutput(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	cmd.Env = gitEnv()
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git %s failed: %w", strings.Join(args, " "), err)
	}
	return strings.TrimSpace(string(output)), nil
}

// WriteFile writes content to a path relative to the repository root.
func (r *GitRepo) WriteFile(rel, content string) error {
	path := filepath.Join(r.Dir, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// ReadFile returns the content of a path relative to the repository root.
func (r *GitRepo) ReadFile(rel string) (string, error) {
	data, err := os.ReadFile(filepath.Join(r.Dir, rel))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// CreateChange creates a file change in the repository.
func (r *GitRepo) CreateChange(textValue string, prefix string, unstaged bool) error {
	fileName := textFileName
	if prefix != "" {
		fileName = prefix + "_" + fileName
	}
	if err := r.WriteFile(fileName, textValue); err != nil {
		return err
	}
	if !unstaged {
		return r.runGitCommand("add", fileName)
	}
	return nil
}

// CreateChangeAndCommit creates a file change and commits it.
func (r *GitRepo) CreateChangeAndCommit(textValue string, prefix string) error {
	if err := r.CreateChange(textValue, prefix, false); err != nil {
		return err
	}
	return r.runGitCommand("commit", "-m", textValue)
}

// CommitFile writes rel and commits it with message.
func (r *GitRepo) CommitFile(rel, content, message string) error {
	if err := r.WriteFile(rel, content); err != nil {
		return err
	}
	if err := r.runGitCommand("add", "--", rel); err != nil {
		return err
	}
	return r.runGitCommand("commit", "-m", message)
}

// CreateAndCheckoutBranch creates a branch from HEAD and checks it out.
func (r *GitRepo) CreateAndCheckoutBranch(name string) error {
	return r.runGitCommand("checkout", "-b", name)
}

// CheckoutBranch checks out an existing branch.
func (r *GitRepo) CheckoutBranch(name string) error {
	return r.runGitCommand("checkout", name)
}

// DeleteBranch force deletes a local branch.
func (r *GitRepo) DeleteBranch(name string) error {
	return r.runGitCommand("branch", "-D", name)
}

// CurrentBranchName returns the name of the current branch.
func (r *GitRepo) CurrentBranchName() (string, error) {
	return r.RunGitCommandAndGetOutput("branch", "--show-current")
}

// GetRevision returns the SHA of a revision.
func (r *GitRepo) GetRevision(rev string) (string, error) {
	return r.RunGitCommandAndGetOutput("rev-parse", rev)
}

// GetLocalBranches returns a list of all local branches.
func (r *GitRepo) GetLocalBranches() ([]string, error) {
	output, err := r.RunGitCommandAndGetOutput("for-each-ref", "refs/heads/", "--format=%(refname:short)")
	if err != nil {
		return nil, err
	}
	return splitLines(output), nil
}

// GetRemoteBranches lists the branch names the remote repository has.
func (r *GitRepo) GetRemoteBranches(remote string) ([]string, error) {
	output, err := r.RunGitCommandAndGetOutput("ls-remote", "--heads", remote)
	if err != nil {
		return nil, err
	}
	var branches []string
	for _, line := range splitLines(output) {
		fields := strings.Fields(line)
		if len(fields) != 2 {
			continue
		}
		branches = append(branches, strings.TrimPrefix(fields[1], "refs/heads/"))
	}
	return branches, nil
}

// GetTags lists local tags.
func (r *GitRepo) GetTags() ([]string, error) {
	output, err := r.RunGitCommandAndGetOutput("tag", "--list")
	if err != nil {
		return nil, err
	}
	return splitLines(output), nil
}

// RemoteHasTag reports whether the remote repository has tag.
func (r *GitRepo) RemoteHasTag(remote, tag string) (bool, error) {
	output, err := r.RunGitCommandAndGetOutput("ls-remote", "--tags", remote, "refs/tags/"+tag)
	if err != nil {
		return false, err
	}
	return output != "", nil
}

// ListCommitSubjects returns the commit subjects reachable from ref, newest first.
func (r *GitRepo) ListCommitSubjects(ref string) ([]string, error) {
	output, err := r.RunGitCommandAndGetOutput("log", "--format=%s", ref)
	if err != nil {
		return nil, err
	}
	return splitLines(output), nil
}

// ParentCount returns the number of parents of rev.
func (r *GitRepo) ParentCount(rev string) (int, error) {
	output, err := r.RunGitCommandAndGetOutput("rev-list", "--parents", "-n", "1", rev)
	if err != nil {
		return 0, err
	}
	return len(strings.Fields(output)) - 1, nil
}

// splitLines splits a string by newlines and returns non-empty lines.
func splitLines(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return []string{}
	}
	return strings.Split(s, "\n")
}

// CreateBareRemote creates a bare repository next to the working repository
// and adds it as a remote. Returns the path to the bare repository.
func (r *GitRepo) CreateBareRemote(name string) (string, error) {
	bareDir := filepath.Join(filepath.Dir(r.Dir), name+".git")

	cmd := exec.Command("git", "init", "--bare", "-b", "main", bareDir)
	cmd.Env = gitEnv()
	if output, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("failed to create bare repo: %w, output: %s", err, string(output))
	}

	if err := r.runGitCommand("remote", "add", name, bareDir); err != nil {
		return "", fmt.Errorf("failed to add remote: %w", err)
	}
	return bareDir, nil
}

// PushBranch pushes a branch to a remote and sets its upstream.
func (r *GitRepo) PushBranch(remote, branch string) error {
	return r.runGitCommand("push", "-u", remote, branch)
}

// DeleteRemoteBranch removes a branch from the remote repository.
func (r *GitRepo) DeleteRemoteBranch(remote, branch string) error {
	return r.runGitCommand("push", remote, "--delete", branch)
}

// IsAncestor checks if the first ref is an ancestor of the second ref.
func (r *GitRepo) IsAncestor(ancestor, descendant string) (bool, error) {
	err := r.runGitCommand("merge-base", "--is-ancestor", ancestor, descendant)
	if err == nil {
		return true, nil
	}
	return false, nil
}
