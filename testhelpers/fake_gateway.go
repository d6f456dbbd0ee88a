package testhelpers

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
	"testing"

	"gitflow.dev/gitflow/internal/git"
)

var _ git.Gateway = (*FakeGateway)(nil)

// mutatingMethods are the gateway methods that change the repository or
// its remote.
var mutatingMethods = map[string]bool{
	"Checkout":           true,
	"CheckoutNew":        true,
	"Pull":               true,
	"PushNew":            true,
	"Push":               true,
	"PushTag":            true,
	"DeleteRemoteBranch": true,
	"FetchPrune":         true,
	"Merge":              true,
	"Tag":                true,
	"DeleteLocalBranch":  true,
	"StageAndCommit":     true,
}

// Call is one recorded gateway invocation
type Call struct {
	Method string
	Args   []string
}

// String renders the call as "Method arg1 arg2"
func (c Call) String() string {
	if len(c.Args) == 0 {
		return c.Method
	}
	return c.Method + " " + strings.Join(c.Args, " ")
}

// IsMutating reports whether the call changes repository state
func (c Call) IsMutating() bool {
	return mutatingMethods[c.Method]
}

// FakeGateway is an in-memory git.Gateway that records every call. Branch,
// tag and remote state is kept in maps so workflow preconditions can be
// driven without a repository.
type FakeGateway struct {
	mu sync.Mutex

	Current        string
	Branches       map[string]bool
	Tags           map[string]bool
	RemoteBranches map[string]bool
	// Upstreams maps a local branch to the remote it tracks a same-named
	// branch on
	Upstreams map[string]string
	Dirty     bool
	// Merged maps a branch to the targets that already contain it
	Merged  map[string][]string
	Commits []git.Commit
	// Errors makes the named method fail
	Errors map[string]error
	// DeleteErrors makes DeleteLocalBranch fail for specific branches
	DeleteErrors map[string]error
	Dir          string

	calls []Call
}

// NewFakeGateway creates a fake whose repository has the given local
// branches, with the first one checked out. The working directory is a
// fresh temporary directory.
func NewFakeGateway(t *testing.T, branches ...string) *FakeGateway {
	t.Helper()
	f := &FakeGateway{
		Branches:       map[string]bool{},
		Tags:           map[string]bool{},
		RemoteBranches: map[string]bool{},
		Upstreams:      map[string]string{},
		Merged:         map[string][]string{},
		Errors:         map[string]error{},
		DeleteErrors:   map[string]error{},
		Dir:            t.TempDir(),
	}
	for _, b := range branches {
		f.Branches[b] = true
		f.RemoteBranches[b] = true
		f.Upstreams[b] = "origin"
	}
	if len(branches) > 0 {
		f.Current = branches[0]
	}
	return f
}

// Calls returns every recorded call in order
func (f *FakeGateway) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Call{}, f.calls...)
}

// MutatingCalls returns the recorded calls that change state, rendered
// with Call.String
func (f *FakeGateway) MutatingCalls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []string
	for _, c := range f.calls {
		if c.IsMutating() {
			out = append(out, c.String())
		}
	}
	return out
}

// Reset forgets the recorded calls
func (f *FakeGateway) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = nil
}

// WriteFile writes a file into the fake working directory
func (f *FakeGateway) WriteFile(t *testing.T, rel, content string) {
	t.Helper()
	repo := &GitRepo{Dir: f.Dir}
	if err := repo.WriteFile(rel, content); err != nil {
		t.Fatalf("Failed to write %s: %v", rel, err)
	}
}

// ReadFile reads a file from the fake working directory
func (f *FakeGateway) ReadFile(t *testing.T, rel string) string {
	t.Helper()
	data, err := (&GitRepo{Dir: f.Dir}).ReadFile(rel)
	if err != nil && !os.IsNotExist(err) {
		t.Fatalf("Failed to read %s: %v", rel, err)
	}
	return data
}

// record appends the call and returns the configured error for method
func (f *FakeGateway) record(method string, args ...string) error {
	f.calls = append(f.calls, Call{Method: method, Args: args})
	return f.Errors[method]
}

func (f *FakeGateway) CurrentBranch(_ context.Context) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("CurrentBranch"); err != nil {
		return "", err
	}
	return f.Current, nil
}

func (f *FakeGateway) BranchExists(_ context.Context, name string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("BranchExists", name); err != nil {
		return false, err
	}
	return f.Branches[name], nil
}

func (f *FakeGateway) TagExists(_ context.Context, name string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("TagExists", name); err != nil {
		return false, err
	}
	return f.Tags[name], nil
}

func (f *FakeGateway) RemoteBranchExists(_ context.Context, remote, branch string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("RemoteBranchExists", remote, branch); err != nil {
		return false, err
	}
	return f.RemoteBranches[branch], nil
}

func (f *FakeGateway) Upstream(_ context.Context, branch string) (string, string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("Upstream", branch); err != nil {
		return "", "", err
	}
	remote, ok := f.Upstreams[branch]
	if !ok {
		return "", "", nil
	}
	return remote, branch, nil
}

func (f *FakeGateway) IsWorkingTreeDirty(_ context.Context) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("IsWorkingTreeDirty"); err != nil {
		return false, err
	}
	return f.Dirty, nil
}

func (f *FakeGateway) IsMergedInto(_ context.Context, branch, target string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("IsMergedInto", branch, target); err != nil {
		return false, err
	}
	for _, t := range f.Merged[branch] {
		if t == target {
			return true, nil
		}
	}
	return false, nil
}

func (f *FakeGateway) LocalBranches(_ context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("LocalBranches"); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(f.Branches))
	for name, ok := range f.Branches {
		if ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

func (f *FakeGateway) RecentCommits(_ context.Context, n int) ([]git.Commit, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("RecentCommits", fmt.Sprint(n)); err != nil {
		return nil, err
	}
	if n > len(f.Commits) {
		n = len(f.Commits)
	}
	return append([]git.Commit{}, f.Commits[:n]...), nil
}

func (f *FakeGateway) Checkout(_ context.Context, branch string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("Checkout", branch); err != nil {
		return err
	}
	if !f.Branches[branch] {
		return fmt.Errorf("pathspec '%s' did not match any file(s) known to git", branch)
	}
	f.Current = branch
	return nil
}

func (f *FakeGateway) CheckoutNew(_ context.Context, branch string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("CheckoutNew", branch); err != nil {
		return err
	}
	if f.Branches[branch] {
		return fmt.Errorf("a branch named '%s' already exists", branch)
	}
	f.Branches[branch] = true
	f.Current = branch
	return nil
}

func (f *FakeGateway) Pull(_ context.Context, remote, branch string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.record("Pull", remote, branch)
}

func (f *FakeGateway) PushNew(_ context.Context, remote, branch string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("PushNew", remote, branch); err != nil {
		return err
	}
	f.RemoteBranches[branch] = true
	f.Upstreams[branch] = remote
	return nil
}

func (f *FakeGateway) Push(_ context.Context, remote, branch string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("Push", remote, branch); err != nil {
		return err
	}
	f.RemoteBranches[branch] = true
	return nil
}

func (f *FakeGateway) PushTag(_ context.Context, remote, tag string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.record("PushTag", remote, tag)
}

func (f *FakeGateway) DeleteRemoteBranch(_ context.Context, remote, branch string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("DeleteRemoteBranch", remote, branch); err != nil {
		return err
	}
	delete(f.RemoteBranches, branch)
	return nil
}

func (f *FakeGateway) FetchPrune(_ context.Context, remote string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.record("FetchPrune", remote)
}

func (f *FakeGateway) Merge(_ context.Context, source string, noFastForward bool, message string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	mode := "ff"
	if noFastForward {
		mode = "no-ff"
	}
	return f.record("Merge", source, mode, message)
}

func (f *FakeGateway) Tag(_ context.Context, name, message string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("Tag", name, message); err != nil {
		return err
	}
	f.Tags[name] = true
	return nil
}

func (f *FakeGateway) DeleteLocalBranch(_ context.Context, name string, force bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	flag := "safe"
	if force {
		flag = "force"
	}
	if err := f.record("DeleteLocalBranch", name, flag); err != nil {
		return err
	}
	if err := f.DeleteErrors[name]; err != nil {
		return err
	}
	delete(f.Branches, name)
	return nil
}

func (f *FakeGateway) StageAndCommit(_ context.Context, paths []string, message string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.record("StageAndCommit", strings.Join(paths, ","), message)
}

// WorkDir returns the fake working directory
func (f *FakeGateway) WorkDir() string {
	return f.Dir
}
