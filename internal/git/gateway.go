package git

import (
	"context"
)

// Commit is a one-line summary of a commit
type Commit struct {
	Hash      string
	ShortHash string
	Subject   string
}

// Gateway is the set of repository capabilities the workflow engine needs.
// Every call is synchronous and either succeeds or fails with an error that
// matches errors.ErrRepositoryCommandFailed.
type Gateway interface {
	// Queries
	CurrentBranch(ctx context.Context) (string, error)
	BranchExists(ctx context.Context, name string) (bool, error)
	TagExists(ctx context.Context, name string) (bool, error)
	RemoteBranchExists(ctx context.Context, remote, branch string) (bool, error)
	// Upstream returns the remote and remote branch that branch tracks, or
	// empty strings when no upstream is configured
	Upstream(ctx context.Context, branch string) (remote, remoteBranch string, err error)
	IsWorkingTreeDirty(ctx context.Context) (bool, error)
	IsMergedInto(ctx context.Context, branch, target string) (bool, error)
	LocalBranches(ctx context.Context) ([]string, error)
	RecentCommits(ctx context.Context, n int) ([]Commit, error)

	// Branch switching and creation
	Checkout(ctx context.Context, branch string) error
	CheckoutNew(ctx context.Context, branch string) error

	// Remote synchronization
	Pull(ctx context.Context, remote, branch string) error
	PushNew(ctx context.Context, remote, branch string) error
	Push(ctx context.Context, remote, branch string) error
	PushTag(ctx context.Context, remote, tag string) error
	DeleteRemoteBranch(ctx context.Context, remote, branch string) error
	FetchPrune(ctx context.Context, remote string) error

	// History
	Merge(ctx context.Context, source string, noFastForward bool, message string) error
	Tag(ctx context.Context, name, message string) error
	DeleteLocalBranch(ctx context.Context, name string, force bool) error
	StageAndCommit(ctx context.Context, paths []string, message string) error

	// WorkDir returns the root of the working tree
	WorkDir() string
}

// realGateway implements Gateway against an on-disk repository
type realGateway struct {
	runner *CommandRunner
}

// NewGateway returns a Gateway for the repository rooted at workDir
func NewGateway(workDir string, logger Logger) Gateway {
	return &realGateway{runner: NewCommandRunner(workDir, logger)}
}

func (g *realGateway) WorkDir() string {
	return g.runner.WorkingDir()
}

func (g *realGateway) IsWorkingTreeDirty(ctx context.Context) (bool, error) {
	// Refresh stat info so touched-but-unchanged files are not reported.
	_, _ = g.runner.Run(ctx, "update-index", "-q", "--refresh")

	clean, err := g.runner.runPredicate(ctx, "diff-index", "--quiet", "HEAD", "--")
	if err != nil {
		return false, err
	}
	return !clean, nil
}

func (g *realGateway) IsMergedInto(ctx context.Context, branch, target string) (bool, error) {
	return g.runner.runPredicate(ctx, "merge-base", "--is-ancestor", branch, target)
}

func (g *realGateway) Checkout(ctx context.Context, branch string) error {
	_, err := g.runner.Run(ctx, "checkout", branch)
	return err
}

func (g *realGateway) CheckoutNew(ctx context.Context, branch string) error {
	_, err := g.runner.Run(ctx, "checkout", "-b", branch)
	return err
}

func (g *realGateway) Pull(ctx context.Context, remote, branch string) error {
	_, err := g.runner.Run(ctx, "pull", "--no-rebase", remote, branch)
	return err
}

func (g *realGateway) PushNew(ctx context.Context, remote, branch string) error {
	_, err := g.runner.Run(ctx, "push", "-u", remote, branch)
	return err
}

func (g *realGateway) Push(ctx context.Context, remote, branch string) error {
	_, err := g.runner.Run(ctx, "push", remote, branch)
	return err
}

func (g *realGateway) PushTag(ctx context.Context, remote, tag string) error {
	_, err := g.runner.Run(ctx, "push", remote, "refs/tags/"+tag)
	return err
}

func (g *realGateway) DeleteRemoteBranch(ctx context.Context, remote, branch string) error {
	_, err := g.runner.Run(ctx, "push", remote, "--delete", branch)
	return err
}

func (g *realGateway) FetchPrune(ctx context.Context, remote string) error {
	_, err := g.runner.Run(ctx, "fetch", "--prune", remote)
	return err
}

func (g *realGateway) Merge(ctx context.Context, source string, noFastForward bool, message string) error {
	args := []string{"merge"}
	if noFastForward {
		args = append(args, "--no-ff")
	}
	args = append(args, source, "-m", message)
	_, err := g.runner.Run(ctx, args...)
	return err
}

func (g *realGateway) Tag(ctx context.Context, name, message string) error {
	_, err := g.runner.Run(ctx, "tag", "-a", name, "-m", message)
	return err
}

func (g *realGateway) DeleteLocalBranch(ctx context.Context, name string, force bool) error {
	flag := "-d"
	if force {
		flag = "-D"
	}
	_, err := g.runner.Run(ctx, "branch", flag, name)
	return err
}

func (g *realGateway) StageAndCommit(ctx context.Context, paths []string, message string) error {
	if _, err := g.runner.Run(ctx, append([]string{"add", "--"}, paths...)...); err != nil {
		return err
	}
	args := append([]string{"commit", "-m", message, "--"}, paths...)
	_, err := g.runner.Run(ctx, args...)
	return err
}
