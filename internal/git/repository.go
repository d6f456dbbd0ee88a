package git

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	gferrors "gitflow.dev/gitflow/internal/errors"
)

// FindRepoRoot returns the top of the working tree containing dir
func FindRepoRoot(dir string) (string, error) {
	absPath, err := filepath.Abs(dir)
	if err != nil {
		return "", gferrors.NewNotARepositoryError(dir, err)
	}

	repo, err := openRepository(absPath)
	if err != nil {
		return "", gferrors.NewNotARepositoryError(absPath, err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		// Bare repositories have no working tree to run workflows in.
		return "", gferrors.NewNotARepositoryError(absPath, err)
	}
	return wt.Filesystem.Root(), nil
}

// CommonDir returns the git directory shared by every worktree of the
// repository rooted at repoRoot. For the main worktree this is repoRoot/.git.
func CommonDir(ctx context.Context, repoRoot string) (string, error) {
	out, err := NewCommandRunner(repoRoot, nil).Run(ctx, "rev-parse", "--git-common-dir")
	if err != nil {
		return "", err
	}
	if !filepath.IsAbs(out) {
		out = filepath.Join(repoRoot, out)
	}
	return filepath.Clean(out), nil
}

func openRepository(path string) (*gogit.Repository, error) {
	return gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
}

// open reopens the repository so every query sees the current on-disk state.
func (g *realGateway) open(op ...string) (*gogit.Repository, error) {
	repo, err := openRepository(g.WorkDir())
	if err != nil {
		return nil, queryError(op, err)
	}
	return repo, nil
}

func queryError(op []string, err error) error {
	return gferrors.NewGitCommandError("git", op, "", "", err)
}

func (g *realGateway) CurrentBranch(_ context.Context) (string, error) {
	op := []string{"symbolic-ref", "HEAD"}
	repo, err := g.open(op...)
	if err != nil {
		return "", err
	}

	// Read HEAD unresolved so an unborn branch still reports its name.
	head, err := repo.Reference(plumbing.HEAD, false)
	if err != nil {
		return "", queryError(op, err)
	}
	if head.Type() != plumbing.SymbolicReference {
		return "", nil
	}
	return head.Target().Short(), nil
}

func (g *realGateway) refExists(name plumbing.ReferenceName) (bool, error) {
	op := []string{"show-ref", "--verify", string(name)}
	repo, err := g.open(op...)
	if err != nil {
		return false, err
	}
	_, err = repo.Reference(name, false)
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		return false, nil
	}
	if err != nil {
		return false, queryError(op, err)
	}
	return true, nil
}

func (g *realGateway) BranchExists(_ context.Context, name string) (bool, error) {
	return g.refExists(plumbing.NewBranchReferenceName(name))
}

func (g *realGateway) TagExists(_ context.Context, name string) (bool, error) {
	return g.refExists(plumbing.NewTagReferenceName(name))
}

func (g *realGateway) RemoteBranchExists(_ context.Context, remote, branch string) (bool, error) {
	return g.refExists(plumbing.NewRemoteReferenceName(remote, branch))
}

func (g *realGateway) Upstream(_ context.Context, branch string) (string, string, error) {
	op := []string{"config", "--get", "branch." + branch + ".merge"}
	repo, err := g.open(op...)
	if err != nil {
		return "", "", err
	}
	cfg, err := repo.Config()
	if err != nil {
		return "", "", queryError(op, err)
	}

	b, ok := cfg.Branches[branch]
	if !ok || b.Remote == "" || !b.Merge.IsBranch() {
		return "", "", nil
	}
	return b.Remote, b.Merge.Short(), nil
}

func (g *realGateway) LocalBranches(_ context.Context) ([]string, error) {
	op := []string{"for-each-ref", "refs/heads"}
	repo, err := g.open(op...)
	if err != nil {
		return nil, err
	}

	iter, err := repo.Branches()
	if err != nil {
		return nil, queryError(op, err)
	}
	defer iter.Close()

	var names []string
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		if ref.Name().IsBranch() {
			names = append(names, ref.Name().Short())
		}
		return nil
	})
	if err != nil {
		return nil, queryError(op, err)
	}
	sort.Strings(names)
	return names, nil
}

func (g *realGateway) RecentCommits(_ context.Context, n int) ([]Commit, error) {
	op := []string{"log", "--oneline", fmt.Sprintf("-%d", n)}
	if n <= 0 {
		return []Commit{}, nil
	}
	repo, err := g.open(op...)
	if err != nil {
		return nil, err
	}

	head, err := repo.Head()
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		// No commits yet.
		return []Commit{}, nil
	}
	if err != nil {
		return nil, queryError(op, err)
	}

	iter, err := repo.Log(&gogit.LogOptions{From: head.Hash(), Order: gogit.LogOrderCommitterTime})
	if err != nil {
		return nil, queryError(op, err)
	}
	defer iter.Close()

	commits := make([]Commit, 0, n)
	for len(commits) < n {
		c, err := iter.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, queryError(op, err)
		}
		hash := c.Hash.String()
		subject, _, _ := strings.Cut(strings.TrimSpace(c.Message), "\n")
		commits = append(commits, Commit{
			Hash:      hash,
			ShortHash: hash[:7],
			Subject:   subject,
		})
	}
	return commits, nil
}
