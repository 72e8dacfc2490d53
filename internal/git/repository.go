package git

import (
	"fmt"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// Repository wraps a go-git repository for read-side queries.
type Repository struct {
	*gogit.Repository
	path string
}

// OpenRepository opens the git repository containing path.
func OpenRepository(path string) (*Repository, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	repo, err := gogit.PlainOpenWithOptions(absPath, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}

	// Resolve the actual worktree root so shelled-out commands run there
	root := absPath
	if wt, err := repo.Worktree(); err == nil {
		root = wt.Filesystem.Root()
	}

	return &Repository{
		Repository: repo,
		path:       root,
	}, nil
}

// Root returns the root directory of the repository worktree.
func (r *Repository) Root() string {
	return r.path
}

// BranchNames returns all local branch names.
func (r *Repository) BranchNames() ([]string, error) {
	branches, err := r.Branches()
	if err != nil {
		return nil, fmt.Errorf("failed to get branches: %w", err)
	}

	var names []string
	err = branches.ForEach(func(ref *plumbing.Reference) error {
		if ref.Name().IsBranch() {
			names = append(names, ref.Name().Short())
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate branches: %w", err)
	}

	return names, nil
}

// CurrentBranch returns the currently checked-out branch name.
func (r *Repository) CurrentBranch() (string, error) {
	head, err := r.Head()
	if err != nil {
		return "", fmt.Errorf("failed to get HEAD: %w", err)
	}

	if !head.Name().IsBranch() {
		return "", fmt.Errorf("HEAD is not on a branch")
	}

	return head.Name().Short(), nil
}

// BranchExists reports whether a local branch with the given name exists.
func (r *Repository) BranchExists(name string) bool {
	_, err := r.Reference(plumbing.NewBranchReferenceName(name), true)
	return err == nil
}

// IsAncestor checks if the first ref is an ancestor of the second ref.
func (r *Repository) IsAncestor(ancestor, descendant string) (bool, error) {
	ancestorHash, err := r.resolveRefHash(ancestor)
	if err != nil {
		return false, fmt.Errorf("failed to resolve ancestor ref: %w", err)
	}

	descendantHash, err := r.resolveRefHash(descendant)
	if err != nil {
		return false, fmt.Errorf("failed to resolve descendant ref: %w", err)
	}

	// A commit is considered its own ancestor
	if ancestorHash == descendantHash {
		return true, nil
	}

	ancestorCommit, err := r.CommitObject(ancestorHash)
	if err != nil {
		return false, fmt.Errorf("failed to get ancestor commit: %w", err)
	}

	descendantCommit, err := r.CommitObject(descendantHash)
	if err != nil {
		return false, fmt.Errorf("failed to get descendant commit: %w", err)
	}

	return ancestorCommit.IsAncestor(descendantCommit)
}

// DefaultRemote returns "origin" if it exists, otherwise the first remote,
// otherwise "origin" as a last resort.
func (r *Repository) DefaultRemote() string {
	remotes, err := r.Remotes()
	if err != nil || len(remotes) == 0 {
		return "origin"
	}
	for _, remote := range remotes {
		if remote.Config().Name == "origin" {
			return "origin"
		}
	}
	return remotes[0].Config().Name
}

// RemoteURL returns the first URL configured for the named remote.
func (r *Repository) RemoteURL(name string) (string, error) {
	remote, err := r.Remote(name)
	if err != nil {
		return "", fmt.Errorf("failed to get remote %s: %w", name, err)
	}
	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", fmt.Errorf("remote %s has no URL", name)
	}
	return urls[0], nil
}

// resolveRefHash resolves a branch name, ref name or SHA to a commit hash.
func (r *Repository) resolveRefHash(name string) (plumbing.Hash, error) {
	// Try as a branch first
	if ref, err := r.Reference(plumbing.NewBranchReferenceName(name), true); err == nil {
		return ref.Hash(), nil
	}
	// Then as a full ref name
	if ref, err := r.Reference(plumbing.ReferenceName(name), true); err == nil {
		return ref.Hash(), nil
	}
	// Finally as a revision (SHA, HEAD, etc)
	hash, err := r.ResolveRevision(plumbing.Revision(name))
	if err != nil {
		return plumbing.ZeroHash, err
	}
	return *hash, nil
}
