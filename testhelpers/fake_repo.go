// Package testhelpers provides an in-memory git.Runner so stack discovery,
// integrity checking, repair, navigation and push can be tested against a
// fake ancestry graph without a real repository.
package testhelpers

import (
	"context"
	"fmt"
	"sort"

	"github.com/dagjomar/gitstack/internal/git"
)

// FakeRepo implements git.Runner over an in-memory commit graph.
type FakeRepo struct {
	parents  map[string][]string // commit -> parent commits
	branches map[string]string   // branch -> tip commit
	current  string
	nextID   int

	// Pushes records successful pushes in order, as "branch->remote".
	Pushes []string
	// Checkouts records every checkout in order.
	Checkouts []string

	// FailPush makes PushBranch fail for the named branches.
	FailPush map[string]bool
	// ConflictOnRebase makes the next RebaseOnto of the named branch stop
	// with a conflict. The entry is consumed: a continue or retry succeeds.
	ConflictOnRebase map[string]bool
	// EmptyStoppedChange is what StoppedChangeIsEmpty reports while a
	// rebase is paused.
	EmptyStoppedChange bool

	rebaseInProgress bool
	paused           *pausedRebase
	detachedHead     string
}

type pausedRebase struct {
	branch string
	onto   string
}

// NewFakeRepo creates a fake repository with a root commit on trunk,
// checked out.
func NewFakeRepo(trunk string) *FakeRepo {
	r := &FakeRepo{
		parents:          make(map[string][]string),
		branches:         make(map[string]string),
		FailPush:         make(map[string]bool),
		ConflictOnRebase: make(map[string]bool),
	}
	root := r.newCommit(nil)
	r.branches[trunk] = root
	r.current = trunk
	return r
}

func (r *FakeRepo) newCommit(parentCommits []string) string {
	r.nextID++
	id := fmt.Sprintf("c%d", r.nextID)
	r.parents[id] = parentCommits
	return id
}

// resolve maps a branch name, commit id or HEAD to a commit id.
func (r *FakeRepo) resolve(ref string) (string, error) {
	if ref == "HEAD" {
		if r.detachedHead != "" {
			return r.detachedHead, nil
		}
		ref = r.current
	}
	if tip, ok := r.branches[ref]; ok {
		return tip, nil
	}
	if _, ok := r.parents[ref]; ok {
		return ref, nil
	}
	return "", fmt.Errorf("unknown ref %s", ref)
}

// CommitOn adds a commit to a branch and returns its id.
func (r *FakeRepo) CommitOn(branch string) string {
	tip := r.branches[branch]
	commit := r.newCommit([]string{tip})
	r.branches[branch] = commit
	return commit
}

// CreateBranch creates a branch at the tip of another ref.
func (r *FakeRepo) CreateBranch(name, from string) {
	tip, err := r.resolve(from)
	if err != nil {
		panic(err)
	}
	r.branches[name] = tip
}

// ResetBranch moves a branch tip to another ref, discarding its history,
// the way an upstream force-push or hard reset would.
func (r *FakeRepo) ResetBranch(name, to string) {
	tip, err := r.resolve(to)
	if err != nil {
		panic(err)
	}
	r.branches[name] = tip
}

// ResetCheckouts sets the checked-out branch and clears the checkout
// history, so tests assert only the checkouts an operation performs.
func (r *FakeRepo) ResetCheckouts(branch string) {
	r.current = branch
	r.Checkouts = nil
}

// Tip returns a branch's tip commit id.
func (r *FakeRepo) Tip(branch string) string {
	return r.branches[branch]
}

// --- git.Runner implementation ---

// CurrentBranch returns the checked-out branch name.
func (r *FakeRepo) CurrentBranch() (string, error) {
	if r.current == "" {
		return "", fmt.Errorf("HEAD is not on a branch")
	}
	return r.current, nil
}

// ListBranches returns all branch names.
func (r *FakeRepo) ListBranches() ([]string, error) {
	names := make([]string, 0, len(r.branches))
	for name := range r.branches {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// BranchExists reports whether the branch exists.
func (r *FakeRepo) BranchExists(name string) bool {
	_, ok := r.branches[name]
	return ok
}

// RevParse resolves a ref to a commit id.
func (r *FakeRepo) RevParse(_ context.Context, ref string) (string, error) {
	return r.resolve(ref)
}

// IsAncestor walks the commit graph from descendant towards the roots.
func (r *FakeRepo) IsAncestor(_ context.Context, ancestor, descendant string) (bool, error) {
	ancestorCommit, err := r.resolve(ancestor)
	if err != nil {
		return false, err
	}
	descendantCommit, err := r.resolve(descendant)
	if err != nil {
		return false, err
	}

	queue := []string{descendantCommit}
	seen := make(map[string]bool)
	for len(queue) > 0 {
		commit := queue[0]
		queue = queue[1:]
		if commit == ancestorCommit {
			return true, nil
		}
		if seen[commit] {
			continue
		}
		seen[commit] = true
		queue = append(queue, r.parents[commit]...)
	}
	return false, nil
}

// DefaultRemote returns origin.
func (r *FakeRepo) DefaultRemote() string {
	return "origin"
}

// RepoRoot returns a placeholder path.
func (r *FakeRepo) RepoRoot() (string, error) {
	return "/fake", nil
}

// Checkout switches to an existing branch.
func (r *FakeRepo) Checkout(_ context.Context, branchName string) error {
	if !r.BranchExists(branchName) {
		return fmt.Errorf("branch %s does not exist", branchName)
	}
	r.current = branchName
	r.detachedHead = ""
	r.Checkouts = append(r.Checkouts, branchName)
	return nil
}

// CreateAndCheckoutBranch creates a branch at HEAD and switches to it.
func (r *FakeRepo) CreateAndCheckoutBranch(_ context.Context, branchName string) error {
	tip, err := r.resolve("HEAD")
	if err != nil {
		return err
	}
	r.branches[branchName] = tip
	r.current = branchName
	r.detachedHead = ""
	r.Checkouts = append(r.Checkouts, branchName)
	return nil
}

// DeleteBranch deletes a branch.
func (r *FakeRepo) DeleteBranch(_ context.Context, branchName string) error {
	if !r.BranchExists(branchName) {
		return fmt.Errorf("branch %s does not exist", branchName)
	}
	delete(r.branches, branchName)
	return nil
}

// RebaseOnto replays a branch onto another: its new tip becomes a fresh
// commit whose parent is the target's tip. A branch listed in
// ConflictOnRebase pauses instead, like a real conflict would.
func (r *FakeRepo) RebaseOnto(_ context.Context, branchName, onto, _ string) (git.RebaseResult, error) {
	if r.rebaseInProgress {
		return git.RebaseFailed, fmt.Errorf("rebase already in progress")
	}
	if r.ConflictOnRebase[branchName] {
		delete(r.ConflictOnRebase, branchName)
		r.rebaseInProgress = true
		r.paused = &pausedRebase{branch: branchName, onto: onto}
		return git.RebaseConflict, nil
	}

	ontoTip, err := r.resolve(onto)
	if err != nil {
		return git.RebaseFailed, err
	}
	r.branches[branchName] = r.newCommit([]string{ontoTip})
	return git.RebaseDone, nil
}

// RebaseContinue finishes the paused rebase, leaving HEAD detached at the
// rebased commit the way git does.
func (r *FakeRepo) RebaseContinue(_ context.Context) (git.RebaseResult, error) {
	if !r.rebaseInProgress {
		return git.RebaseFailed, fmt.Errorf("no rebase in progress")
	}
	ontoTip, err := r.resolve(r.paused.onto)
	if err != nil {
		return git.RebaseFailed, err
	}
	r.detachedHead = r.newCommit([]string{ontoTip})
	r.rebaseInProgress = false
	return git.RebaseDone, nil
}

// RebaseSkip drops the stopped change and finishes the rebase detached.
func (r *FakeRepo) RebaseSkip(ctx context.Context) (git.RebaseResult, error) {
	return r.RebaseContinue(ctx)
}

// RebaseAbort rolls back the paused rebase; the branch never moved.
func (r *FakeRepo) RebaseAbort(_ context.Context) error {
	if !r.rebaseInProgress {
		return fmt.Errorf("no rebase in progress")
	}
	r.rebaseInProgress = false
	r.paused = nil
	r.detachedHead = ""
	return nil
}

// FinishRebase moves the branch to the rebased commit and checks it out.
func (r *FakeRepo) FinishRebase(_ context.Context, branchName string) error {
	if r.detachedHead == "" {
		return fmt.Errorf("no detached rebase to finish")
	}
	r.branches[branchName] = r.detachedHead
	r.detachedHead = ""
	r.paused = nil
	r.current = branchName
	r.Checkouts = append(r.Checkouts, branchName)
	return nil
}

// IsRebaseInProgress reports whether a rebase is paused.
func (r *FakeRepo) IsRebaseInProgress(_ context.Context) bool {
	return r.rebaseInProgress
}

// PredictRebaseConflicts predicts from the ConflictOnRebase table.
func (r *FakeRepo) PredictRebaseConflicts(_ context.Context, branchName, _ string) (bool, error) {
	return r.ConflictOnRebase[branchName], nil
}

// StoppedChangeIsEmpty reports the configured emptiness of the stopped change.
func (r *FakeRepo) StoppedChangeIsEmpty(_ context.Context) (bool, error) {
	if !r.rebaseInProgress {
		return false, fmt.Errorf("no rebase in progress")
	}
	return r.EmptyStoppedChange, nil
}

// PushBranch records the push, or fails for branches in FailPush.
func (r *FakeRepo) PushBranch(_ context.Context, branchName, remote string, _, _ bool) error {
	if r.FailPush[branchName] {
		return fmt.Errorf("remote rejected %s", branchName)
	}
	r.Pushes = append(r.Pushes, branchName+"->"+remote)
	return nil
}
