// Package git wraps git commands and go-git for the repository operations
// gitstack needs: branch listing, ancestry queries, checkout, rebase and push.
package git

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
	"time"

	gserrors "github.com/dagjomar/gitstack/internal/errors"
)

// DefaultCommandTimeout is the default timeout for git commands
const DefaultCommandTimeout = 5 * time.Minute

// CommandRunner handles execution of git commands
type CommandRunner struct {
	workingDir string
}

// NewCommandRunner creates a new CommandRunner
func NewCommandRunner(workingDir string) *CommandRunner {
	return &CommandRunner{workingDir: workingDir}
}

// Run executes a git command with the given context and returns trimmed output
func (r *CommandRunner) Run(ctx context.Context, args ...string) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	// If no timeout/deadline is set in the context, add the default one
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultCommandTimeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, "git", args...)
	if r.workingDir != "" {
		cmd.Dir = r.workingDir
	}
	cmd.Env = append(os.Environ(), "GIT_EDITOR=true")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", gserrors.NewGitCommandError("git", args, stdout.String(), stderr.String(), ctx.Err())
		}
		return "", gserrors.NewGitCommandError("git", args, stdout.String(), stderr.String(), err)
	}
	return strings.TrimSpace(stdout.String()), nil
}

// RunLines executes a git command and returns its output as lines
func (r *CommandRunner) RunLines(ctx context.Context, args ...string) ([]string, error) {
	output, err := r.Run(ctx, args...)
	if err != nil {
		return nil, err
	}
	if output == "" {
		return []string{}, nil
	}
	return strings.Split(output, "\n"), nil
}

// ExitCode extracts the process exit code from a command error, or -1 if the
// error did not come from a process exit.
func ExitCode(err error) int {
	var cmdErr *gserrors.GitCommandError
	if errors.As(err, &cmdErr) {
		var exitErr *exec.ExitError
		if errors.As(cmdErr.Err, &exitErr) {
			return exitErr.ExitCode()
		}
	}
	return -1
}

// RebaseResult represents the result of a rebase operation
type RebaseResult int

const (
	// RebaseDone indicates the rebase completed successfully
	RebaseDone RebaseResult = iota
	// RebaseConflict indicates the rebase stopped on a conflict and is
	// still in progress
	RebaseConflict
	// RebaseFailed indicates the rebase failed and was aborted
	RebaseFailed
)

// Runner defines the interface for the git operations gitstack performs.
// It keeps the stack model, checker and actions testable against an
// in-memory implementation.
type Runner interface {
	// Queries
	CurrentBranch() (string, error)
	ListBranches() ([]string, error)
	BranchExists(name string) bool
	RevParse(ctx context.Context, ref string) (string, error)
	IsAncestor(ctx context.Context, ancestor, descendant string) (bool, error)
	DefaultRemote() string
	RepoRoot() (string, error)

	// Checkout and branch management
	Checkout(ctx context.Context, branchName string) error
	CreateAndCheckoutBranch(ctx context.Context, branchName string) error
	DeleteBranch(ctx context.Context, branchName string) error

	// Rebase
	RebaseOnto(ctx context.Context, branchName, onto, oldUpstream string) (RebaseResult, error)
	RebaseContinue(ctx context.Context) (RebaseResult, error)
	RebaseSkip(ctx context.Context) (RebaseResult, error)
	RebaseAbort(ctx context.Context) error
	// FinishRebase moves branchName to the rebased HEAD and checks it out,
	// after a continued or skipped rebase ran to completion detached.
	FinishRebase(ctx context.Context, branchName string) error
	IsRebaseInProgress(ctx context.Context) bool
	PredictRebaseConflicts(ctx context.Context, branchName, onto string) (bool, error)
	StoppedChangeIsEmpty(ctx context.Context) (bool, error)

	// Remote operations
	PushBranch(ctx context.Context, branchName, remote string, force, forceWithLease bool) error
}

// realRunner implements Runner against an actual repository: go-git for the
// read side, shell-out for everything go-git cannot do (rebase, merge-tree,
// push negotiation).
type realRunner struct {
	repo   *Repository
	runner *CommandRunner
}

// NewRunner returns a Runner for the repository rooted at dir.
func NewRunner(dir string) (Runner, error) {
	repo, err := OpenRepository(dir)
	if err != nil {
		return nil, err
	}
	return &realRunner{
		repo:   repo,
		runner: NewCommandRunner(repo.Root()),
	}, nil
}

func (r *realRunner) CurrentBranch() (string, error) {
	return r.repo.CurrentBranch()
}

func (r *realRunner) ListBranches() ([]string, error) {
	return r.repo.BranchNames()
}

func (r *realRunner) BranchExists(name string) bool {
	return r.repo.BranchExists(name)
}

func (r *realRunner) RevParse(ctx context.Context, ref string) (string, error) {
	return r.runner.Run(ctx, "rev-parse", ref)
}

func (r *realRunner) IsAncestor(ctx context.Context, ancestor, descendant string) (bool, error) {
	return r.repo.IsAncestor(ancestor, descendant)
}

func (r *realRunner) DefaultRemote() string {
	return r.repo.DefaultRemote()
}

func (r *realRunner) RepoRoot() (string, error) {
	return r.repo.Root(), nil
}

func (r *realRunner) Checkout(ctx context.Context, branchName string) error {
	return Checkout(ctx, r.runner, branchName)
}

func (r *realRunner) CreateAndCheckoutBranch(ctx context.Context, branchName string) error {
	return CreateAndCheckoutBranch(ctx, r.runner, branchName)
}

func (r *realRunner) DeleteBranch(ctx context.Context, branchName string) error {
	return DeleteBranch(ctx, r.runner, branchName)
}

func (r *realRunner) RebaseOnto(ctx context.Context, branchName, onto, oldUpstream string) (RebaseResult, error) {
	return RebaseOnto(ctx, r.runner, branchName, onto, oldUpstream)
}

func (r *realRunner) RebaseContinue(ctx context.Context) (RebaseResult, error) {
	return RebaseContinue(ctx, r.runner)
}

func (r *realRunner) RebaseSkip(ctx context.Context) (RebaseResult, error) {
	return RebaseSkip(ctx, r.runner)
}

func (r *realRunner) RebaseAbort(ctx context.Context) error {
	return RebaseAbort(ctx, r.runner)
}

func (r *realRunner) FinishRebase(ctx context.Context, branchName string) error {
	return CompleteDetachedRebase(ctx, r.runner, branchName)
}

func (r *realRunner) IsRebaseInProgress(ctx context.Context) bool {
	return IsRebaseInProgress(ctx, r.runner)
}

func (r *realRunner) PredictRebaseConflicts(ctx context.Context, branchName, onto string) (bool, error) {
	return PredictRebaseConflicts(ctx, r.runner, branchName, onto)
}

func (r *realRunner) StoppedChangeIsEmpty(ctx context.Context) (bool, error) {
	return StoppedChangeIsEmpty(ctx, r.runner)
}

func (r *realRunner) PushBranch(ctx context.Context, branchName, remote string, force, forceWithLease bool) error {
	return PushBranch(ctx, r.runner, branchName, remote, force, forceWithLease)
}
