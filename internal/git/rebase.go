package git

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// RebaseOnto rebases branchName onto the given branch, replaying the commits
// after oldUpstream. For a plain rebase pass the target itself as oldUpstream.
//
// The rebase runs on a detached HEAD so the branch ref is only moved once the
// rebase completes. On a clean finish the branch ref is updated and the
// previous checkout restored. On a conflict the rebase is left in progress
// for the caller to resolve, skip or abort. Any other failure aborts the
// rebase and restores the previous checkout.
func RebaseOnto(ctx context.Context, runner *CommandRunner, branchName, onto, oldUpstream string) (RebaseResult, error) {
	// Save current branch or detached HEAD to restore afterward
	currentBranch, err := runner.Run(ctx, "symbolic-ref", "--quiet", "--short", "HEAD")
	var currentRev string
	if err != nil {
		currentBranch = ""
		currentRev, _ = runner.Run(ctx, "rev-parse", "HEAD")
	}

	branchRev, err := runner.Run(ctx, "rev-parse", branchName)
	if err != nil {
		return RebaseFailed, fmt.Errorf("failed to get revision for %s: %w", branchName, err)
	}

	_, err = runner.Run(ctx, "rebase", "--onto", onto, oldUpstream, branchRev)
	if err != nil {
		if IsRebaseInProgress(ctx, runner) {
			return RebaseConflict, nil
		}
		// Rebase failed outright; make sure nothing is left half-applied
		_, _ = runner.Run(ctx, "rebase", "--abort")
		restoreCheckout(ctx, runner, currentBranch, currentRev)
		return RebaseFailed, fmt.Errorf("rebase of %s onto %s failed: %w", branchName, onto, err)
	}

	if err := finishDetachedRebase(ctx, runner, branchName); err != nil {
		return RebaseFailed, err
	}

	restoreCheckout(ctx, runner, currentBranch, currentRev)
	return RebaseDone, nil
}

// finishDetachedRebase moves the branch ref to the rebased HEAD.
func finishDetachedRebase(ctx context.Context, runner *CommandRunner, branchName string) error {
	newRev, err := runner.Run(ctx, "rev-parse", "HEAD")
	if err != nil {
		return fmt.Errorf("failed to get new revision after rebase: %w", err)
	}
	if err := UpdateBranchRef(ctx, runner, branchName, newRev); err != nil {
		return err
	}
	return nil
}

// CompleteDetachedRebase finalizes a rebase that was continued or skipped to
// completion while detached: it moves branchName to HEAD and checks it out.
func CompleteDetachedRebase(ctx context.Context, runner *CommandRunner, branchName string) error {
	if err := finishDetachedRebase(ctx, runner, branchName); err != nil {
		return err
	}
	return Checkout(ctx, runner, branchName)
}

func restoreCheckout(ctx context.Context, runner *CommandRunner, branch, rev string) {
	if branch != "" {
		if err := Checkout(ctx, runner, branch); err != nil {
			_ = CheckoutDetached(ctx, runner, branch)
		}
	} else if rev != "" {
		_ = CheckoutDetached(ctx, runner, rev)
	}
}

// IsRebaseInProgress checks if a rebase is currently in progress
func IsRebaseInProgress(ctx context.Context, runner *CommandRunner) bool {
	output, err := runner.Run(ctx, "rev-parse", "--absolute-git-dir")
	if err != nil {
		return false
	}

	// A rebase leaves either rebase-merge (interactive/merge backend) or
	// rebase-apply (am backend) inside the git dir
	if _, err := os.Stat(filepath.Join(output, "rebase-merge")); err == nil {
		return true
	}
	if _, err := os.Stat(filepath.Join(output, "rebase-apply")); err == nil {
		return true
	}
	return false
}

// RebaseContinue continues an in-progress rebase
func RebaseContinue(ctx context.Context, runner *CommandRunner) (RebaseResult, error) {
	_, err := runner.Run(ctx, "-c", "core.editor=true", "rebase", "--continue")
	if err != nil {
		if IsRebaseInProgress(ctx, runner) {
			return RebaseConflict, nil
		}
		return RebaseFailed, fmt.Errorf("rebase continue failed: %w", err)
	}
	return RebaseDone, nil
}

// RebaseSkip skips the current change of an in-progress rebase
func RebaseSkip(ctx context.Context, runner *CommandRunner) (RebaseResult, error) {
	_, err := runner.Run(ctx, "rebase", "--skip")
	if err != nil {
		if IsRebaseInProgress(ctx, runner) {
			return RebaseConflict, nil
		}
		return RebaseFailed, fmt.Errorf("rebase skip failed: %w", err)
	}
	return RebaseDone, nil
}

// RebaseAbort aborts an in-progress rebase
func RebaseAbort(ctx context.Context, runner *CommandRunner) error {
	_, err := runner.Run(ctx, "rebase", "--abort")
	if err != nil {
		return fmt.Errorf("rebase abort failed: %w", err)
	}
	return nil
}

// PredictRebaseConflicts reports whether rebasing branchName onto the given
// branch would hit conflicts, without touching the working tree. It uses
// git merge-tree, which merges in memory and exits 1 on conflicts.
func PredictRebaseConflicts(ctx context.Context, runner *CommandRunner, branchName, onto string) (bool, error) {
	_, err := runner.Run(ctx, "merge-tree", "--write-tree", onto, branchName)
	if err != nil {
		if ExitCode(err) == 1 {
			return true, nil
		}
		return false, fmt.Errorf("failed to predict conflicts for %s onto %s: %w", branchName, onto, err)
	}
	return false, nil
}

// StoppedChangeIsEmpty reports whether the change an in-progress rebase
// stopped on is empty: no unmerged paths and nothing staged. This is the
// state git leaves behind when a commit's content is already present
// upstream, where only 'git rebase --skip' can make progress.
func StoppedChangeIsEmpty(ctx context.Context, runner *CommandRunner) (bool, error) {
	unmerged, err := runner.RunLines(ctx, "diff", "--name-only", "--diff-filter=U")
	if err != nil {
		return false, fmt.Errorf("failed to list unmerged files: %w", err)
	}
	if len(unmerged) > 0 {
		return false, nil
	}

	_, err = runner.Run(ctx, "diff", "--cached", "--quiet")
	if err != nil {
		if ExitCode(err) == 1 {
			return false, nil
		}
		return false, fmt.Errorf("failed to check staged changes: %w", err)
	}
	return true, nil
}
