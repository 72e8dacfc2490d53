package actions

import (
	"fmt"

	"github.com/dagjomar/gitstack/internal/config"
	gserrors "github.com/dagjomar/gitstack/internal/errors"
	"github.com/dagjomar/gitstack/internal/git"
	"github.com/dagjomar/gitstack/internal/runtime"
)

// Continue resumes a repair that stopped on a rebase conflict: it continues
// the in-progress rebase, then replays the rest of the chain exactly as the
// interrupted repair would have.
func Continue(ctx *runtime.Context) error {
	state, err := config.GetContinuationState(ctx.RepoRoot)
	if err != nil {
		return fmt.Errorf("nothing to continue: %w", err)
	}

	if ctx.Git.IsRebaseInProgress(ctx.Context) {
		result, err := ctx.Git.RebaseContinue(ctx.Context)
		if err != nil {
			return err
		}
		switch result {
		case git.RebaseConflict:
			done, loopErr := resolveConflictLoop(ctx, state.RebasingBranch, state.SkipEmpty)
			if loopErr != nil {
				return loopErr
			}
			if !done {
				ctx.Splog.Warn("Rebase of %s hit another conflict.", state.RebasingBranch)
				ctx.Splog.Info("Resolve it and run 'gitstack continue' again, or 'gitstack abort'.")
				return gserrors.NewRebaseConflictError(state.RebasingBranch, "resolve and run 'gitstack continue'")
			}
		case git.RebaseDone:
			if err := ctx.Git.FinishRebase(ctx.Context, state.RebasingBranch); err != nil {
				return err
			}
		case git.RebaseFailed:
			return fmt.Errorf("rebase continue on %s: %w", state.RebasingBranch, gserrors.ErrRepairFailed)
		}
		ctx.Splog.Info("Rebased %s.", state.RebasingBranch)
	} else if ctx.Git.BranchExists(state.RebasingBranch) {
		// The user finished the rebase by hand; carry on with the rest
		ctx.Splog.Debug("No rebase in progress; resuming after %s.", state.RebasingBranch)
	}

	// Rebuild the remaining steps: each waiting branch goes onto the one
	// before it, replaying what follows that branch's pre-repair tip.
	steps := make([]rebaseStep, 0, len(state.RemainingBranches))
	prev := state.RebasingBranch
	for _, name := range state.RemainingBranches {
		steps = append(steps, rebaseStep{
			Branch:      name,
			Onto:        prev,
			OldUpstream: state.OldTips[prev],
		})
		prev = name
	}

	// The queue persists a fresh continuation if it pauses again
	if err := config.ClearContinuationState(ctx.RepoRoot); err != nil {
		return err
	}
	if err := runRebaseQueue(ctx, state.Base, steps, state.OldTips, state.OriginalBranch, state.SkipEmpty); err != nil {
		return err
	}

	restoreCheckout(ctx, state.OriginalBranch)
	return reportAfterRepair(ctx, state.Base)
}

// Abort abandons an interrupted repair: the in-progress rebase is rolled
// back to its pre-rebase state and the original checkout restored. Branches
// already moved by earlier steps of the repair stay moved; they are valid
// chain links in their own right.
func Abort(ctx *runtime.Context) error {
	state, err := config.GetContinuationState(ctx.RepoRoot)
	if err != nil {
		return fmt.Errorf("nothing to abort: %w", err)
	}

	if ctx.Git.IsRebaseInProgress(ctx.Context) {
		if err := ctx.Git.RebaseAbort(ctx.Context); err != nil {
			return err
		}
		ctx.Splog.Info("Aborted the rebase of %s.", state.RebasingBranch)
	}

	if err := config.ClearContinuationState(ctx.RepoRoot); err != nil {
		return err
	}

	restoreCheckout(ctx, state.OriginalBranch)
	ctx.Splog.Info("Repair abandoned. Run 'gitstack fix' to try again.")
	return nil
}
