package actions

import (
	"fmt"

	"github.com/dagjomar/gitstack/internal/config"
	gserrors "github.com/dagjomar/gitstack/internal/errors"
	"github.com/dagjomar/gitstack/internal/git"
	"github.com/dagjomar/gitstack/internal/output"
	"github.com/dagjomar/gitstack/internal/runtime"
	"github.com/dagjomar/gitstack/internal/stack"
)

// RepairOptions contains options for the repair operation
type RepairOptions struct {
	// Base selects the stack; empty means the current branch's stack
	Base string

	// SkipEmpty allows auto-skipping a conflicting change that turns out
	// to be empty (its content already exists upstream). Every skip is
	// logged; without this flag an interactive session is asked first.
	SkipEmpty bool
}

// rebaseStep is one branch move in a chain-preserving repair: rebase Branch
// onto Onto, replaying the commits after OldUpstream.
type rebaseStep struct {
	Branch      string
	Onto        string
	OldUpstream string
}

// Repair fixes the first broken chain link of a stack. It is an idempotent
// no-op on a healthy stack. One link per invocation: the checker's earliest
// break is authoritative, and fixing it can change the validity of every
// later link, so the caller re-invokes until healthy.
func Repair(ctx *runtime.Context, opts RepairOptions) error {
	if config.HasContinuationState(ctx.RepoRoot) {
		return fmt.Errorf("a repair is already in progress; run 'gitstack continue' or 'gitstack abort' first")
	}

	st, err := resolveStack(ctx, opts.Base)
	if err != nil {
		return err
	}

	report, err := stack.Check(ctx.Context, ctx.Git, st)
	if err != nil {
		return err
	}
	if report.Healthy {
		ctx.Splog.Info("Stack %s is healthy. Nothing to repair.", st.Base)
		return nil
	}

	if report.TrunkBroken {
		ctx.Splog.Info("%s has come loose from %s. Rebasing the whole stack back onto it.",
			output.ColorBranchName(report.Child, false), report.Parent)
	} else {
		ctx.Splog.Info("%s no longer descends from %s. Rebasing it (and the chain above it) back on.",
			output.ColorBranchName(report.Child, false), output.ColorBranchName(report.Parent, false))
	}

	original := recordCheckout(ctx)

	steps, oldTips, err := planRepair(ctx, st, report)
	if err != nil {
		return err
	}

	// Step one of the plan is the broken child itself; check it out so the
	// repair happens from the branch being fixed, as a manual rebase would.
	if err := ctx.Git.Checkout(ctx.Context, report.Child); err != nil {
		return fmt.Errorf("failed to checkout %s: %w", report.Child, err)
	}

	conflicts, err := ctx.Git.PredictRebaseConflicts(ctx.Context, report.Child, report.Parent)
	if err != nil {
		ctx.Splog.Debug("Conflict prediction failed: %v", err)
	} else if conflicts {
		ctx.Splog.Warn("Rebasing %s onto %s will hit conflicts. The rebase will pause for you to resolve them.",
			report.Child, report.Parent)
	}

	if err := runRebaseQueue(ctx, st.Base, steps, oldTips, original, opts.SkipEmpty); err != nil {
		return err
	}

	restoreCheckout(ctx, original)
	return reportAfterRepair(ctx, st.Base)
}

// planRepair builds the chain-preserving rebase queue for a broken link:
// the broken child moves onto its required parent, and every stack branch
// above the child whose tip descends from the child's old tip moves with
// it, each onto the previous branch's rebased tip. Branches above a second,
// independent break are left alone for a later invocation.
func planRepair(ctx *runtime.Context, st *stack.Stack, report stack.Report) ([]rebaseStep, map[string]string, error) {
	start := st.IndexOf(report.Child)
	if start < 0 {
		return nil, nil, gserrors.NewBranchNotFoundError(report.Child)
	}

	// Pre-rebase tips, recorded before anything moves: each downstream
	// rebase replays the commits after its parent's old tip.
	oldTips := make(map[string]string)
	for i := start; i < len(st.Branches); i++ {
		name := st.Branches[i].Name
		tip, err := ctx.Git.RevParse(ctx.Context, name)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to resolve %s: %w", name, err)
		}
		oldTips[name] = tip
	}

	steps := []rebaseStep{{
		Branch: report.Child,
		Onto:   report.Parent,
		// Replaying everything the child has beyond the target re-roots
		// the whole branch, whatever state upstream edits left it in.
		OldUpstream: report.Parent,
	}}

	prev := report.Child
	for i := start + 1; i < len(st.Branches); i++ {
		name := st.Branches[i].Name
		descends, err := ctx.Git.IsAncestor(ctx.Context, oldTips[prev], name)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to check ancestry of %s: %w", name, err)
		}
		if !descends {
			break
		}
		steps = append(steps, rebaseStep{
			Branch:      name,
			Onto:        prev,
			OldUpstream: oldTips[prev],
		})
		prev = name
	}

	return steps, oldTips, nil
}

// runRebaseQueue executes rebase steps in order. On a conflict it persists
// a continuation for 'gitstack continue'/'gitstack abort' and returns an
// error satisfying errors.Is(err, ErrConflictUnresolved). On an outright
// rebase failure the rebase has already been aborted; the original checkout
// is restored and the returned error satisfies ErrRepairFailed.
func runRebaseQueue(ctx *runtime.Context, base string, steps []rebaseStep, oldTips map[string]string, original string, skipEmpty bool) error {
	for i, step := range steps {
		result, err := ctx.Git.RebaseOnto(ctx.Context, step.Branch, step.Onto, step.OldUpstream)

		switch result {
		case git.RebaseDone:
			ctx.Splog.Info("Rebased %s onto %s.",
				output.ColorBranchName(step.Branch, false), output.ColorBranchName(step.Onto, false))

		case git.RebaseConflict:
			done, pauseErr := resolveConflictLoop(ctx, step.Branch, skipEmpty)
			if pauseErr != nil {
				return pauseErr
			}
			if !done {
				return pauseRepair(ctx, base, steps[i+1:], step.Branch, oldTips, original, skipEmpty)
			}
			ctx.Splog.Info("Rebased %s onto %s.",
				output.ColorBranchName(step.Branch, false), output.ColorBranchName(step.Onto, false))

		case git.RebaseFailed:
			restoreCheckout(ctx, original)
			return fmt.Errorf("rebasing %s onto %s: %v: %w", step.Branch, step.Onto, err, gserrors.ErrRepairFailed)
		}
	}
	return nil
}

// resolveConflictLoop handles a rebase that stopped on a conflict. Empty
// stopped changes are skipped when allowed, repeatedly, since a chain of
// already-upstream commits conflicts one at a time. Returns done=true when
// skipping carried the rebase to completion (the branch ref is then
// finalized), done=false when a real conflict needs the user.
func resolveConflictLoop(ctx *runtime.Context, branch string, skipEmpty bool) (done bool, err error) {
	for {
		empty, err := ctx.Git.StoppedChangeIsEmpty(ctx.Context)
		if err != nil {
			return false, err
		}
		if !empty {
			return false, nil
		}

		allowed, err := allowEmptySkip(ctx, branch, skipEmpty)
		if err != nil {
			return false, err
		}
		if !allowed {
			return false, nil
		}

		ctx.Splog.Warn("Skipping empty change while rebasing %s (its content already exists upstream).", branch)
		result, err := ctx.Git.RebaseSkip(ctx.Context)
		if err != nil {
			return false, err
		}
		switch result {
		case git.RebaseDone:
			if err := ctx.Git.FinishRebase(ctx.Context, branch); err != nil {
				return false, err
			}
			return true, nil
		case git.RebaseConflict:
			continue
		case git.RebaseFailed:
			return false, fmt.Errorf("rebase skip on %s: %w", branch, gserrors.ErrRepairFailed)
		}
	}
}

// pauseRepair persists the interrupted repair and reports the conflict.
func pauseRepair(ctx *runtime.Context, base string, remaining []rebaseStep, branch string, oldTips map[string]string, original string, skipEmpty bool) error {
	remainingNames := make([]string, len(remaining))
	for i, s := range remaining {
		remainingNames[i] = s.Branch
	}

	state := &config.ContinuationState{
		Base:              base,
		RebasingBranch:    branch,
		RemainingBranches: remainingNames,
		OldTips:           oldTips,
		OriginalBranch:    original,
		SkipEmpty:         skipEmpty,
	}
	if err := config.PersistContinuationState(ctx.RepoRoot, state); err != nil {
		return fmt.Errorf("failed to persist continuation: %w", err)
	}

	ctx.Splog.Warn("Rebase of %s stopped on a conflict.", branch)
	ctx.Splog.Info("Resolve the conflicts and stage the files, then run 'gitstack continue'.")
	ctx.Splog.Info("Or run 'gitstack abort' to undo the repair.")
	return gserrors.NewRebaseConflictError(branch, "resolve and run 'gitstack continue'")
}

// reportAfterRepair re-checks the stack and tells the user where it stands.
// Repair fixes one link per invocation, so a stack with several breaks
// needs repeated runs.
func reportAfterRepair(ctx *runtime.Context, base string) error {
	st, err := stack.Load(ctx.Git, base)
	if err != nil {
		return err
	}
	report, err := stack.Check(ctx.Context, ctx.Git, st)
	if err != nil {
		return err
	}
	if report.Healthy {
		ctx.Splog.Info("Stack %s is healthy.", base)
		return nil
	}
	ctx.Splog.Warn("Stack %s still has a broken link: %s needs rebase onto %s. Run 'gitstack fix' again.",
		base, report.Child, report.Parent)
	return nil
}
