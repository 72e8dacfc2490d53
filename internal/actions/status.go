package actions

import (
	"errors"
	"fmt"

	gserrors "github.com/dagjomar/gitstack/internal/errors"
	"github.com/dagjomar/gitstack/internal/output"
	"github.com/dagjomar/gitstack/internal/runtime"
	"github.com/dagjomar/gitstack/internal/stack"
)

// StatusOptions contains options for the status operation
type StatusOptions struct {
	// Base selects a single stack; empty means the current branch's stack
	Base string

	// All reports every stack in the repository
	All bool
}

// Status prints each requested stack's ordered branch list and the
// integrity checker's verdict.
func Status(ctx *runtime.Context, opts StatusOptions) error {
	bases, err := statusBases(ctx, opts)
	if err != nil {
		return err
	}

	current := recordCheckout(ctx)

	for i, base := range bases {
		if i > 0 {
			ctx.Splog.Newline()
		}
		if err := printStack(ctx, base, current); err != nil {
			return err
		}
	}
	return nil
}

func statusBases(ctx *runtime.Context, opts StatusOptions) ([]string, error) {
	if opts.All {
		bases, err := stack.Bases(ctx.Git)
		if err != nil {
			return nil, err
		}
		if len(bases) == 0 {
			ctx.Splog.Info("No stacks found.")
		}
		return bases, nil
	}

	if opts.Base != "" {
		return []string{opts.Base}, nil
	}

	pos, err := stack.CurrentPosition(ctx.Git)
	if err != nil {
		if errors.Is(err, gserrors.ErrNotOnStackBranch) {
			return nil, fmt.Errorf("current branch is not a stack branch; name a stack or use --all: %w", err)
		}
		return nil, err
	}
	return []string{pos.Base}, nil
}

func printStack(ctx *runtime.Context, base, current string) error {
	st, err := stack.Load(ctx.Git, base)
	if err != nil {
		return err
	}

	report, err := stack.Check(ctx.Context, ctx.Git, st)
	if err != nil {
		return err
	}

	ctx.Splog.Info("Stack %s:", base)

	// Tip first, trunk last, the way git log reads
	for i := len(st.Branches) - 1; i >= 0; i-- {
		branch := st.Branches[i]
		marker := "◯"
		if branch.Name == current {
			marker = "◉"
		}
		verdict := ""
		if !report.Healthy && branch.Name == report.Child {
			verdict = "  " + output.ColorNeedsRebase(fmt.Sprintf("(needs rebase onto %s)", report.Parent))
		}
		ctx.Splog.Info("  %s %s%s", marker, output.ColorBranchName(branch.Name, branch.Name == current), verdict)
	}

	if report.Healthy {
		ctx.Splog.Info("  %s", output.ColorHealthy("healthy"))
	} else if report.TrunkBroken {
		ctx.Splog.Info("  %s", output.ColorNeedsRebase(fmt.Sprintf("needs rebase: stack is detached from trunk %s", report.Parent)))
	} else {
		ctx.Splog.Info("  %s", output.ColorNeedsRebase(fmt.Sprintf("needs rebase: %s has fallen behind %s", report.Child, report.Parent)))
	}
	return nil
}
