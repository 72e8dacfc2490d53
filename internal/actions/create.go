package actions

import (
	"errors"
	"fmt"

	gserrors "github.com/dagjomar/gitstack/internal/errors"
	"github.com/dagjomar/gitstack/internal/output"
	"github.com/dagjomar/gitstack/internal/runtime"
	"github.com/dagjomar/gitstack/internal/stack"
)

// Create starts or extends a stack. With a base name it creates <base>-0
// off the current HEAD when the stack does not exist yet, or the next index
// off the stack's tip when it does. With no argument it extends the current
// branch's stack.
func Create(ctx *runtime.Context, base string) error {
	if base == "" {
		pos, err := stack.CurrentPosition(ctx.Git)
		if err != nil {
			return err
		}
		base = pos.Base
	}

	st, err := stack.Load(ctx.Git, base)
	if err != nil {
		if !errors.Is(err, gserrors.ErrStackNotFound) {
			return err
		}
		// New stack: first branch starts where the user stands
		name := stack.Position{Base: base, Index: 0}.BranchName()
		if err := ctx.Git.CreateAndCheckoutBranch(ctx.Context, name); err != nil {
			return err
		}
		ctx.Splog.Info("Created %s.", output.ColorBranchName(name, true))
		return nil
	}

	tip := st.Tip()
	next := stack.Position{Base: base, Index: tip.Index + 1}.BranchName()

	// Branch the new index off the stack tip so the chain stays linear
	if err := ctx.Git.Checkout(ctx.Context, tip.Name); err != nil {
		return fmt.Errorf("failed to checkout %s: %w", tip.Name, err)
	}
	if err := ctx.Git.CreateAndCheckoutBranch(ctx.Context, next); err != nil {
		return err
	}

	ctx.Splog.Info("Created %s on top of %s.", output.ColorBranchName(next, true), tip.Name)
	return nil
}
