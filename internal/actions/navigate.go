package actions

import (
	"fmt"

	gserrors "github.com/dagjomar/gitstack/internal/errors"
	"github.com/dagjomar/gitstack/internal/output"
	"github.com/dagjomar/gitstack/internal/runtime"
	"github.com/dagjomar/gitstack/internal/stack"
)

// Direction is the navigation direction along a stack's chain
type Direction string

const (
	// DirectionPrevious moves one hop towards the stack root
	DirectionPrevious Direction = "PREVIOUS"
	// DirectionNext moves one hop towards the stack tip
	DirectionNext Direction = "NEXT"
)

// Navigate checks out the adjacent stack branch. Running off either end of
// the chain is informational, not an error: being at the first or last
// branch is a state worth reporting, not a failure.
func Navigate(ctx *runtime.Context, direction Direction) error {
	pos, err := stack.CurrentPosition(ctx.Git)
	if err != nil {
		return err
	}

	var target stack.Position
	switch direction {
	case DirectionPrevious:
		if pos.Index == 0 {
			ctx.Splog.Info("Already at the first branch of %s.", pos.Base)
			return nil
		}
		target = pos.Previous()
		if !ctx.Git.BranchExists(target.BranchName()) {
			return gserrors.NewBranchNotFoundError(target.BranchName())
		}
	case DirectionNext:
		target = pos.Next()
		if !ctx.Git.BranchExists(target.BranchName()) {
			ctx.Splog.Info("No next branch. %s is the tip of %s.", pos.BranchName(), pos.Base)
			return nil
		}
	default:
		return fmt.Errorf("invalid direction: %s", direction)
	}

	if err := ctx.Git.Checkout(ctx.Context, target.BranchName()); err != nil {
		return fmt.Errorf("failed to checkout branch %s: %w", target.BranchName(), err)
	}

	ctx.Splog.Info("Checked out %s.", output.ColorBranchName(target.BranchName(), true))
	return nil
}
