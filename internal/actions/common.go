// Package actions implements the operations behind gitstack's commands:
// integrity reporting, chain repair, navigation and bulk push.
package actions

import (
	"github.com/dagjomar/gitstack/internal/runtime"
	"github.com/dagjomar/gitstack/internal/stack"
)

// resolveStack loads the stack for an explicit base name, or the stack
// containing the checked-out branch when base is empty.
func resolveStack(ctx *runtime.Context, base string) (*stack.Stack, error) {
	if base != "" {
		return stack.Load(ctx.Git, base)
	}
	return stack.LoadCurrent(ctx.Git)
}

// recordCheckout captures the checked-out branch name so an operation can
// restore it on every exit path. Returns "" when HEAD is not on a branch.
func recordCheckout(ctx *runtime.Context) string {
	name, err := ctx.Git.CurrentBranch()
	if err != nil {
		return ""
	}
	return name
}

// restoreCheckout checks the recorded branch back out. Checking out by name
// lands on the branch's current tip, so a branch that was moved by a repair
// restores to its updated equivalent.
func restoreCheckout(ctx *runtime.Context, branchName string) {
	if branchName == "" {
		return
	}
	current, err := ctx.Git.CurrentBranch()
	if err == nil && current == branchName {
		return
	}
	if err := ctx.Git.Checkout(ctx.Context, branchName); err != nil {
		ctx.Splog.Warn("Could not restore checkout of %s: %v", branchName, err)
	}
}
