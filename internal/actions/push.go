package actions

import (
	gserrors "github.com/dagjomar/gitstack/internal/errors"
	"github.com/dagjomar/gitstack/internal/output"
	"github.com/dagjomar/gitstack/internal/runtime"
)

// PushOptions contains options for the bulk push operation
type PushOptions struct {
	// Base selects the stack; empty means the current branch's stack
	Base string

	// Remote overrides the default remote
	Remote string

	// Force uses --force instead of --force-with-lease
	Force bool
}

// Push force-pushes every branch of a stack to the remote, in ascending
// index order. The first failed push stops the sequence: later branches are
// not attempted, and branches pushed before the failure stay pushed (remote
// state is not transactional across branches). The original checkout is
// restored on every exit path.
func Push(ctx *runtime.Context, opts PushOptions) error {
	st, err := resolveStack(ctx, opts.Base)
	if err != nil {
		return err
	}

	remote := opts.Remote
	if remote == "" {
		remote = ctx.Git.DefaultRemote()
	}

	original := recordCheckout(ctx)
	defer restoreCheckout(ctx, original)

	for _, branch := range st.Branches {
		ctx.Splog.Info("Pushing %s to %s...", output.ColorBranchName(branch.Name, branch.Name == original), remote)
		if err := ctx.Git.PushBranch(ctx.Context, branch.Name, remote, opts.Force, !opts.Force); err != nil {
			ctx.Splog.Error("Push of %s failed. Remaining branches were not pushed; branches pushed before it remain on the remote.", branch.Name)
			return gserrors.NewPushFailedError(branch.Name, remote, err)
		}
	}

	ctx.Splog.Info("Pushed %d branch(es) of %s to %s.", len(st.Branches), st.Base, remote)
	return nil
}
