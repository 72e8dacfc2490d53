package git

import (
	"context"
	"errors"
	"fmt"
	"strings"

	gserrors "github.com/dagjomar/gitstack/internal/errors"
)

// PushBranch pushes a branch to a remote.
// If forceWithLease is true, uses --force-with-lease (safer).
// If force is true, uses --force (overwrites remote unconditionally).
func PushBranch(ctx context.Context, runner *CommandRunner, branchName, remote string, force, forceWithLease bool) error {
	args := []string{"push", "-u", remote}

	if force {
		args = append(args, "--force")
	} else if forceWithLease {
		args = append(args, "--force-with-lease")
	}

	args = append(args, branchName)

	_, err := runner.Run(ctx, args...)
	if err != nil {
		var cmdErr *gserrors.GitCommandError
		if errors.As(err, &cmdErr) {
			combined := cmdErr.Stdout + cmdErr.Stderr
			if strings.Contains(combined, "stale info") || strings.Contains(combined, "forced update") {
				return fmt.Errorf("force-with-lease push of %s rejected because the remote branch changed externally; re-run with --force to override: %w", branchName, err)
			}
		}
		return fmt.Errorf("failed to push branch %s: %w", branchName, err)
	}

	return nil
}
