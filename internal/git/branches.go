package git

import (
	"context"
	"fmt"
)

// Checkout checks out an existing branch
func Checkout(ctx context.Context, runner *CommandRunner, branchName string) error {
	_, err := runner.Run(ctx, "checkout", branchName)
	if err != nil {
		return fmt.Errorf("failed to checkout branch %s: %w", branchName, err)
	}
	return nil
}

// CreateAndCheckoutBranch creates and checks out a new branch
func CreateAndCheckoutBranch(ctx context.Context, runner *CommandRunner, branchName string) error {
	_, err := runner.Run(ctx, "checkout", "-b", branchName)
	if err != nil {
		return fmt.Errorf("failed to create and checkout branch %s: %w", branchName, err)
	}
	return nil
}

// DeleteBranch deletes a branch
func DeleteBranch(ctx context.Context, runner *CommandRunner, branchName string) error {
	_, err := runner.Run(ctx, "branch", "-D", branchName)
	if err != nil {
		return fmt.Errorf("failed to delete branch %s: %w", branchName, err)
	}
	return nil
}

// CheckoutDetached checks out a revision in detached HEAD state
func CheckoutDetached(ctx context.Context, runner *CommandRunner, rev string) error {
	_, err := runner.Run(ctx, "checkout", "--detach", rev)
	if err != nil {
		return fmt.Errorf("failed to checkout %s in detached state: %w", rev, err)
	}
	return nil
}

// UpdateBranchRef updates a branch reference to point to a new commit
func UpdateBranchRef(ctx context.Context, runner *CommandRunner, branchName, commitSHA string) error {
	_, err := runner.Run(ctx, "update-ref", "refs/heads/"+branchName, commitSHA)
	if err != nil {
		return fmt.Errorf("failed to update branch ref: %w", err)
	}
	return nil
}
