package actions

import (
	"fmt"

	"github.com/dagjomar/gitstack/internal/github"
	"github.com/dagjomar/gitstack/internal/runtime"
	"github.com/dagjomar/gitstack/internal/stack"
)

// SubmitOptions contains options for the submit operation
type SubmitOptions struct {
	Title string
	Body  string
	Draft bool
}

// ReviewTarget computes the base branch a review request for the given
// position should target: the trunk for the first branch of a stack, the
// previous stack branch otherwise.
func ReviewTarget(ctx *runtime.Context, pos stack.Position) (string, error) {
	if pos.Index == 0 {
		return stack.Trunk(ctx.Git)
	}
	return pos.Previous().BranchName(), nil
}

// Submit opens a review request for the current stack branch against its
// chain parent. The branch must already be on the remote; run
// 'gitstack push' first.
func Submit(ctx *runtime.Context, client github.Client, opts SubmitOptions) error {
	pos, err := stack.CurrentPosition(ctx.Git)
	if err != nil {
		return err
	}

	target, err := ReviewTarget(ctx, pos)
	if err != nil {
		return err
	}

	head := pos.BranchName()

	existing, err := client.GetPullRequestByBranch(ctx.Context, head)
	if err != nil {
		return err
	}
	if existing != nil {
		ctx.Splog.Info("%s already has an open pull request: %s", head, existing.HTMLURL)
		return nil
	}

	title := opts.Title
	if title == "" {
		title = head
	}

	pr, err := client.CreatePullRequest(ctx.Context, github.CreatePROptions{
		Title: title,
		Body:  opts.Body,
		Head:  head,
		Base:  target,
		Draft: opts.Draft,
	})
	if err != nil {
		return fmt.Errorf("failed to create pull request for %s: %w", head, err)
	}

	ctx.Splog.Info("Created pull request #%d for %s against %s: %s", pr.Number, head, target, pr.HTMLURL)
	return nil
}
