// Package github provides the thin client gitstack uses to open review
// requests for stack branches.
package github

import (
	"context"
)

// PullRequestInfo contains information about a pull request.
// A simplified struct to avoid coupling callers to the go-github library.
type PullRequestInfo struct {
	Number  int
	HTMLURL string
	Title   string
	Base    string
	Head    string
}

// CreatePROptions are the options for creating a pull request
type CreatePROptions struct {
	Title string
	Body  string
	Head  string
	Base  string
	Draft bool
}

// Client is an interface for the review-request interactions gitstack needs
type Client interface {
	// CreatePullRequest creates a new pull request
	CreatePullRequest(ctx context.Context, opts CreatePROptions) (*PullRequestInfo, error)

	// GetPullRequestByBranch returns the open pull request for a branch,
	// or nil when none exists
	GetPullRequestByBranch(ctx context.Context, branchName string) (*PullRequestInfo, error)

	// OwnerRepo returns the repository owner and name
	OwnerRepo() (owner, repo string)
}
