package github

import (
	"context"
	"fmt"
	"os"
	"regexp"

	gh "github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"
)

// remoteURLRegex extracts owner/repo from https and ssh GitHub remote URLs
var remoteURLRegex = regexp.MustCompile(`github\.com[:/]([^/]+)/([^/]+?)(?:\.git)?$`)

// RealClient implements Client against the GitHub API
type RealClient struct {
	client *gh.Client
	owner  string
	repo   string
}

// NewRealClient creates a client authenticated with GITHUB_TOKEN for the
// repository the remote URL points at.
func NewRealClient(ctx context.Context, remoteURL string) (*RealClient, error) {
	token := os.Getenv("GITHUB_TOKEN")
	if token == "" {
		token = os.Getenv("GH_TOKEN")
	}
	if token == "" {
		return nil, fmt.Errorf("no GitHub token found; set GITHUB_TOKEN")
	}

	owner, repo, err := ParseRemoteURL(remoteURL)
	if err != nil {
		return nil, err
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	httpClient := oauth2.NewClient(ctx, ts)

	return &RealClient{
		client: gh.NewClient(httpClient),
		owner:  owner,
		repo:   repo,
	}, nil
}

// ParseRemoteURL extracts owner and repo from a GitHub remote URL
func ParseRemoteURL(remoteURL string) (owner, repo string, err error) {
	matches := remoteURLRegex.FindStringSubmatch(remoteURL)
	if matches == nil {
		return "", "", fmt.Errorf("remote URL %s is not a GitHub repository", remoteURL)
	}
	return matches[1], matches[2], nil
}

// OwnerRepo returns the repository owner and name
func (c *RealClient) OwnerRepo() (string, string) {
	return c.owner, c.repo
}

// CreatePullRequest creates a new pull request
func (c *RealClient) CreatePullRequest(ctx context.Context, opts CreatePROptions) (*PullRequestInfo, error) {
	pr := &gh.NewPullRequest{
		Title: gh.String(opts.Title),
		Head:  gh.String(opts.Head),
		Base:  gh.String(opts.Base),
		Draft: gh.Bool(opts.Draft),
	}
	if opts.Body != "" {
		pr.Body = gh.String(opts.Body)
	}

	created, _, err := c.client.PullRequests.Create(ctx, c.owner, c.repo, pr)
	if err != nil {
		return nil, fmt.Errorf("failed to create pull request: %w", err)
	}

	return toPullRequestInfo(created), nil
}

// GetPullRequestByBranch returns the open pull request whose head is the
// given branch, or nil when none exists.
func (c *RealClient) GetPullRequestByBranch(ctx context.Context, branchName string) (*PullRequestInfo, error) {
	prs, _, err := c.client.PullRequests.List(ctx, c.owner, c.repo, &gh.PullRequestListOptions{
		Head:  fmt.Sprintf("%s:%s", c.owner, branchName),
		State: "open",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list pull requests for %s: %w", branchName, err)
	}
	if len(prs) == 0 {
		return nil, nil
	}
	return toPullRequestInfo(prs[0]), nil
}

func toPullRequestInfo(pr *gh.PullRequest) *PullRequestInfo {
	info := &PullRequestInfo{}
	if pr.Number != nil {
		info.Number = *pr.Number
	}
	if pr.HTMLURL != nil {
		info.HTMLURL = *pr.HTMLURL
	}
	if pr.Title != nil {
		info.Title = *pr.Title
	}
	if pr.Base != nil && pr.Base.Ref != nil {
		info.Base = *pr.Base.Ref
	}
	if pr.Head != nil && pr.Head.Ref != nil {
		info.Head = *pr.Head.Ref
	}
	return info
}
