package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dagjomar/gitstack/internal/actions"
	"github.com/dagjomar/gitstack/internal/cli/helpers"
	"github.com/dagjomar/gitstack/internal/git"
	"github.com/dagjomar/gitstack/internal/github"
	"github.com/dagjomar/gitstack/internal/runtime"
)

// newSubmitCmd creates the submit command
func newSubmitCmd() *cobra.Command {
	var (
		title string
		body  string
		draft bool
	)

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Open a pull request for the current stack branch",
		Long: `Open a pull request for the current stack branch against its chain
parent: the trunk for <base>-0, the previous stack branch otherwise.
The branch must already be pushed; see 'gitstack push'.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				client, err := newGitHubClient(ctx)
				if err != nil {
					return err
				}
				return actions.Submit(ctx, client, actions.SubmitOptions{
					Title: title,
					Body:  body,
					Draft: draft,
				})
			})
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "Pull request title (default: the branch name)")
	cmd.Flags().StringVarP(&body, "body", "b", "", "Pull request body")
	cmd.Flags().BoolVar(&draft, "draft", false, "Open the pull request as a draft")

	return cmd
}

func newGitHubClient(ctx *runtime.Context) (github.Client, error) {
	repo, err := git.OpenRepository(ctx.RepoRoot)
	if err != nil {
		return nil, err
	}
	remoteURL, err := repo.RemoteURL(ctx.Git.DefaultRemote())
	if err != nil {
		return nil, fmt.Errorf("cannot determine the GitHub repository: %w", err)
	}
	return github.NewRealClient(ctx.Context, remoteURL)
}
