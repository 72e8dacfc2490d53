package cli

import (
	"github.com/spf13/cobra"

	"github.com/dagjomar/gitstack/internal/actions"
	"github.com/dagjomar/gitstack/internal/cli/helpers"
	"github.com/dagjomar/gitstack/internal/runtime"
)

// newStatusCmd creates the status command
func newStatusCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "status [stack]",
		Short: "Show a stack's branches and whether its chain is intact",
		Long: `Show the ordered branch list of a stack and the integrity verdict:
healthy, or the first branch that needs a rebase onto its chain parent.

With no argument the current branch's stack is shown. Use --all to show
every stack in the repository.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				opts := actions.StatusOptions{All: all}
				if len(args) > 0 {
					opts.Base = args[0]
				}
				return actions.Status(ctx, opts)
			})
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Show every stack in the repository")

	return cmd
}
