package cli

import (
	"github.com/spf13/cobra"

	"github.com/dagjomar/gitstack/internal/actions"
	"github.com/dagjomar/gitstack/internal/cli/helpers"
	"github.com/dagjomar/gitstack/internal/runtime"
)

// newPushCmd creates the push command
func newPushCmd() *cobra.Command {
	var (
		remote string
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "push [stack]",
		Short: "Push every branch of a stack to the remote",
		Long: `Push every branch of a stack to the remote, in stack order, with
--force-with-lease. The first failed push stops the sequence; branches
already pushed stay pushed. You are returned to the branch you started
on whatever happens.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				opts := actions.PushOptions{Remote: remote, Force: force}
				if len(args) > 0 {
					opts.Base = args[0]
				}
				return actions.Push(ctx, opts)
			})
		},
	}

	cmd.Flags().StringVar(&remote, "remote", "", "Remote to push to (default: origin)")
	cmd.Flags().BoolVar(&force, "force", false, "Use --force instead of --force-with-lease")

	return cmd
}
