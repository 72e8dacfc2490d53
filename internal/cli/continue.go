package cli

import (
	"github.com/spf13/cobra"

	"github.com/dagjomar/gitstack/internal/actions"
	"github.com/dagjomar/gitstack/internal/cli/helpers"
	"github.com/dagjomar/gitstack/internal/runtime"
)

// newContinueCmd creates the continue command
func newContinueCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "continue",
		Short: "Resume a repair halted by a rebase conflict",
		Long: `Resume the most recent 'gitstack fix' that stopped on a rebase conflict.
Resolve the conflicts and stage the files first; gitstack then finishes
the rebase and moves the rest of the chain.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return actions.Continue(ctx)
			})
		},
	}
}

// newAbortCmd creates the abort command
func newAbortCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "abort",
		Short: "Abandon a repair halted by a rebase conflict",
		Long: `Abort the in-progress rebase of a halted 'gitstack fix', restoring the
branch to its pre-rebase state and returning to the original checkout.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return actions.Abort(ctx)
			})
		},
	}
}
