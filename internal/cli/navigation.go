package cli

import (
	"github.com/spf13/cobra"

	"github.com/dagjomar/gitstack/internal/actions"
	"github.com/dagjomar/gitstack/internal/cli/helpers"
	"github.com/dagjomar/gitstack/internal/runtime"
)

// newPrevCmd creates the prev command
func newPrevCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prev",
		Short: "Switch to the previous branch in the stack",
		Long: `Switch to the branch one position closer to the stack root. On the
first branch this reports the position and stays put.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return actions.Navigate(ctx, actions.DirectionPrevious)
			})
		},
	}
}

// newNextCmd creates the next command
func newNextCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "next",
		Short: "Switch to the next branch in the stack",
		Long: `Switch to the branch one position closer to the stack tip. On the
last branch this reports the position and stays put.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return actions.Navigate(ctx, actions.DirectionNext)
			})
		},
	}
}
