package cli

import (
	"github.com/spf13/cobra"

	"github.com/dagjomar/gitstack/internal/actions"
	"github.com/dagjomar/gitstack/internal/cli/helpers"
	"github.com/dagjomar/gitstack/internal/runtime"
)

// newListCmd creates the list command
func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "list",
		Short:        "List every stack in the repository",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return actions.List(ctx)
			})
		},
	}
}

// newCreateCmd creates the create command
func newCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create [base]",
		Short: "Start a new stack or add the next branch to one",
		Long: `Create <base>-0 from the current HEAD when no stack named <base> exists,
or the next index on top of the stack's tip when one does. With no
argument, extend the current branch's stack.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				base := ""
				if len(args) > 0 {
					base = args[0]
				}
				return actions.Create(ctx, base)
			})
		},
	}
}
