package cli

import (
	"github.com/spf13/cobra"

	"github.com/dagjomar/gitstack/internal/actions"
	"github.com/dagjomar/gitstack/internal/cli/helpers"
	"github.com/dagjomar/gitstack/internal/runtime"
)

// newFixCmd creates the fix command
func newFixCmd() *cobra.Command {
	var skipEmpty bool

	cmd := &cobra.Command{
		Use:   "fix [stack]",
		Short: "Repair the first broken chain link of a stack",
		Long: `Repair the first broken chain link of a stack by rebasing the broken
branch onto its required parent, carrying every branch stacked above it
along so the chain stays intact.

One link is repaired per invocation; a stack broken in several places
needs repeated runs. A rebase that hits conflicts pauses: resolve them
and run 'gitstack continue', or 'gitstack abort' to roll back.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				opts := actions.RepairOptions{SkipEmpty: skipEmpty}
				if len(args) > 0 {
					opts.Base = args[0]
				}
				return actions.Repair(ctx, opts)
			})
		},
	}

	cmd.Flags().BoolVar(&skipEmpty, "skip-empty", false, "Skip conflicting changes whose content already exists upstream (each skip is logged)")

	return cmd
}
