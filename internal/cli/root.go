// Package cli defines gitstack's command surface.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gitstack",
		Short: "Manage chains of sequentially-dependent git branches",
		Long: `Gitstack manages stacks: chains of branches named <base>-0, <base>-1, ...
where each branch builds on the previous one. It verifies the chain's
ancestry, repairs it after upstream edits break it, navigates between
adjacent branches and pushes whole stacks.`,
		Version:       version,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newFixCmd())
	rootCmd.AddCommand(newContinueCmd())
	rootCmd.AddCommand(newAbortCmd())
	rootCmd.AddCommand(newPrevCmd())
	rootCmd.AddCommand(newNextCmd())
	rootCmd.AddCommand(newPushCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newCreateCmd())
	rootCmd.AddCommand(newSubmitCmd())

	return rootCmd
}
