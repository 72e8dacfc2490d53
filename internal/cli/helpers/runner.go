// Package helpers provides shared glue for cli commands.
package helpers

import (
	"github.com/spf13/cobra"

	"github.com/dagjomar/gitstack/internal/runtime"
)

// Run is a helper that provides a runtime context to a command's execution function
func Run(cmd *cobra.Command, fn func(ctx *runtime.Context) error) error {
	ctx, err := runtime.GetContext()
	if err != nil {
		return err
	}
	ctx.Context = cmd.Context()
	return fn(ctx)
}
