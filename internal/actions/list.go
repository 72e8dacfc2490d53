package actions

import (
	"github.com/dagjomar/gitstack/internal/output"
	"github.com/dagjomar/gitstack/internal/runtime"
	"github.com/dagjomar/gitstack/internal/stack"
)

// List prints every stack in the repository with its branch count.
func List(ctx *runtime.Context) error {
	bases, err := stack.Bases(ctx.Git)
	if err != nil {
		return err
	}

	if len(bases) == 0 {
		ctx.Splog.Info("No stacks found.")
		return nil
	}

	current, _ := stack.CurrentPosition(ctx.Git)

	for _, base := range bases {
		st, err := stack.Load(ctx.Git, base)
		if err != nil {
			return err
		}
		name := base
		if base == current.Base {
			name = output.ColorBranchName(base, true)
		}
		ctx.Splog.Info("%s (%d branches)", name, len(st.Branches))
	}
	return nil
}
