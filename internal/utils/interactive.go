// Package utils holds small helpers shared across commands.
package utils

import (
	"os"

	"github.com/mattn/go-isatty"
)

// IsInteractive reports whether stdin is attached to a terminal and
// interactive prompts have not been disabled for tests.
func IsInteractive() bool {
	if os.Getenv("GITSTACK_NO_INTERACTIVE") != "" {
		return false
	}
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}
