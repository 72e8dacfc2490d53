// Package runtime provides the context type that carries the git runner and
// logger through commands, so actions do not take a parameter list of
// collaborators.
package runtime

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dagjomar/gitstack/internal/git"
	"github.com/dagjomar/gitstack/internal/output"
)

// Context provides access to the git runner and output for commands
type Context struct {
	Context  context.Context
	Git      git.Runner
	Splog    *output.Splog
	RepoRoot string
}

// NewContext creates a context around a runner, for tests and embedding
func NewContext(runner git.Runner) *Context {
	return &Context{
		Context: context.Background(),
		Git:     runner,
		Splog:   output.NewSplog(),
	}
}

// GetContext builds the context for the repository containing the working
// directory, wiring the real git runner and a debug log file under .git.
func GetContext() (*Context, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	runner, err := git.NewRunner(wd)
	if err != nil {
		return nil, fmt.Errorf("not a git repository: %w", err)
	}

	repoRoot, err := runner.RepoRoot()
	if err != nil {
		return nil, err
	}

	splog, err := output.NewSplogWithFile(filepath.Join(repoRoot, ".git", "gitstack.log"))
	if err != nil {
		// Fall back to console-only logging
		splog = output.NewSplog()
	}

	return &Context{
		Context:  context.Background(),
		Git:      runner,
		Splog:    splog,
		RepoRoot: repoRoot,
	}, nil
}
