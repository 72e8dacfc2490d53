// Package stack models chains of sequentially-dependent branches sharing a
// common base name, discovered from the repository's live branch listing.
// A stack is a derived view: it is recomputed from branch names on every
// operation and has no persisted identity.
package stack

import (
	"fmt"
	"regexp"
	"strconv"

	gserrors "github.com/dagjomar/gitstack/internal/errors"
	"github.com/dagjomar/gitstack/internal/git"
)

// positionRegex matches stack branch names of the form <base>-<index>
var positionRegex = regexp.MustCompile(`^(.+)-([0-9]+)$`)

// Position identifies a branch's place within a stack.
type Position struct {
	Base  string
	Index int
}

// BranchName returns the branch name for this position.
func (p Position) BranchName() string {
	return fmt.Sprintf("%s-%d", p.Base, p.Index)
}

// Previous returns the position one hop towards the stack root.
func (p Position) Previous() Position {
	return Position{Base: p.Base, Index: p.Index - 1}
}

// Next returns the position one hop towards the stack tip.
func (p Position) Next() Position {
	return Position{Base: p.Base, Index: p.Index + 1}
}

// ParsePosition parses a branch name into a stack position. Branch names
// that do not end in -<integer> are not part of any stack; this is the
// single place that parsing happens so every component agrees on it.
func ParsePosition(branchName string) (Position, error) {
	matches := positionRegex.FindStringSubmatch(branchName)
	if matches == nil {
		return Position{}, fmt.Errorf("%s: %w", branchName, gserrors.ErrNotOnStackBranch)
	}

	index, err := strconv.Atoi(matches[2])
	if err != nil {
		// Unreachable given the pattern, but Atoi can overflow
		return Position{}, fmt.Errorf("%s: %w", branchName, gserrors.ErrNotOnStackBranch)
	}

	return Position{Base: matches[1], Index: index}, nil
}

// CurrentPosition derives the stack position of the checked-out branch.
func CurrentPosition(runner git.Runner) (Position, error) {
	current, err := runner.CurrentBranch()
	if err != nil {
		return Position{}, fmt.Errorf("failed to get current branch: %w", err)
	}
	return ParsePosition(current)
}
