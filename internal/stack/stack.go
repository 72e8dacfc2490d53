package stack

import (
	"fmt"
	"sort"

	gserrors "github.com/dagjomar/gitstack/internal/errors"
	"github.com/dagjomar/gitstack/internal/git"
)

// Branch is a stack member: a branch name plus its parsed index.
type Branch struct {
	Name  string
	Index int
}

// Stack is the ordered branch chain for a base name, sorted by numeric
// index ascending. Indices are not required to be contiguous.
type Stack struct {
	Base     string
	Branches []Branch
}

// Names returns the branch names in stack order.
func (s *Stack) Names() []string {
	names := make([]string, len(s.Branches))
	for i, b := range s.Branches {
		names[i] = b.Name
	}
	return names
}

// IndexOf returns the slice position of the named branch, or -1.
func (s *Stack) IndexOf(branchName string) int {
	for i, b := range s.Branches {
		if b.Name == branchName {
			return i
		}
	}
	return -1
}

// Tip returns the last branch of the stack.
func (s *Stack) Tip() Branch {
	return s.Branches[len(s.Branches)-1]
}

// Load discovers the stack for a base name from the live branch listing.
// Returns ErrStackNotFound when no branch matches.
func Load(runner git.Runner, base string) (*Stack, error) {
	names, err := runner.ListBranches()
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}

	var branches []Branch
	for _, name := range names {
		pos, err := ParsePosition(name)
		if err != nil {
			continue
		}
		if pos.Base != base {
			continue
		}
		branches = append(branches, Branch{Name: name, Index: pos.Index})
	}

	if len(branches) == 0 {
		return nil, gserrors.NewStackNotFoundError(base)
	}

	// Numeric sort; lexical order would put base-10 before base-2
	sort.Slice(branches, func(i, j int) bool {
		return branches[i].Index < branches[j].Index
	})

	return &Stack{Base: base, Branches: branches}, nil
}

// LoadCurrent discovers the stack containing the checked-out branch.
func LoadCurrent(runner git.Runner) (*Stack, error) {
	pos, err := CurrentPosition(runner)
	if err != nil {
		return nil, err
	}
	return Load(runner, pos.Base)
}

// Bases returns the distinct base names of every stack present in the
// repository, sorted ascending.
func Bases(runner git.Runner) ([]string, error) {
	names, err := runner.ListBranches()
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}

	seen := make(map[string]bool)
	var bases []string
	for _, name := range names {
		pos, err := ParsePosition(name)
		if err != nil {
			continue
		}
		if !seen[pos.Base] {
			seen[pos.Base] = true
			bases = append(bases, pos.Base)
		}
	}

	sort.Strings(bases)
	return bases, nil
}

// trunkCandidates are checked in order; the first existing branch wins.
var trunkCandidates = []string{"main", "master"}

// Trunk returns the repository's integration branch.
func Trunk(runner git.Runner) (string, error) {
	for _, name := range trunkCandidates {
		if runner.BranchExists(name) {
			return name, nil
		}
	}
	return "", fmt.Errorf("no trunk branch found (tried %v)", trunkCandidates)
}
